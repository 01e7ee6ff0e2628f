// Copyright 2025 Headdira
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app_mocks "github.com/headdira/devicetrack/app/mocks"
	"github.com/headdira/devicetrack/model"
)

func stockFixture() *model.StockClassification {
	nightDevice := model.Device{
		IMEI:      "123456789012345",
		DeviceKey: "key-1",
		Config:    model.DeviceConfig{Name: "Truck 7"},
	}
	return &model.StockClassification{
		TotalDevices:           3,
		CommunicatedAtNight:    []model.Device{nightDevice},
		CommunicatedAtNightGPS: []model.Device{nightDevice},
		Silent: []model.SilentDevice{
			{
				Device: model.Device{
					IMEI: "123456789012346",
					Status: model.DeviceStatus{
						LocationDate: 1748750400000,
					},
				},
				DaysSinceLastContact: "3",
			},
			{
				Device:               model.Device{IMEI: "123456789012347"},
				DaysSinceLastContact: model.DaysNever,
			},
		},
		StaleLocation: []model.Device{
			{
				IMEI: "123456789012346",
				Status: model.DeviceStatus{
					HeartbeatTime: 1748757600000,
				},
			},
		},
	}
}

func TestStockSummary(t *testing.T) {
	mockApp := &app_mocks.App{}
	mockApp.On("GetStockClassification", mock.Anything).
		Return(stockFixture(), nil)
	router := testRouter(t, mockApp)

	w := doRequest(router, "GET", APIURLStatusStock, testAPIKey, "")
	assert.Equal(t, http.StatusOK, w.Code)

	summary := model.StockSummary{}
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	assert.NoError(t, err)

	assert.Equal(t, 3, summary.TotalDevices)
	assert.Equal(t, 1, summary.CommunicatedAtNight.Total)
	assert.Equal(t, 1, summary.CommunicatedAtNight.WithGPS)
	assert.Equal(t, 0, summary.CommunicatedAtNight.WithLBS)
	assert.Equal(t, 2, summary.Silent.Total)
	assert.Equal(t, map[string]int{
		"3":             1,
		model.DaysNever: 1,
	}, summary.Silent.DaysWithoutContact)
	assert.Equal(t, 1, summary.StaleLocation.Total)
}

func TestStockNightList(t *testing.T) {
	mockApp := &app_mocks.App{}
	mockApp.On("GetStockClassification", mock.Anything).
		Return(stockFixture(), nil)
	router := testRouter(t, mockApp)

	w := doRequest(router, "GET", APIURLStockNight, testAPIKey, "")
	assert.Equal(t, http.StatusOK, w.Code)

	listings := []model.DeviceListing{}
	err := json.Unmarshal(w.Body.Bytes(), &listings)
	assert.NoError(t, err)
	if assert.Len(t, listings, 1) {
		assert.Equal(t, "123456789012345", listings[0].IMEI)
		assert.Equal(t, "Truck 7", listings[0].Name)
	}
}

func TestStockNightLBSListEmpty(t *testing.T) {
	mockApp := &app_mocks.App{}
	mockApp.On("GetStockClassification", mock.Anything).
		Return(stockFixture(), nil)
	router := testRouter(t, mockApp)

	w := doRequest(router, "GET", APIURLStockNightLBS, testAPIKey, "")
	assert.Equal(t, http.StatusOK, w.Code)
	// an empty category renders as [], never null
	assert.Equal(t, "[]", w.Body.String())
}

func TestStockSilentList(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	mockApp := &app_mocks.App{}
	mockApp.On("GetStockClassification", mock.Anything).
		Return(stockFixture(), nil)
	mockApp.On("Location").Return(loc)
	router := testRouter(t, mockApp)

	w := doRequest(router, "GET", APIURLStockSilent, testAPIKey, "")
	assert.Equal(t, http.StatusOK, w.Code)

	listings := []model.SilentListing{}
	err = json.Unmarshal(w.Body.Bytes(), &listings)
	assert.NoError(t, err)
	if assert.Len(t, listings, 2) {
		assert.Equal(t, "3", listings[0].DaysSinceLastContact)
		assert.Equal(t, int64(1748750400000), listings[0].LastLocationDate)
		assert.Equal(t, model.FormatTimestamp(1748750400000, loc),
			listings[0].LastLocationDateLocal)

		assert.Equal(t, model.DaysNever, listings[1].DaysSinceLastContact)
		assert.Equal(t, "", listings[1].LastLocationDateLocal)
	}
}

func TestStockStaleList(t *testing.T) {
	mockApp := &app_mocks.App{}
	mockApp.On("GetStockClassification", mock.Anything).
		Return(stockFixture(), nil)
	router := testRouter(t, mockApp)

	w := doRequest(router, "GET", APIURLStockStale, testAPIKey, "")
	assert.Equal(t, http.StatusOK, w.Code)

	listings := []model.StaleListing{}
	err := json.Unmarshal(w.Body.Bytes(), &listings)
	assert.NoError(t, err)
	if assert.Len(t, listings, 1) {
		assert.Equal(t, "123456789012346", listings[0].IMEI)
		assert.Equal(t, int64(1748757600000), listings[0].HeartbeatTime)
	}
}

func TestStockFeedDown(t *testing.T) {
	mockApp := &app_mocks.App{}
	mockApp.On("GetStockClassification", mock.Anything).
		Return(nil, errors.New("failed to retrieve the device feed"))
	router := testRouter(t, mockApp)

	w := doRequest(router, "GET", APIURLStatusStock, testAPIKey, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
