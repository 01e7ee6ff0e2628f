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

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/headdira/devicetrack/model"
	"github.com/headdira/devicetrack/store"
	store_mocks "github.com/headdira/devicetrack/store/mocks"
)

func TestGetStatusSummary(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, loc)
	windows := model.NewTimeWindows(now, loc)

	ds := &store_mocks.DataStore{}
	ds.On("CheckSchema", mock.Anything).Return(nil)
	ds.On("CountLocated", mock.Anything,
		windows.TodayStart, windows.TodayEnd).Return(int64(100), nil)
	ds.On("CountLocatedGPS", mock.Anything,
		windows.TodayStart, windows.TodayEnd).Return(int64(75), nil)
	ds.On("CountLocatedLBS", mock.Anything,
		windows.TodayStart, windows.TodayEnd).Return(int64(20), nil)
	ds.On("CountUnlocated", mock.Anything,
		windows.TodayStart, windows.TodayEnd).Return(int64(5), nil)
	ds.On("CountLocated", mock.Anything,
		windows.NightStart, windows.NightEnd).Return(int64(40), nil)

	a := &app{
		store:  ds,
		clock:  fixedClock{now: now},
		Config: Config{Timezone: loc},
	}

	summary, err := a.GetStatusSummary(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, "ok", summary.Status)
	assert.Equal(t, store.DeviceTableName, summary.Table)
	assert.Equal(t, "2025-06-15", summary.ReferenceDate)
	assert.Equal(t, "America/Sao_Paulo", summary.Timezone)
	assert.Empty(t, summary.Advisory)

	assert.Equal(t, int64(100), summary.TotalDevicesToday)
	assert.Equal(t, int64(75), summary.DevicesWithValidGPS)
	assert.Equal(t, int64(20), summary.DevicesWithLBS)
	assert.Equal(t, int64(5), summary.DevicesWithoutLocation)
	assert.Equal(t, int64(40), summary.DevicesLocatedAtNight)

	assert.Equal(t, model.StatusPercentages{
		GPS:           "75.00%",
		LBS:           "20.00%",
		NoLocation:    "5.00%",
		NightLocation: "40.00%",
	}, summary.Percentages)
	ds.AssertExpectations(t)
}

func TestGetStatusSummaryEmptyDay(t *testing.T) {
	ds := &store_mocks.DataStore{}
	ds.On("CheckSchema", mock.Anything).Return(nil)
	ds.On("CountLocated", mock.Anything,
		mock.AnythingOfType("int64"),
		mock.AnythingOfType("int64")).Return(int64(0), nil).Once()

	a := &app{
		store:  ds,
		clock:  fixedClock{now: time.Now()},
		Config: Config{Timezone: time.UTC},
	}

	summary, err := a.GetStatusSummary(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalDevicesToday)
	assert.Equal(t, "no device data found for the reference day",
		summary.Advisory)
	assert.Equal(t, model.StatusPercentages{
		GPS:           "0%",
		LBS:           "0%",
		NoLocation:    "0%",
		NightLocation: "0%",
	}, summary.Percentages)

	// no further counts on an empty day
	ds.AssertNotCalled(t, "CountLocatedGPS",
		mock.Anything, mock.Anything, mock.Anything)
	ds.AssertExpectations(t)
}

func TestGetStatusSummaryTableMissing(t *testing.T) {
	ds := &store_mocks.DataStore{}
	ds.On("CheckSchema", mock.Anything).Return(store.ErrTableNotFound)

	a := &app{
		store:  ds,
		clock:  fixedClock{now: time.Now()},
		Config: Config{Timezone: time.UTC},
	}

	_, err := a.GetStatusSummary(context.Background())
	assert.Equal(t, store.ErrTableNotFound, err)
	ds.AssertNotCalled(t, "CountLocated",
		mock.Anything, mock.Anything, mock.Anything)
}
