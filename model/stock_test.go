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

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStockClassificationSummary(t *testing.T) {
	c := &StockClassification{
		TotalDevices:           4,
		CommunicatedAtNight:    []Device{{}, {}},
		CommunicatedAtNightGPS: []Device{{}},
		Silent: []SilentDevice{
			{DaysSinceLastContact: "3"},
			{DaysSinceLastContact: "3"},
			{DaysSinceLastContact: DaysNever},
		},
		StaleLocation: []Device{{}},
	}

	summary := c.Summary()
	assert.Equal(t, 4, summary.TotalDevices)
	assert.Equal(t, NightSummary{
		Total:   2,
		WithGPS: 1,
		WithLBS: 0,
	}, summary.CommunicatedAtNight)
	assert.Equal(t, SilentSummary{
		Total: 3,
		DaysWithoutContact: map[string]int{
			"3":       2,
			DaysNever: 1,
		},
	}, summary.Silent)
	assert.Equal(t, 1, summary.StaleLocation.Total)
}

func TestNewDeviceListing(t *testing.T) {
	listing := NewDeviceListing(Device{
		IMEI:      "123456789012345",
		DeviceKey: "key-1",
		Config:    DeviceConfig{Name: "Truck 7"},
	})
	assert.Equal(t, "123456789012345", listing.IMEI)
	assert.Equal(t, "Truck 7", listing.Name)
	// logistics render as an empty object, never null
	assert.NotNil(t, listing.Logistics)
	assert.Empty(t, listing.Logistics)
}

func TestNewSilentListing(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	ms := time.Date(2025, 6, 1, 9, 30, 15, 0, loc).UnixMilli()

	listing := NewSilentListing(SilentDevice{
		Device: Device{
			IMEI:   "123456789012345",
			Status: DeviceStatus{LocationDate: Int(ms)},
		},
		DaysSinceLastContact: "14",
	}, loc)
	assert.Equal(t, "14", listing.DaysSinceLastContact)
	assert.Equal(t, ms, listing.LastLocationDate)
	assert.Equal(t, "2025-06-01 09:30:15", listing.LastLocationDateLocal)

	never := NewSilentListing(SilentDevice{
		DaysSinceLastContact: DaysNever,
	}, loc)
	assert.Equal(t, int64(0), never.LastLocationDate)
	assert.Equal(t, "", never.LastLocationDateLocal)
}

func TestNewStaleListing(t *testing.T) {
	listing := NewStaleListing(Device{
		IMEI: "123456789012345",
		Status: DeviceStatus{
			HeartbeatTime: 1748757600000,
			Date:          1748757700000,
		},
	})
	assert.Equal(t, int64(1748757600000), listing.HeartbeatTime)
	assert.Equal(t, int64(1748757700000), listing.StatusDate)
}
