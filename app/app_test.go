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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	feed_mocks "github.com/headdira/devicetrack/client/feed/mocks"
	"github.com/headdira/devicetrack/model"
	store_mocks "github.com/headdira/devicetrack/store/mocks"
)

// fixedClock pins the wall clock for window computations.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestHealthCheck(t *testing.T) {
	err := errors.New("connection failed")

	ds := &store_mocks.DataStore{}
	ds.On("Ping", mock.Anything).Return(err)

	a := New(ds, nil, nil, Config{})
	ctx := context.Background()
	assert.Equal(t, err, a.HealthCheck(ctx))
	ds.AssertExpectations(t)
}

func TestGetUserDevices(t *testing.T) {
	feedData := model.Feed{
		"user@example.com": model.UserBucket{
			Devices: []model.Device{{IMEI: "123456789012345"}},
		},
	}

	fc := &feed_mocks.Client{}
	fc.On("GetFeed", mock.Anything).Return(feedData, nil)

	a := New(nil, fc, nil, Config{})
	ctx := context.Background()

	bucket, err := a.GetUserDevices(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.Len(t, bucket.Devices, 1)

	_, err = a.GetUserDevices(ctx, "other@example.com")
	assert.Equal(t, ErrUserNotFound, err)
	fc.AssertExpectations(t)
}

func TestGetUserDevicesFeedError(t *testing.T) {
	feedErr := errors.New("feed unavailable")

	fc := &feed_mocks.Client{}
	fc.On("GetFeed", mock.Anything).Return(nil, feedErr)

	a := New(nil, fc, nil, Config{})
	_, err := a.GetUserDevices(context.Background(), "user@example.com")
	assert.Equal(t, feedErr, err)
}

func TestSearchDevices(t *testing.T) {
	feedData := model.Feed{
		"a@example.com": model.UserBucket{
			Devices: []model.Device{
				{
					IMEI:      "123456789012345",
					DeviceKey: "key-1",
					Config:    model.DeviceConfig{Name: "Truck 7"},
				},
			},
		},
		"b@example.com": model.UserBucket{
			Devices: []model.Device{
				{
					IMEI:      "123456789012346",
					DeviceKey: "key-2",
					Config:    model.DeviceConfig{Name: "Truck 7"},
				},
			},
		},
	}

	fc := &feed_mocks.Client{}
	fc.On("GetFeed", mock.Anything).Return(feedData, nil)

	a := New(nil, fc, nil, Config{})
	ctx := context.Background()

	// by display name, matches in both buckets, owner order is stable
	matches, err := a.SearchDevices(ctx, "Truck 7")
	assert.NoError(t, err)
	if assert.Len(t, matches, 2) {
		assert.Equal(t, "123456789012345", matches[0].IMEI)
		assert.Equal(t, "123456789012346", matches[1].IMEI)
	}

	// by device key
	matches, err = a.SearchDevices(ctx, "key-2")
	assert.NoError(t, err)
	if assert.Len(t, matches, 1) {
		assert.Equal(t, "123456789012346", matches[0].IMEI)
	}

	_, err = a.SearchDevices(ctx, "nothing")
	assert.Equal(t, ErrDeviceNotFound, err)
}

func TestFindSimcards(t *testing.T) {
	simcards := []model.Simcard{
		{"imei_with_luhn": "123456789012345", "carrier": "vivo"},
		{"sim_iccid_with_luhn": "89550000000000000000"},
	}

	fc := &feed_mocks.Client{}
	fc.On("GetSimcards", mock.Anything).Return(simcards, nil)

	a := New(nil, fc, nil, Config{})
	ctx := context.Background()

	matches, err := a.FindSimcards(ctx, "89550000000000000000")
	assert.NoError(t, err)
	if assert.Len(t, matches, 1) {
		assert.Equal(t, simcards[1], matches[0])
	}

	_, err = a.FindSimcards(ctx, "unknown")
	assert.Equal(t, ErrSimcardNotFound, err)
}

func TestLocationDefaultsToUTC(t *testing.T) {
	a := New(nil, nil, nil, Config{})
	assert.Equal(t, time.UTC, a.Location())
}
