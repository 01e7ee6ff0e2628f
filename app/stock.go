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
	"strconv"
	"time"

	"github.com/headdira/devicetrack/model"
)

const millisPerDay = 24 * 60 * 60 * 1000

// GetStockClassification fetches the live feed and classifies every
// device against windows derived from the current wall clock. Nothing
// is cached; each call is an independent computation.
func (a *app) GetStockClassification(
	ctx context.Context,
) (*model.StockClassification, error) {
	feedData, err := a.feed.GetFeed(ctx)
	if err != nil {
		return nil, err
	}
	now := a.clock.Now().In(a.Timezone)
	windows := model.NewTimeWindows(now, a.Timezone)
	return classifyStock(feedData, windows, now), nil
}

// classifyStock runs a single pass over every device in the feed. The
// three rules are evaluated independently for each device, so the
// category lists may overlap: a device with historical night activity
// that stopped reporting daily shows up both under night communication
// and under silence.
func classifyStock(
	feedData model.Feed,
	windows model.TimeWindows,
	now time.Time,
) *model.StockClassification {
	c := &model.StockClassification{}

	for _, email := range sortedKeys(feedData) {
		for _, device := range feedData[email].Devices {
			c.TotalDevices++
			status := device.Status
			locationDate := int64(status.LocationDate)

			if windows.InNightWindow(locationDate) {
				c.CommunicatedAtNight = append(
					c.CommunicatedAtNight, device)
				if status.Lat != 0 && status.Lng != 0 &&
					status.LatLngValid == 1 {
					c.CommunicatedAtNightGPS = append(
						c.CommunicatedAtNightGPS, device)
				}
				if device.LBSPosition.HasFix() {
					c.CommunicatedAtNightLBS = append(
						c.CommunicatedAtNightLBS, device)
				}
			}

			if locationDate < windows.TodayStart {
				days := model.DaysNever
				if locationDate > 0 {
					days = strconv.FormatInt(
						daysSince(now, locationDate), 10)
				}
				// the annotation goes on a copy so the shared
				// feed snapshot is never mutated
				c.Silent = append(c.Silent, model.SilentDevice{
					Device:               device,
					DaysSinceLastContact: days,
				})
			}

			aliveToday := windows.InToday(int64(status.HeartbeatTime)) ||
				windows.InToday(int64(status.Date))
			if aliveToday && locationDate < windows.TodayStart {
				c.StaleLocation = append(c.StaleLocation, device)
			}
		}
	}
	return c
}

// daysSince returns the whole days elapsed between the millisecond
// timestamp ms and now, never negative.
func daysSince(now time.Time, ms int64) int64 {
	diff := now.UnixMilli() - ms
	if diff < 0 {
		return 0
	}
	return diff / millisPerDay
}
