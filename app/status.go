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

	"github.com/headdira/devicetrack/model"
	"github.com/headdira/devicetrack/store"
)

// GetStatusSummary reports how today's device population located
// itself, from the counts in storage. Propagates store.ErrTableNotFound
// untouched so the API can tell "not populated yet" apart from a
// database failure.
func (a *app) GetStatusSummary(
	ctx context.Context,
) (*model.StatusSummary, error) {
	if err := a.store.CheckSchema(ctx); err != nil {
		return nil, err
	}

	now := a.clock.Now().In(a.Timezone)
	windows := model.NewTimeWindows(now, a.Timezone)

	summary := &model.StatusSummary{
		Status:        "ok",
		Table:         store.DeviceTableName,
		ReferenceDate: now.Format("2006-01-02"),
		Timezone:      a.Timezone.String(),
	}

	total, err := a.store.CountLocated(ctx, windows.TodayStart, windows.TodayEnd)
	if err != nil {
		return nil, err
	}
	summary.TotalDevicesToday = total
	if total == 0 {
		summary.Advisory = "no device data found for the reference day"
		summary.Percentages = model.StatusPercentages{
			GPS:           "0%",
			LBS:           "0%",
			NoLocation:    "0%",
			NightLocation: "0%",
		}
		return summary, nil
	}

	gps, err := a.store.CountLocatedGPS(ctx, windows.TodayStart, windows.TodayEnd)
	if err != nil {
		return nil, err
	}
	lbs, err := a.store.CountLocatedLBS(ctx, windows.TodayStart, windows.TodayEnd)
	if err != nil {
		return nil, err
	}
	unlocated, err := a.store.CountUnlocated(ctx,
		windows.TodayStart, windows.TodayEnd)
	if err != nil {
		return nil, err
	}
	night, err := a.store.CountLocated(ctx, windows.NightStart, windows.NightEnd)
	if err != nil {
		return nil, err
	}

	summary.DevicesWithValidGPS = gps
	summary.DevicesWithLBS = lbs
	summary.DevicesWithoutLocation = unlocated
	summary.DevicesLocatedAtNight = night
	summary.Percentages = model.StatusPercentages{
		GPS:           model.FormatPercent(gps, total),
		LBS:           model.FormatPercent(lbs, total),
		NoLocation:    model.FormatPercent(unlocated, total),
		NightLocation: model.FormatPercent(night, total),
	}
	return summary, nil
}
