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

import "time"

// NightWindowHour is the local hour at which the nightly reporting
// window opens. Devices at rest are expected to phone home during the
// following hour.
const NightWindowHour = 2

// TimeWindows holds the day's boundaries and the one-hour night window
// as inclusive millisecond epoch timestamps, all derived from a single
// "now" in a fixed civil timezone.
type TimeWindows struct {
	TodayStart int64
	TodayEnd   int64
	NightStart int64
	NightEnd   int64
}

// NewTimeWindows computes the windows for the calendar day containing
// now in loc. The night window is anchored at 02:00 of that same day,
// so before 02:00 it lies in the future and matches nothing.
func NewTimeWindows(now time.Time, loc *time.Location) TimeWindows {
	now = now.In(loc)
	year, month, day := now.Date()

	dayStart := time.Date(year, month, day, 0, 0, 0, 0, loc)
	dayEnd := time.Date(year, month, day, 23, 59, 59, 999000000, loc)
	nightStart := time.Date(year, month, day, NightWindowHour, 0, 0, 0, loc)
	nightEnd := nightStart.Add(time.Hour)

	return TimeWindows{
		TodayStart: dayStart.UnixMilli(),
		TodayEnd:   dayEnd.UnixMilli(),
		NightStart: nightStart.UnixMilli(),
		NightEnd:   nightEnd.UnixMilli(),
	}
}

// InNightWindow reports whether the millisecond timestamp ts falls
// inside the night window, boundaries included.
func (w TimeWindows) InNightWindow(ts int64) bool {
	return ts >= w.NightStart && ts <= w.NightEnd
}

// InToday reports whether ts falls inside the current day, boundaries
// included.
func (w TimeWindows) InToday(ts int64) bool {
	return ts >= w.TodayStart && ts <= w.TodayEnd
}
