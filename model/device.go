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
	"strconv"
	"strings"
	"time"
)

// Feed is the full device feed, one bucket per account email.
type Feed map[string]UserBucket

// UserBucket groups the devices owned by one account.
type UserBucket struct {
	Devices []Device `json:"devices"`
}

// Device represents a tracked asset as reported by the feed.
type Device struct {
	IMEI        string                 `json:"imei"`
	DeviceKey   string                 `json:"device_key"`
	Config      DeviceConfig           `json:"config"`
	Status      DeviceStatus           `json:"status"`
	LBSPosition *LBSPosition           `json:"lbs_position,omitempty"`
	Logistics   map[string]interface{} `json:"logistica,omitempty"`
}

// DeviceConfig carries the device display settings
type DeviceConfig struct {
	Name string `json:"name"`
}

// DeviceStatus is the latest telemetry reported by the device. The feed
// is loosely typed: timestamps and coordinates may arrive as numbers,
// numeric strings, nulls, or be missing entirely, and all of them
// default to zero.
type DeviceStatus struct {
	LocationDate  Int   `json:"location_date"`
	HeartbeatTime Int   `json:"heartbeat_time"`
	Date          Int   `json:"date"`
	Lat           Coord `json:"lat"`
	Lng           Coord `json:"lng"`
	LatLngValid   Int   `json:"latlng_valid"`
}

// LBSPosition is the cell-tower location fallback.
type LBSPosition struct {
	Lat Coord `json:"lat"`
	Lng Coord `json:"lng"`
}

// HasFix reports whether both LBS coordinates are present and non-zero.
func (p *LBSPosition) HasFix() bool {
	return p != nil && p.Lat != 0 && p.Lng != 0
}

// Int is an integer telemetry value (millisecond epoch timestamps,
// flags) that tolerates any JSON shape, coercing unparseable or missing
// input to zero instead of failing.
type Int int64

// UnmarshalJSON never returns an error; one malformed telemetry field
// must not fail the whole feed.
func (i *Int) UnmarshalJSON(b []byte) error {
	*i = Int(coerceInt(b))
	return nil
}

// Coord is a coordinate value with the same tolerant decoding as Int.
type Coord float64

func (c *Coord) UnmarshalJSON(b []byte) error {
	*c = Coord(coerceFloat(b))
	return nil
}

func coerceInt(b []byte) int64 {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

func coerceFloat(b []byte) float64 {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatTimestamp renders a millisecond epoch value as a local civil
// datetime, or "" for missing timestamps.
func FormatTimestamp(ms int64, loc *time.Location) string {
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).In(loc).Format("2006-01-02 15:04:05")
}

// Simcard is a simcard inventory entry. Entries are served back
// verbatim, so the record stays schemaless.
type Simcard map[string]interface{}

// Matches reports whether the entry's IMEI or ICCID equals identifier.
func (s Simcard) Matches(identifier string) bool {
	if v, ok := s["imei_with_luhn"].(string); ok && v == identifier {
		return true
	}
	if v, ok := s["sim_iccid_with_luhn"].(string); ok && v == identifier {
		return true
	}
	return false
}
