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

// DaysNever is the sentinel used for devices that never reported a
// location fix at all.
const DaysNever = "Never"

// SilentDevice is a device that has not reported a location fix today,
// annotated with how long it has been quiet. It holds its own copy of
// the feed record so tagging never mutates the shared feed snapshot.
type SilentDevice struct {
	Device
	DaysSinceLastContact string `json:"days_since_last_contact"`
}

// StockClassification is the outcome of one aggregation pass over the
// whole feed. The category lists overlap on purpose: every rule is
// evaluated independently per device.
type StockClassification struct {
	TotalDevices           int
	CommunicatedAtNight    []Device
	CommunicatedAtNightGPS []Device
	CommunicatedAtNightLBS []Device
	Silent                 []SilentDevice
	StaleLocation          []Device
}

// StockSummary is the aggregate view of a classification.
type StockSummary struct {
	TotalDevices        int                 `json:"total_devices"`
	CommunicatedAtNight NightSummary        `json:"communicated_at_night"`
	Silent              SilentSummary       `json:"silent"`
	StaleLocation       StaleLocationFigure `json:"stale_location"`
}

// NightSummary counts the night-window communicators.
type NightSummary struct {
	Total   int `json:"total"`
	WithGPS int `json:"with_gps"`
	WithLBS int `json:"with_lbs"`
}

// SilentSummary counts the silent devices, with a histogram keyed by
// days since last contact (or the "Never" sentinel).
type SilentSummary struct {
	Total              int            `json:"total"`
	DaysWithoutContact map[string]int `json:"days_without_contact"`
}

// StaleLocationFigure counts the devices alive today on heartbeat or
// status but with an outdated location fix.
type StaleLocationFigure struct {
	Total int `json:"total"`
}

// Summary reduces a classification to its aggregate counts.
func (c *StockClassification) Summary() *StockSummary {
	histogram := make(map[string]int, len(c.Silent))
	for _, d := range c.Silent {
		histogram[d.DaysSinceLastContact]++
	}
	return &StockSummary{
		TotalDevices: c.TotalDevices,
		CommunicatedAtNight: NightSummary{
			Total:   len(c.CommunicatedAtNight),
			WithGPS: len(c.CommunicatedAtNightGPS),
			WithLBS: len(c.CommunicatedAtNightLBS),
		},
		Silent: SilentSummary{
			Total:              len(c.Silent),
			DaysWithoutContact: histogram,
		},
		StaleLocation: StaleLocationFigure{
			Total: len(c.StaleLocation),
		},
	}
}

// DeviceListing is the reduced per-device view returned by the stock
// category endpoints.
type DeviceListing struct {
	IMEI      string                 `json:"imei"`
	DeviceKey string                 `json:"device_key"`
	Name      string                 `json:"name"`
	Logistics map[string]interface{} `json:"logistica"`
}

// SilentListing extends DeviceListing with the silence annotation and
// the last known fix, raw and rendered in the local timezone.
type SilentListing struct {
	DeviceListing
	DaysSinceLastContact  string `json:"days_since_last_contact"`
	LastLocationDate      int64  `json:"last_location_date"`
	LastLocationDateLocal string `json:"last_location_date_local,omitempty"`
}

// StaleListing extends DeviceListing with the activity timestamps that
// prove the device is alive despite its stale fix.
type StaleListing struct {
	DeviceListing
	HeartbeatTime int64 `json:"heartbeat_time"`
	StatusDate    int64 `json:"status_date"`
}

// NewDeviceListing reduces a feed record to the listing shape.
func NewDeviceListing(d Device) DeviceListing {
	logistics := d.Logistics
	if logistics == nil {
		logistics = map[string]interface{}{}
	}
	return DeviceListing{
		IMEI:      d.IMEI,
		DeviceKey: d.DeviceKey,
		Name:      d.Config.Name,
		Logistics: logistics,
	}
}

// NewSilentListing reduces an annotated silent device to the listing
// shape.
func NewSilentListing(d SilentDevice, loc *time.Location) SilentListing {
	ms := int64(d.Status.LocationDate)
	return SilentListing{
		DeviceListing:         NewDeviceListing(d.Device),
		DaysSinceLastContact:  d.DaysSinceLastContact,
		LastLocationDate:      ms,
		LastLocationDateLocal: FormatTimestamp(ms, loc),
	}
}

// NewStaleListing reduces a stale-location device to the listing shape.
func NewStaleListing(d Device) StaleListing {
	return StaleListing{
		DeviceListing: NewDeviceListing(d),
		HeartbeatTime: int64(d.Status.HeartbeatTime),
		StatusDate:    int64(d.Status.Date),
	}
}
