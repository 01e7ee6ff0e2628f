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

import "fmt"

// StatusSummary reports how today's device population located itself,
// with counts from storage and pre-rendered percentage strings.
type StatusSummary struct {
	Status                 string            `json:"status"`
	Table                  string            `json:"table"`
	ReferenceDate          string            `json:"reference_date"`
	Timezone               string            `json:"timezone"`
	Advisory               string            `json:"advisory,omitempty"`
	TotalDevicesToday      int64             `json:"total_devices_today"`
	DevicesWithValidGPS    int64             `json:"devices_with_valid_gps"`
	DevicesWithLBS         int64             `json:"devices_with_lbs"`
	DevicesWithoutLocation int64             `json:"devices_without_location"`
	DevicesLocatedAtNight  int64             `json:"devices_located_at_night"`
	Percentages            StatusPercentages `json:"percentages"`
}

// StatusPercentages renders each count as a share of today's total.
type StatusPercentages struct {
	GPS           string `json:"gps"`
	LBS           string `json:"lbs"`
	NoLocation    string `json:"no_location"`
	NightLocation string `json:"night_location"`
}

// FormatPercent renders part over total with two decimals and a
// trailing percent sign. A zero total short-circuits to the literal
// "0%" so the division never happens.
func FormatPercent(part, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}
