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
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// imeiRegexp is the accepted IMEI shape: 15 or 16 decimal digits, no
// checksum verification.
var imeiRegexp = regexp.MustCompile(`^[0-9]{15,16}$`)

// CommandRequest is the payload of a command dispatch call.
type CommandRequest struct {
	IMEIs   []string `json:"imeis"`
	Command string   `json:"command"`
}

// Validate checks that both required fields are present.
func (r CommandRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IMEIs, validation.Required),
		validation.Field(&r.Command, validation.Required),
	)
}

// ValidIMEI reports whether imei has the accepted shape.
func ValidIMEI(imei string) bool {
	return imeiRegexp.MatchString(imei)
}

// PartitionIMEIs splits identifiers into valid IMEIs, in their original
// order, and the set of rejected ones, deduplicated and sorted.
func PartitionIMEIs(imeis []string) (valid []string, invalid []string) {
	seen := make(map[string]bool)
	for _, imei := range imeis {
		if ValidIMEI(imei) {
			valid = append(valid, imei)
		} else if !seen[imei] {
			seen[imei] = true
			invalid = append(invalid, imei)
		}
	}
	sort.Strings(invalid)
	return valid, invalid
}

// CommandResult is the outcome of one dispatch attempt. HTTPStatus is
// the status the API reports to the caller; Code and UpstreamStatus
// echo the command API's own diagnostics on logical rejection.
type CommandResult struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message,omitempty"`
	Error          string                 `json:"error,omitempty"`
	Code           *int64                 `json:"code,omitempty"`
	UpstreamStatus int                    `json:"status_code,omitempty"`
	InvalidIMEIs   []string               `json:"invalid_imeis,omitempty"`
	Upstream       map[string]interface{} `json:"tft_response,omitempty"`
	DispatchID     string                 `json:"dispatch_id,omitempty"`
	HTTPStatus     int                    `json:"-"`
}
