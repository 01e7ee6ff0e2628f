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

package store

import (
	"context"
	"errors"
)

// DeviceTableName is the table written by the external logistics
// pipeline; this service never creates or modifies it.
const DeviceTableName = "devices_data"

// DataStore is the read-only view over the device-location table
// populated by the external logistics pipeline. All counts are scoped
// to an inclusive [start, end] millisecond window on location_date.
type DataStore interface {
	Ping(ctx context.Context) error
	// CheckSchema verifies the expected table exists, returning
	// ErrTableNotFound when the database has not been populated yet.
	CheckSchema(ctx context.Context) error
	CountLocated(ctx context.Context, start, end int64) (int64, error)
	CountLocatedGPS(ctx context.Context, start, end int64) (int64, error)
	CountLocatedLBS(ctx context.Context, start, end int64) (int64, error)
	CountUnlocated(ctx context.Context, start, end int64) (int64, error)
	Close() error
}

var (
	ErrTableNotFound = errors.New("store: devices_data table not found")
)
