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

package sqlite

import (
	"context"
	"database/sql"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	dconfig "github.com/headdira/devicetrack/config"
	"github.com/headdira/devicetrack/store"
)

// SetupDataStore opens the database configured under sqlite_path
func SetupDataStore() (*DataStoreSQLite, error) {
	dbPath := config.Config.GetString(dconfig.SettingSQLitePath)
	ds, err := NewDataStoreSQLite(dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up the datastore")
	}
	return ds, nil
}

// NewDataStoreSQLite opens a read-only handle on the devices database
func NewDataStoreSQLite(path string) (*DataStoreSQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "store: failed to open the database")
	}
	return &DataStoreSQLite{db: db}, nil
}

// DataStoreSQLite is the SQLite-backed DataStore
type DataStoreSQLite struct {
	db *sql.DB
}

// Ping verifies the database file is reachable
func (ds *DataStoreSQLite) Ping(ctx context.Context) error {
	return ds.db.PingContext(ctx)
}

// CheckSchema verifies the device table exists
func (ds *DataStoreSQLite) CheckSchema(ctx context.Context) error {
	var name string
	err := ds.db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
		store.DeviceTableName,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return store.ErrTableNotFound
	} else if err != nil {
		return errors.Wrap(err, "store: schema check failed")
	}
	return nil
}

// CountLocated counts the devices with a location fix inside the window
func (ds *DataStoreSQLite) CountLocated(
	ctx context.Context,
	start, end int64,
) (int64, error) {
	return ds.count(ctx, "", start, end)
}

// CountLocatedGPS counts the devices with a valid satellite fix inside
// the window
func (ds *DataStoreSQLite) CountLocatedGPS(
	ctx context.Context,
	start, end int64,
) (int64, error) {
	return ds.count(ctx,
		"lat != 0 AND lng != 0 AND latlng_valid = 1 AND ",
		start, end)
}

// CountLocatedLBS counts the devices with a cell-tower fallback fix
// inside the window
func (ds *DataStoreSQLite) CountLocatedLBS(
	ctx context.Context,
	start, end int64,
) (int64, error) {
	return ds.count(ctx,
		"lbs_lat IS NOT NULL AND lbs_lng IS NOT NULL AND ",
		start, end)
}

// CountUnlocated counts the devices that reported inside the window but
// produced neither a valid GPS fix nor an LBS fallback
func (ds *DataStoreSQLite) CountUnlocated(
	ctx context.Context,
	start, end int64,
) (int64, error) {
	return ds.count(ctx,
		"(lat = 0 OR lng = 0 OR latlng_valid = 0) AND "+
			"(lbs_lat IS NULL OR lbs_lng IS NULL) AND ",
		start, end)
}

func (ds *DataStoreSQLite) count(
	ctx context.Context,
	condition string,
	start, end int64,
) (int64, error) {
	var n int64
	query := "SELECT COUNT(*) FROM " + store.DeviceTableName +
		" WHERE " + condition + "location_date BETWEEN ? AND ?"
	err := ds.db.QueryRowContext(ctx, query, start, end).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, "store: count query failed")
	}
	return n, nil
}

// Close closes the database handle
func (ds *DataStoreSQLite) Close() error {
	return ds.db.Close()
}
