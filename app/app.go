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
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/headdira/devicetrack/client/feed"
	"github.com/headdira/devicetrack/client/tft"
	"github.com/headdira/devicetrack/model"
	"github.com/headdira/devicetrack/store"
	"github.com/headdira/devicetrack/utils"
)

// App errors
var (
	ErrUserNotFound    = errors.New("email not found")
	ErrDeviceNotFound  = errors.New("no device found for the given identifier")
	ErrSimcardNotFound = errors.New("no simcard found for the given identifier")
)

// App interface describes app objects
type App interface {
	HealthCheck(ctx context.Context) error
	GetFeed(ctx context.Context) (model.Feed, error)
	GetUserDevices(ctx context.Context, email string) (*model.UserBucket, error)
	SearchDevices(ctx context.Context, identifier string) ([]model.Device, error)
	GetSimcards(ctx context.Context) ([]model.Simcard, error)
	FindSimcards(ctx context.Context, identifier string) ([]model.Simcard, error)
	GetStatusSummary(ctx context.Context) (*model.StatusSummary, error)
	GetStockClassification(ctx context.Context) (*model.StockClassification, error)
	SendCommand(ctx context.Context, req model.CommandRequest) *model.CommandResult
	Location() *time.Location
}

// Config holds the static app settings, built once at startup and never
// mutated afterwards.
type Config struct {
	// Timezone for all day and night window arithmetic
	Timezone *time.Location
	// CommandAccounts is the ordered credential pool for token
	// acquisition
	CommandAccounts []string
	// CommandPassword is the shared password of the pool accounts
	CommandPassword string
}

// app is an app object
type app struct {
	store store.DataStore
	feed  feed.Client
	tft   tft.Client
	clock utils.Clock
	Config
}

// New initializes a new devicetrack App
func New(ds store.DataStore, fc feed.Client, tc tft.Client, conf Config) App {
	if conf.Timezone == nil {
		conf.Timezone = time.UTC
	}
	return &app{
		store:  ds,
		feed:   fc,
		tft:    tc,
		clock:  utils.RealClock{},
		Config: conf,
	}
}

// HealthCheck performs a health check and returns an error if it fails
func (a *app) HealthCheck(ctx context.Context) error {
	return a.store.Ping(ctx)
}

// Location returns the timezone all windows are computed in
func (a *app) Location() *time.Location {
	return a.Timezone
}

// GetFeed returns the whole device feed
func (a *app) GetFeed(ctx context.Context) (model.Feed, error) {
	return a.feed.GetFeed(ctx)
}

// GetUserDevices returns the bucket owned by one account email
func (a *app) GetUserDevices(
	ctx context.Context,
	email string,
) (*model.UserBucket, error) {
	feedData, err := a.feed.GetFeed(ctx)
	if err != nil {
		return nil, err
	}
	bucket, ok := feedData[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &bucket, nil
}

// SearchDevices returns every device whose display name or device key
// equals identifier
func (a *app) SearchDevices(
	ctx context.Context,
	identifier string,
) ([]model.Device, error) {
	feedData, err := a.feed.GetFeed(ctx)
	if err != nil {
		return nil, err
	}
	var matches []model.Device
	for _, email := range sortedKeys(feedData) {
		for _, device := range feedData[email].Devices {
			if device.Config.Name == identifier ||
				device.DeviceKey == identifier {
				matches = append(matches, device)
			}
		}
	}
	if len(matches) == 0 {
		return nil, ErrDeviceNotFound
	}
	return matches, nil
}

// GetSimcards returns the whole simcard inventory
func (a *app) GetSimcards(ctx context.Context) ([]model.Simcard, error) {
	return a.feed.GetSimcards(ctx)
}

// FindSimcards returns every simcard entry whose IMEI or ICCID equals
// identifier
func (a *app) FindSimcards(
	ctx context.Context,
	identifier string,
) ([]model.Simcard, error) {
	simcards, err := a.feed.GetSimcards(ctx)
	if err != nil {
		return nil, err
	}
	var matches []model.Simcard
	for _, simcard := range simcards {
		if simcard.Matches(identifier) {
			matches = append(matches, simcard)
		}
	}
	if len(matches) == 0 {
		return nil, ErrSimcardNotFound
	}
	return matches, nil
}

// sortedKeys gives the feed a stable iteration order across passes.
func sortedKeys(feedData model.Feed) []string {
	keys := make([]string, 0, len(feedData))
	for key := range feedData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
