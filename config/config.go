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

package config

import (
	"github.com/mendersoftware/go-lib-micro/config"
)

const (
	// SettingListen is the config key for the listen address
	SettingListen = "listen"
	// SettingListenDefault is the default value for the listen address
	SettingListenDefault = ":8080"

	// SettingDebugLog is the config key for the turning on the debug log
	SettingDebugLog = "debug_log"
	// SettingDebugLogDefault is the default value for the debug log enabling
	SettingDebugLogDefault = false

	// SettingAPIKey is the config key for the x-api-key gate value
	SettingAPIKey = "api_key"

	// SettingFeedURL is the config key for the device feed source; an
	// http(s) URL or a local file path
	SettingFeedURL = "feed_url"
	// SettingFeedURLDefault is the default value for the feed source
	SettingFeedURLDefault = "https://headdira.github.io/api-rastreamento" +
		"/enriched_devices_data.json"

	// SettingSimcardsPath is the config key for the simcards source
	SettingSimcardsPath = "simcards_path"
	// SettingSimcardsPathDefault is the default value for the simcards source
	SettingSimcardsPathDefault = "data/endpoints_filtrados.json"

	// SettingSQLitePath is the config key for the devices database file
	SettingSQLitePath = "sqlite_path"
	// SettingSQLitePathDefault is the default value for the database file
	SettingSQLitePathDefault = "data/devices_data.sqlite"

	// SettingTimezone is the config key for the civil timezone used for
	// all day and night window arithmetic
	SettingTimezone = "timezone"
	// SettingTimezoneDefault is the default value for the timezone
	SettingTimezoneDefault = "America/Sao_Paulo"

	// SettingCommandAuthURL is the config key for the command API auth
	// endpoint
	SettingCommandAuthURL = "command_auth_url"
	// SettingCommandAuthURLDefault is the default value for the auth endpoint
	SettingCommandAuthURLDefault = "http://openapi.tftiot.com/v2/auth/action"

	// SettingCommandURL is the config key for the command API dispatch
	// endpoint
	SettingCommandURL = "command_url"
	// SettingCommandURLDefault is the default value for the dispatch endpoint
	SettingCommandURLDefault = "https://openapi.tftiot.com" +
		"/v2/device-waiting-send-cmds"

	// SettingCommandAccounts is the config key for the ordered list of
	// command API accounts tried during token acquisition
	SettingCommandAccounts = "command_accounts"

	// SettingCommandPassword is the config key for the shared command API
	// password
	SettingCommandPassword = "command_password"

	// SettingAuthTimeout is the config key for the auth call timeout in
	// seconds
	SettingAuthTimeout = "auth_timeout"
	// SettingAuthTimeoutDefault is the default value for the auth timeout
	SettingAuthTimeoutDefault = 30

	// SettingCommandTimeout is the config key for the dispatch call
	// timeout in seconds
	SettingCommandTimeout = "command_timeout"
	// SettingCommandTimeoutDefault is the default value for the dispatch
	// timeout
	SettingCommandTimeoutDefault = 45

	// SettingFeedTimeout is the config key for the feed fetch timeout in
	// seconds
	SettingFeedTimeout = "feed_timeout"
	// SettingFeedTimeoutDefault is the default value for the feed timeout
	SettingFeedTimeoutDefault = 30
)

var (
	// Defaults are the default configuration settings
	Defaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingDebugLog, Value: SettingDebugLogDefault},
		{Key: SettingFeedURL, Value: SettingFeedURLDefault},
		{Key: SettingSimcardsPath, Value: SettingSimcardsPathDefault},
		{Key: SettingSQLitePath, Value: SettingSQLitePathDefault},
		{Key: SettingTimezone, Value: SettingTimezoneDefault},
		{Key: SettingCommandAuthURL, Value: SettingCommandAuthURLDefault},
		{Key: SettingCommandURL, Value: SettingCommandURLDefault},
		{Key: SettingAuthTimeout, Value: SettingAuthTimeoutDefault},
		{Key: SettingCommandTimeout, Value: SettingCommandTimeoutDefault},
		{Key: SettingFeedTimeout, Value: SettingFeedTimeoutDefault},
	}
)
