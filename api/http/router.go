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

package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mendersoftware/go-lib-micro/accesslog"
	"github.com/mendersoftware/go-lib-micro/requestid"

	"github.com/headdira/devicetrack/app"
)

// API URLs used by the HTTP router
const (
	APIURLAlive  = "/alive"
	APIURLHealth = "/health"

	APIURLDevices       = "/api/devices"
	APIURLDevicesEmail  = "/api/devices/:email"
	APIURLDevicesSearch = "/api/devices/search/:identifier"

	APIURLSimcards   = "/api/simcards"
	APIURLSimcardsID = "/api/simcards/:identifier"

	APIURLStatus      = "/api/status"
	APIURLStatusStock = "/api/status/stock"

	APIURLStockNight    = APIURLStatusStock + "/communicated-at-night"
	APIURLStockNightGPS = APIURLStockNight + "/gps"
	APIURLStockNightLBS = APIURLStockNight + "/lbs"
	APIURLStockSilent   = APIURLStatusStock + "/silent"
	APIURLStockStale    = APIURLStatusStock + "/stale-location"

	APIURLSendCommand = "/api/send-command-by-imei"
)

// NewRouter returns the gin router
func NewRouter(app app.App, apiKey string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	gin.DisableConsoleColor()

	router := gin.New()
	router.Use(accesslog.Middleware())
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowCredentials: true,
		AllowHeaders: []string{
			"Accept",
			"Allow",
			"Content-Type",
			"Origin",
			"X-Api-Key",
			"Accept-Encoding",
			"Access-Control-Request-Headers",
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		MaxAge: time.Hour * 12,
	}))

	router.Use(APIKeyMiddleware(apiKey))

	status := NewStatusController(app)
	router.GET(APIURLAlive, status.Alive)
	router.GET(APIURLHealth, status.Health)
	router.GET(APIURLStatus, status.GetStatus)

	devices := NewDevicesController(app)
	router.GET(APIURLDevices, devices.List)
	router.GET(APIURLDevicesEmail, devices.GetByEmail)
	router.GET(APIURLDevicesSearch, devices.Search)
	router.GET(APIURLSimcards, devices.ListSimcards)
	router.GET(APIURLSimcardsID, devices.SearchSimcards)

	stock := NewStockController(app)
	router.GET(APIURLStatusStock, stock.Summary)
	router.GET(APIURLStockNight, stock.NightList)
	router.GET(APIURLStockNightGPS, stock.NightGPSList)
	router.GET(APIURLStockNightLBS, stock.NightLBSList)
	router.GET(APIURLStockSilent, stock.SilentList)
	router.GET(APIURLStockStale, stock.StaleList)

	command := NewCommandController(app)
	router.POST(APIURLSendCommand, command.SendByIMEI)

	return router, nil
}
