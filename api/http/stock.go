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

	"github.com/gin-gonic/gin"

	"github.com/headdira/devicetrack/app"
	"github.com/headdira/devicetrack/model"
)

// StockController serves the stock communication-status end-points.
// Every request reclassifies the live feed; results are never cached.
type StockController struct {
	app app.App
}

// NewStockController returns a new StockController
func NewStockController(app app.App) *StockController {
	return &StockController{app: app}
}

// Summary responds to GET /api/status/stock
func (h StockController) Summary(c *gin.Context) {
	classification, ok := h.classify(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, classification.Summary())
}

// NightList responds to GET /api/status/stock/communicated-at-night
func (h StockController) NightList(c *gin.Context) {
	classification, ok := h.classify(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, deviceListings(classification.CommunicatedAtNight))
}

// NightGPSList responds to GET /api/status/stock/communicated-at-night/gps
func (h StockController) NightGPSList(c *gin.Context) {
	classification, ok := h.classify(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, deviceListings(classification.CommunicatedAtNightGPS))
}

// NightLBSList responds to GET /api/status/stock/communicated-at-night/lbs
func (h StockController) NightLBSList(c *gin.Context) {
	classification, ok := h.classify(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, deviceListings(classification.CommunicatedAtNightLBS))
}

// SilentList responds to GET /api/status/stock/silent
func (h StockController) SilentList(c *gin.Context) {
	classification, ok := h.classify(c)
	if !ok {
		return
	}
	listings := make([]model.SilentListing, 0, len(classification.Silent))
	for _, device := range classification.Silent {
		listings = append(listings,
			model.NewSilentListing(device, h.app.Location()))
	}
	c.JSON(http.StatusOK, listings)
}

// StaleList responds to GET /api/status/stock/stale-location
func (h StockController) StaleList(c *gin.Context) {
	classification, ok := h.classify(c)
	if !ok {
		return
	}
	listings := make([]model.StaleListing, 0, len(classification.StaleLocation))
	for _, device := range classification.StaleLocation {
		listings = append(listings, model.NewStaleListing(device))
	}
	c.JSON(http.StatusOK, listings)
}

func (h StockController) classify(c *gin.Context) (*model.StockClassification, bool) {
	classification, err := h.app.GetStockClassification(c.Request.Context())
	if err != nil {
		renderFeedError(c, err)
		return nil, false
	}
	return classification, true
}

func deviceListings(devices []model.Device) []model.DeviceListing {
	listings := make([]model.DeviceListing, 0, len(devices))
	for _, device := range devices {
		listings = append(listings, model.NewDeviceListing(device))
	}
	return listings
}
