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
	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/headdira/devicetrack/app"
)

// DevicesController contains the device and simcard lookup end-points
type DevicesController struct {
	app app.App
}

// NewDevicesController returns a new DevicesController
func NewDevicesController(app app.App) *DevicesController {
	return &DevicesController{app: app}
}

// List responds to GET /api/devices with the whole feed
func (h DevicesController) List(c *gin.Context) {
	ctx := c.Request.Context()

	feed, err := h.app.GetFeed(ctx)
	if err != nil {
		renderFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// GetByEmail responds to GET /api/devices/:email with one account's
// bucket
func (h DevicesController) GetByEmail(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.Param("email")

	bucket, err := h.app.GetUserDevices(ctx, email)
	if err == app.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		renderFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, bucket)
}

// Search responds to GET /api/devices/search/:identifier, matching on
// display name or device key
func (h DevicesController) Search(c *gin.Context) {
	ctx := c.Request.Context()
	identifier := c.Param("identifier")

	devices, err := h.app.SearchDevices(ctx, identifier)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		renderFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

// ListSimcards responds to GET /api/simcards with the whole inventory
func (h DevicesController) ListSimcards(c *gin.Context) {
	ctx := c.Request.Context()

	simcards, err := h.app.GetSimcards(ctx)
	if err != nil {
		renderFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, simcards)
}

// SearchSimcards responds to GET /api/simcards/:identifier, matching on
// IMEI or ICCID
func (h DevicesController) SearchSimcards(c *gin.Context) {
	ctx := c.Request.Context()
	identifier := c.Param("identifier")

	simcards, err := h.app.FindSimcards(ctx, identifier)
	if err == app.ErrSimcardNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		renderFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, simcards)
}

// renderFeedError reports an unreachable or malformed feed source. The
// whole request aborts; there is no partial feed processing.
func renderFeedError(c *gin.Context, err error) {
	l := log.FromContext(c.Request.Context())
	l.Error(err)
	c.JSON(http.StatusBadGateway, gin.H{
		"error": err.Error(),
	})
}
