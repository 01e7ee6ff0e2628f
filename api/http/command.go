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

// CommandController contains the command dispatch end-point
type CommandController struct {
	app app.App
}

// NewCommandController returns a new CommandController
func NewCommandController(app app.App) *CommandController {
	return &CommandController{app: app}
}

// SendByIMEI responds to POST /api/send-command-by-imei. The request is
// rejected before any upstream call when the body is malformed or
// misses a required field.
func (h CommandController) SendByIMEI(c *gin.Context) {
	ctx := c.Request.Context()

	req := model.CommandRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result := h.app.SendCommand(ctx, req)
	c.JSON(result.HTTPStatus, result)
}
