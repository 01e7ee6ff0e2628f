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
	"crypto/md5"
	"encoding/hex"
	"net/http"

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/headdira/devicetrack/client/tft"
	"github.com/headdira/devicetrack/model"
)

// SendCommand validates the requested IMEIs, acquires a session token
// from the credential pool and forwards the command to the TFT
// platform. The outcome, including every failure class, is encoded in
// the returned result rather than an error: the HTTP layer only has to
// render it.
func (a *app) SendCommand(
	ctx context.Context,
	req model.CommandRequest,
) *model.CommandResult {
	valid, invalid := model.PartitionIMEIs(req.IMEIs)
	if len(valid) == 0 {
		return &model.CommandResult{
			Success:      false,
			Error:        "no valid IMEI provided",
			InvalidIMEIs: invalid,
			HTTPStatus:   http.StatusBadRequest,
		}
	}

	token := a.acquireToken(ctx)
	if token == "" {
		return &model.CommandResult{
			Success:      false,
			Error:        "could not obtain a valid token for command dispatch",
			InvalidIMEIs: invalid,
			HTTPStatus:   http.StatusInternalServerError,
		}
	}

	rsp, err := a.tft.SendCommand(ctx, token, valid, req.Command)
	if err != nil {
		return dispatchFailure(ctx, err, invalid)
	}

	if rsp.StatusCode == http.StatusOK && rsp.Code == 0 {
		return &model.CommandResult{
			Success:      true,
			Message:      "commands dispatched successfully",
			InvalidIMEIs: invalid,
			Upstream:     rsp.Body,
			DispatchID:   uuid.NewString(),
			HTTPStatus:   http.StatusOK,
		}
	}

	// transport succeeded but the platform rejected the command;
	// surface its own diagnostics
	msg := rsp.Msg
	if msg == "" {
		msg = "unknown command API error"
	}
	code := rsp.Code
	return &model.CommandResult{
		Success:        false,
		Error:          msg,
		Code:           &code,
		UpstreamStatus: rsp.StatusCode,
		InvalidIMEIs:   invalid,
		HTTPStatus:     http.StatusBadRequest,
	}
}

// acquireToken walks the credential pool in order and returns the first
// token granted, or "" when the whole pool is exhausted. A failing
// credential never aborts the iteration.
func (a *app) acquireToken(ctx context.Context) string {
	l := log.FromContext(ctx)

	digest := md5.Sum([]byte(a.CommandPassword))
	passwordMD5 := hex.EncodeToString(digest[:])

	for _, account := range a.CommandAccounts {
		token, err := a.tft.GetAccessToken(ctx, account, passwordMD5)
		if err != nil {
			l.Warnf("token acquisition failed for account %s: %s",
				account, err.Error())
			continue
		}
		if token != "" {
			return token
		}
	}
	return ""
}

// dispatchFailure maps a transport error to its failure class: timeouts
// are gateway timeouts, connection failures are service unavailable,
// anything else is an internal error.
func dispatchFailure(
	ctx context.Context,
	err error,
	invalid []string,
) *model.CommandResult {
	l := log.FromContext(ctx)
	l.Errorf("command dispatch failed: %s", err.Error())

	result := &model.CommandResult{
		Success:      false,
		InvalidIMEIs: invalid,
	}
	switch {
	case tft.IsTimeout(err):
		result.Error = "timeout communicating with the command API"
		result.HTTPStatus = http.StatusGatewayTimeout
	case tft.IsNetwork(err):
		result.Error = "network error: " + err.Error()
		result.HTTPStatus = http.StatusServiceUnavailable
	default:
		result.Error = "unexpected error: " + err.Error()
		result.HTTPStatus = http.StatusInternalServerError
	}
	return result
}
