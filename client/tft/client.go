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

// Package tft talks to the TFT IoT open platform: token acquisition on
// the auth endpoint and command delivery on the waiting-send-cmds
// endpoint.
package tft

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"
)

const clientType = "web"

// Client is the TFT open platform client
type Client interface {
	// GetAccessToken trades one account's credentials for a session
	// token. An empty token with a nil error means the platform
	// answered but did not grant one.
	GetAccessToken(ctx context.Context, account, passwordMD5 string) (string, error)
	// SendCommand delivers message to the given IMEIs using token.
	SendCommand(
		ctx context.Context,
		token string,
		imeis []string,
		message string,
	) (*CommandResponse, error)
}

// CommandResponse is the decoded command endpoint reply. Body keeps the
// full payload for pass-through to the caller.
type CommandResponse struct {
	Code       int64
	Msg        string
	StatusCode int
	Body       map[string]interface{}
}

type authRequest struct {
	GetAccessToken authCredentials `json:"getAccessToken"`
}

type authCredentials struct {
	Account     string `json:"account"`
	PasswordMD5 string `json:"password-md5"`
	ClientType  string `json:"client-type"`
}

type authResponse struct {
	AccessToken string `json:"access-token"`
}

type commandRequest struct {
	IMEIs   []string `json:"imeis"`
	Message string   `json:"message"`
}

type client struct {
	authURL       string
	commandURL    string
	authClient    *http.Client
	commandClient *http.Client
}

// NewClient returns a TFT client with separate timeouts, in seconds,
// for the auth and command endpoints.
func NewClient(authURL, commandURL string, authTimeout, commandTimeout int) Client {
	return &client{
		authURL:    authURL,
		commandURL: commandURL,
		authClient: &http.Client{
			Timeout: time.Duration(authTimeout) * time.Second,
		},
		commandClient: &http.Client{
			Timeout: time.Duration(commandTimeout) * time.Second,
		},
	}
}

func (c *client) GetAccessToken(
	ctx context.Context,
	account, passwordMD5 string,
) (string, error) {
	l := log.FromContext(ctx)

	payload, _ := json.Marshal(authRequest{
		GetAccessToken: authCredentials{
			Account:     account,
			PasswordMD5: passwordMD5,
			ClientType:  clientType,
		},
	})
	req, err := http.NewRequestWithContext(ctx, "POST",
		c.authURL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "tft: error preparing auth request")
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := c.authClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "tft: auth request failed")
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return "", errors.Errorf(
			"tft: auth request failed with unexpected status %v",
			rsp.StatusCode)
	}

	auth := authResponse{}
	if err := json.NewDecoder(rsp.Body).Decode(&auth); err != nil {
		return "", errors.Wrap(err, "tft: error parsing auth response")
	}
	l.Debugf("auth response for account %s: token present: %v",
		account, auth.AccessToken != "")
	return auth.AccessToken, nil
}

func (c *client) SendCommand(
	ctx context.Context,
	token string,
	imeis []string,
	message string,
) (*CommandResponse, error) {
	payload, _ := json.Marshal(commandRequest{
		IMEIs:   imeis,
		Message: message,
	})
	req, err := http.NewRequestWithContext(ctx, "POST",
		c.commandURL+"?access-token="+url.QueryEscape(token),
		bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "tft: error preparing command request")
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := c.commandClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "tft: command request failed")
	}
	defer rsp.Body.Close()

	body := map[string]interface{}{}
	if err := json.NewDecoder(rsp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "tft: error parsing command response")
	}

	response := &CommandResponse{
		Code:       -1,
		StatusCode: rsp.StatusCode,
		Body:       body,
	}
	if code, ok := body["code"].(float64); ok {
		response.Code = int64(code)
	}
	if msg, ok := body["msg"].(string); ok {
		response.Msg = msg
	}
	return response, nil
}

// IsTimeout reports whether err is a deadline or transport timeout.
func IsTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

// IsNetwork reports whether err is a transport-level failure (refused,
// unreachable, DNS) as opposed to a local or decoding error.
func IsNetwork(err error) bool {
	var urlErr *url.Error
	return stderrors.As(err, &urlErr)
}
