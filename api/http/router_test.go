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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/headdira/devicetrack/app"
	app_mocks "github.com/headdira/devicetrack/app/mocks"
)

const testAPIKey = "testkey"

func testRouter(t *testing.T, a app.App) *gin.Engine {
	router, err := NewRouter(a, testAPIKey)
	if err != nil {
		t.Fatal(err)
	}
	return router
}

func doRequest(
	router *gin.Engine,
	method, path, apiKey, body string,
) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if apiKey != "" {
		req.Header.Set(HdrKeyAPIKey, apiKey)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAPIKeyMiddleware(t *testing.T) {
	mockApp := &app_mocks.App{}
	mockApp.On("GetFeed", mock.Anything).Return(nil, nil)
	router := testRouter(t, mockApp)

	// probes pass without a key
	w := doRequest(router, "GET", APIURLAlive, "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	// /api routes reject a missing key
	w = doRequest(router, "GET", APIURLDevices, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid x-api-key")

	// and a wrong one
	w = doRequest(router, "GET", APIURLDevices, "wrong", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the right key goes through to the handler
	w = doRequest(router, "GET", APIURLDevices, testAPIKey, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// OPTIONS preflights never need a key
	req, _ := http.NewRequest("OPTIONS", APIURLDevices, nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
