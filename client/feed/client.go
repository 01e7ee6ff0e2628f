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

package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/headdira/devicetrack/model"
)

// Client retrieves the enriched device feed and the simcard inventory.
// Every call fetches the whole source; nothing is cached between
// requests.
type Client interface {
	GetFeed(ctx context.Context) (model.Feed, error)
	GetSimcards(ctx context.Context) ([]model.Simcard, error)
}

type client struct {
	feedSource     string
	simcardsSource string
	client         *http.Client
}

// NewClient returns a feed client. Sources starting with http are
// fetched over the network, anything else is read as a local file.
func NewClient(feedSource, simcardsSource string, timeout int) Client {
	return &client{
		feedSource:     feedSource,
		simcardsSource: simcardsSource,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

func (c *client) GetFeed(ctx context.Context) (model.Feed, error) {
	feed := model.Feed{}
	if err := c.load(ctx, c.feedSource, &feed); err != nil {
		return nil, errors.Wrap(err, "feed: failed to retrieve the device feed")
	}
	return feed, nil
}

func (c *client) GetSimcards(ctx context.Context) ([]model.Simcard, error) {
	simcards := []model.Simcard{}
	if err := c.load(ctx, c.simcardsSource, &simcards); err != nil {
		return nil, errors.Wrap(err,
			"feed: failed to retrieve the simcard inventory")
	}
	return simcards, nil
}

func (c *client) load(ctx context.Context, source string, out interface{}) error {
	if strings.HasPrefix(source, "http") {
		return c.loadHTTP(ctx, source, out)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *client) loadHTTP(ctx context.Context, url string, out interface{}) error {
	l := log.FromContext(ctx)
	l.Debugf("fetching %s", url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	rsp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %v", rsp.StatusCode)
	}
	return json.NewDecoder(rsp.Body).Decode(out)
}
