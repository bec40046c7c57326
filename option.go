// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package appinsights

import (
	"net/http"
	"time"

	"github.com/kamlesh-nb/appinsights-go/channel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config collects the client settings before the channel and the
// transmitter are built.
type config struct {
	instrumentationKey string
	endpoint           string
	batchSize          int
	batchInterval      time.Duration
	logLevel           zapcore.Level
	logger             *zap.SugaredLogger
	channel            channel.TelemetryChannel
	httpClient         *http.Client
	contextTags        map[string]string
	commonProperties   map[string]string
}

func newConfig(instrumentationKey string) *config {
	return &config{
		instrumentationKey: instrumentationKey,
		logLevel:           zapcore.InfoLevel,
		contextTags:        make(map[string]string),
		commonProperties:   make(map[string]string),
	}
}

type Option func(*config)

// WithEndpoint overrides the ingestion endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithBatchSize sets the maximum number of envelopes per batch.
func WithBatchSize(size int) Option {
	return func(c *config) {
		c.batchSize = size
	}
}

// WithBatchInterval sets how long a non-empty batch may wait before it
// is shipped regardless of its size.
func WithBatchInterval(interval time.Duration) Option {
	return func(c *config) {
		c.batchInterval = interval
	}
}

// WithLogLevel sets the minimum diagnostic log level used when the
// client builds its own logger.
func WithLogLevel(level zapcore.Level) Option {
	return func(c *config) {
		c.logLevel = level
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithChannel replaces the default in-memory channel. The caller owns
// the channel's lifecycle options; endpoint, batch and HTTP client
// options are ignored when a channel is supplied.
func WithChannel(ch channel.TelemetryChannel) Option {
	return func(c *config) {
		c.channel = ch
	}
}

// WithHTTPClient sets the HTTP client used for ingestion requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithContextTag sets a tag applied to every envelope, for example
// contracts.CloudRole.
func WithContextTag(key, value string) Option {
	return func(c *config) {
		c.contextTags[key] = value
	}
}

// WithCommonProperty sets a property merged into every tracked item.
// Item-level properties take precedence on collision.
func WithCommonProperty(key, value string) Option {
	return func(c *config) {
		c.commonProperties[key] = value
	}
}
