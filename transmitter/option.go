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

package transmitter

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Option func(*HTTPTransmitter)

// WithEndpoint sets the ingestion endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(t *HTTPTransmitter) {
		t.endpoint = endpoint
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(t *HTTPTransmitter) {
		t.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client used for submissions.
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransmitter) {
		t.client = client
	}
}

// WithTimeout sets the submission timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(t *HTTPTransmitter) {
		t.client.Timeout = timeout
	}
}
