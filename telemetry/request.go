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

package telemetry

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kamlesh-nb/appinsights-go/clock"
	"github.com/kamlesh-nb/appinsights-go/contracts"
)

// RequestTelemetry represents a completed incoming request.
type RequestTelemetry struct {
	id           uuid.UUID
	hasID        bool
	name         string
	uri          url.URL
	source       string
	duration     time.Duration
	responseCode string
	success      bool
	timestamp    time.Time
	properties   Properties
	tags         ContextTags
	measurements Measurements
}

// NewRequestTelemetry creates a request telemetry item for a request
// with the given method, URL, duration and response code. The name is
// derived as "METHOD path" and success from the response code: codes
// below 400, plus 401, count as success.
func NewRequestTelemetry(method string, uri *url.URL, duration time.Duration, responseCode string) *RequestTelemetry {
	path := uri.Path
	if path == "" {
		path = "/"
	}
	return &RequestTelemetry{
		name:         method + " " + path,
		uri:          *uri,
		duration:     duration,
		responseCode: responseCode,
		success:      requestSucceeded(responseCode),
		timestamp:    clock.Now(),
		properties:   Properties{},
		tags:         ContextTags{},
		measurements: Measurements{},
	}
}

// 401 counts as success: the request reached the handler and was
// answered as designed.
func requestSucceeded(responseCode string) bool {
	code, err := strconv.Atoi(responseCode)
	if err != nil {
		return true
	}
	return code < 400 || code == 401
}

// SetID assigns the correlation id of the request.
func (t *RequestTelemetry) SetID(id uuid.UUID) {
	t.id, t.hasID = id, true
}

// SetSource names the source of the request, e.g. the instrumentation
// key of the caller.
func (t *RequestTelemetry) SetSource(source string) {
	t.source = source
}

// SetSuccess overrides the success flag derived from the response code.
func (t *RequestTelemetry) SetSuccess(success bool) {
	t.success = success
}

// Timestamp returns the time when the request was measured.
func (t *RequestTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the request.
func (t *RequestTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the request.
func (t *RequestTelemetry) Tags() ContextTags {
	return t.tags
}

// Measurements returns custom measurements submitted with the request.
func (t *RequestTelemetry) Measurements() Measurements {
	return t.measurements
}

func (t *RequestTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewRequestData()
	data.ID = formatID(t.id, t.hasID)
	data.Source = t.source
	data.Name = t.name
	data.Duration = formatDuration(t.duration)
	data.ResponseCode = t.responseCode
	data.Success = t.success
	data.URL = t.uri.String()
	data.Properties = properties
	data.Measurements = t.measurements
	return data
}
