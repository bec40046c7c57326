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
	"time"

	"github.com/google/uuid"
	"github.com/kamlesh-nb/appinsights-go/clock"
	"github.com/kamlesh-nb/appinsights-go/contracts"
)

// PageViewTelemetry represents a view of a page identified by its
// URL. The URL must already be parsed; constructing an item never
// re-validates it.
type PageViewTelemetry struct {
	id           uuid.UUID
	hasID        bool
	name         string
	uri          url.URL
	duration     time.Duration
	hasDuration  bool
	timestamp    time.Time
	properties   Properties
	tags         ContextTags
	measurements Measurements
}

// NewPageViewTelemetry creates a page view telemetry item with the
// specified name and URL, stamped with the current time.
func NewPageViewTelemetry(name string, uri *url.URL) *PageViewTelemetry {
	return &PageViewTelemetry{
		name:         name,
		uri:          *uri,
		timestamp:    clock.Now(),
		properties:   Properties{},
		tags:         ContextTags{},
		measurements: Measurements{},
	}
}

// SetID assigns the correlation id used to tie the page view to
// telemetry generated by downstream services.
func (t *PageViewTelemetry) SetID(id uuid.UUID) {
	t.id, t.hasID = id, true
}

// SetDuration records how long the page took to load.
func (t *PageViewTelemetry) SetDuration(d time.Duration) {
	t.duration, t.hasDuration = d, true
}

// Timestamp returns the time when the page view was measured.
func (t *PageViewTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the page view.
func (t *PageViewTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the page view.
func (t *PageViewTelemetry) Tags() ContextTags {
	return t.tags
}

// Measurements returns custom measurements submitted with the page view.
func (t *PageViewTelemetry) Measurements() Measurements {
	return t.measurements
}

func (t *PageViewTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewPageViewData()
	data.Name = t.name
	data.URL = t.uri.String()
	if t.hasDuration {
		data.Duration = formatDuration(t.duration)
	}
	data.ID = formatID(t.id, t.hasID)
	data.Properties = properties
	data.Measurements = t.measurements
	return data
}
