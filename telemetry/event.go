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
	"time"

	"github.com/kamlesh-nb/appinsights-go/clock"
	"github.com/kamlesh-nb/appinsights-go/contracts"
)

// EventTelemetry represents a structured event of interest, such as a
// completed signup or a button click.
type EventTelemetry struct {
	name         string
	timestamp    time.Time
	properties   Properties
	tags         ContextTags
	measurements Measurements
}

// NewEventTelemetry creates an event telemetry item with the
// specified name, stamped with the current time.
func NewEventTelemetry(name string) *EventTelemetry {
	return &EventTelemetry{
		name:         name,
		timestamp:    clock.Now(),
		properties:   Properties{},
		tags:         ContextTags{},
		measurements: Measurements{},
	}
}

// Name returns the event name.
func (t *EventTelemetry) Name() string {
	return t.name
}

// Timestamp returns the time when the event was measured.
func (t *EventTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the event.
func (t *EventTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the event.
func (t *EventTelemetry) Tags() ContextTags {
	return t.tags
}

// Measurements returns custom measurements submitted with the event.
func (t *EventTelemetry) Measurements() Measurements {
	return t.measurements
}

func (t *EventTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewEventData()
	data.Name = t.name
	data.Properties = properties
	data.Measurements = t.measurements
	return data
}
