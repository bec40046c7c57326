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

	"github.com/google/uuid"
	"github.com/kamlesh-nb/appinsights-go/clock"
	"github.com/kamlesh-nb/appinsights-go/contracts"
)

// AvailabilityTelemetry represents the result of one availability
// test run against a monitored endpoint.
type AvailabilityTelemetry struct {
	id           uuid.UUID
	hasID        bool
	name         string
	duration     time.Duration
	success      bool
	runLocation  string
	message      string
	timestamp    time.Time
	properties   Properties
	tags         ContextTags
	measurements Measurements
}

// NewAvailabilityTelemetry creates an availability telemetry item for
// the named test, stamped with the current time.
func NewAvailabilityTelemetry(name string, duration time.Duration, success bool) *AvailabilityTelemetry {
	return &AvailabilityTelemetry{
		name:         name,
		duration:     duration,
		success:      success,
		timestamp:    clock.Now(),
		properties:   Properties{},
		tags:         ContextTags{},
		measurements: Measurements{},
	}
}

// SetID assigns the correlation id of the test run.
func (t *AvailabilityTelemetry) SetID(id uuid.UUID) {
	t.id, t.hasID = id, true
}

// SetRunLocation records where the test was run from.
func (t *AvailabilityTelemetry) SetRunLocation(location string) {
	t.runLocation = location
}

// SetMessage records a diagnostic message for failed runs.
func (t *AvailabilityTelemetry) SetMessage(message string) {
	t.message = message
}

// Timestamp returns the time when the test was run.
func (t *AvailabilityTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the result.
func (t *AvailabilityTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the result.
func (t *AvailabilityTelemetry) Tags() ContextTags {
	return t.tags
}

// Measurements returns custom measurements submitted with the result.
func (t *AvailabilityTelemetry) Measurements() Measurements {
	return t.measurements
}

func (t *AvailabilityTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewAvailabilityData()
	data.ID = formatID(t.id, t.hasID)
	data.Name = t.name
	data.Duration = formatDuration(t.duration)
	data.Success = t.success
	data.RunLocation = t.runLocation
	data.Message = t.message
	data.Properties = properties
	data.Measurements = t.measurements
	return data
}
