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

// RemoteDependencyTelemetry represents a call to an external
// component: an HTTP endpoint, a database, a queue.
type RemoteDependencyTelemetry struct {
	id             uuid.UUID
	hasID          bool
	name           string
	dependencyType string
	target         string
	success        bool
	resultCode     string
	data           string
	duration       time.Duration
	hasDuration    bool
	timestamp      time.Time
	properties     Properties
	tags           ContextTags
	measurements   Measurements
}

// NewRemoteDependencyTelemetry creates a dependency telemetry item
// with the specified name, type (e.g. "HTTP", "SQL"), target host and
// outcome, stamped with the current time.
func NewRemoteDependencyTelemetry(name, dependencyType, target string, success bool) *RemoteDependencyTelemetry {
	return &RemoteDependencyTelemetry{
		name:           name,
		dependencyType: dependencyType,
		target:         target,
		success:        success,
		timestamp:      clock.Now(),
		properties:     Properties{},
		tags:           ContextTags{},
		measurements:   Measurements{},
	}
}

// SetID assigns the correlation id of the dependency call.
func (t *RemoteDependencyTelemetry) SetID(id uuid.UUID) {
	t.id, t.hasID = id, true
}

// SetDuration records how long the dependency call took.
func (t *RemoteDependencyTelemetry) SetDuration(d time.Duration) {
	t.duration, t.hasDuration = d, true
}

// SetResultCode records the result code of the call, e.g. an HTTP
// status or a SQL error code.
func (t *RemoteDependencyTelemetry) SetResultCode(code string) {
	t.resultCode = code
}

// SetData records the command issued to the dependency, e.g. the full
// URL or the SQL statement.
func (t *RemoteDependencyTelemetry) SetData(data string) {
	t.data = data
}

// Timestamp returns the time when the dependency call was measured.
func (t *RemoteDependencyTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the call.
func (t *RemoteDependencyTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the call.
func (t *RemoteDependencyTelemetry) Tags() ContextTags {
	return t.tags
}

// Measurements returns custom measurements submitted with the call.
func (t *RemoteDependencyTelemetry) Measurements() Measurements {
	return t.measurements
}

func (t *RemoteDependencyTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewRemoteDependencyData()
	data.Name = t.name
	data.ID = formatID(t.id, t.hasID)
	data.ResultCode = t.resultCode
	if t.hasDuration {
		data.Duration = formatDuration(t.duration)
	}
	data.Success = t.success
	data.Data = t.data
	data.Target = t.target
	data.Type = t.dependencyType
	data.Properties = properties
	data.Measurements = t.measurements
	return data
}
