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

// TraceTelemetry represents a printf-style trace message with a
// severity level. Traces carry no measurements.
type TraceTelemetry struct {
	message    string
	severity   SeverityLevel
	timestamp  time.Time
	properties Properties
	tags       ContextTags
}

// NewTraceTelemetry creates a trace telemetry item with the specified
// message and severity, stamped with the current time.
func NewTraceTelemetry(message string, severity SeverityLevel) *TraceTelemetry {
	return &TraceTelemetry{
		message:    message,
		severity:   severity,
		timestamp:  clock.Now(),
		properties: Properties{},
		tags:       ContextTags{},
	}
}

// Timestamp returns the time when the trace was measured.
func (t *TraceTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the trace.
func (t *TraceTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the trace.
func (t *TraceTelemetry) Tags() ContextTags {
	return t.tags
}

func (t *TraceTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewMessageData()
	data.Message = t.message
	data.SeverityLevel = contracts.SeverityLevel(t.severity)
	data.Properties = properties
	return data
}
