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

// Package telemetry holds the user-facing telemetry items and the
// machinery that combines them with the client-wide context into
// wire envelopes.
package telemetry

import (
	"time"

	"github.com/google/uuid"
	"github.com/kamlesh-nb/appinsights-go/contracts"
)

// SeverityLevel classifies traces and exceptions.
type SeverityLevel int

const (
	Verbose SeverityLevel = iota
	Information
	Warning
	Error
	Critical
)

// Telemetry is implemented by every telemetry item.
type Telemetry interface {
	// Timestamp returns the time when the item was measured.
	Timestamp() time.Time

	// Properties returns custom properties submitted with the item.
	// Entries override same-named client context properties.
	Properties() Properties

	// Tags returns extra context tags. Entries override same-named
	// client context tags.
	Tags() ContextTags

	// TelemetryData maps the item to its typed wire payload. The
	// passed properties are the already merged context and item
	// properties.
	TelemetryData(properties Properties) contracts.TelemetryData
}

// formatID renders a correlation id as its lowercase hyphenated
// form, or the empty string when the id was never assigned. The
// wire schema types id fields as required strings, so "" stands in
// for absent.
func formatID(id uuid.UUID, ok bool) string {
	if !ok {
		return ""
	}
	return id.String()
}
