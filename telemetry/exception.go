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
	"fmt"
	"time"

	"github.com/kamlesh-nb/appinsights-go/clock"
	"github.com/kamlesh-nb/appinsights-go/contracts"
)

// ExceptionTelemetry represents an error surfaced to the caller,
// optionally with a captured stack.
type ExceptionTelemetry struct {
	typeName     string
	message      string
	severity     SeverityLevel
	frames       []*contracts.StackFrame
	timestamp    time.Time
	properties   Properties
	tags         ContextTags
	measurements Measurements
}

// NewExceptionTelemetry creates an exception telemetry item from err,
// stamped with the current time. The exception type name is the
// dynamic type of err.
func NewExceptionTelemetry(err error, severity SeverityLevel) *ExceptionTelemetry {
	return &ExceptionTelemetry{
		typeName:     fmt.Sprintf("%T", err),
		message:      err.Error(),
		severity:     severity,
		timestamp:    clock.Now(),
		properties:   Properties{},
		tags:         ContextTags{},
		measurements: Measurements{},
	}
}

// AddFrame appends a stack frame to the captured stack, outermost
// frame first.
func (t *ExceptionTelemetry) AddFrame(method, fileName string, line int) {
	t.frames = append(t.frames, &contracts.StackFrame{
		Level:    len(t.frames),
		Method:   method,
		FileName: fileName,
		Line:     line,
	})
}

// Timestamp returns the time when the exception was recorded.
func (t *ExceptionTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the exception.
func (t *ExceptionTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the exception.
func (t *ExceptionTelemetry) Tags() ContextTags {
	return t.tags
}

// Measurements returns custom measurements submitted with the exception.
func (t *ExceptionTelemetry) Measurements() Measurements {
	return t.measurements
}

func (t *ExceptionTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewExceptionData()
	data.Exceptions = []*contracts.ExceptionDetails{{
		TypeName:     t.typeName,
		Message:      t.message,
		HasFullStack: len(t.frames) > 0,
		ParsedStack:  t.frames,
	}}
	data.SeverityLevel = contracts.SeverityLevel(t.severity)
	data.Properties = properties
	data.Measurements = t.measurements
	return data
}
