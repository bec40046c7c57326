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

package contracts

import "go.elastic.co/fastjson"

// Envelope names, one fixed constant per telemetry kind.
const (
	EventEnvelopeName            = "Microsoft.ApplicationInsights.Event"
	PageViewEnvelopeName         = "Microsoft.ApplicationInsights.PageView"
	RequestEnvelopeName          = "Microsoft.ApplicationInsights.Request"
	MessageEnvelopeName          = "Microsoft.ApplicationInsights.Message"
	RemoteDependencyEnvelopeName = "Microsoft.ApplicationInsights.RemoteDependency"
	MetricEnvelopeName           = "Microsoft.ApplicationInsights.Metric"
	ExceptionEnvelopeName        = "Microsoft.ApplicationInsights.Exception"
	AvailabilityEnvelopeName     = "Microsoft.ApplicationInsights.Availability"
)

// baseType discriminators matching the envelope names above.
const (
	EventBaseType            = "EventData"
	PageViewBaseType         = "PageViewData"
	RequestBaseType          = "RequestData"
	MessageBaseType          = "MessageData"
	RemoteDependencyBaseType = "RemoteDependencyData"
	MetricBaseType           = "MetricData"
	ExceptionBaseType        = "ExceptionData"
	AvailabilityBaseType     = "AvailabilityData"
)

// TelemetryData is implemented by every typed payload that can be
// carried in an envelope.
type TelemetryData interface {
	fastjson.Marshaler
	// BaseType returns the wire discriminator of the payload.
	BaseType() string
	// EnvelopeName returns the fixed envelope name of the payload kind.
	EnvelopeName() string
}

// Data wraps a telemetry payload with its baseType discriminator.
// Exactly one payload is populated per envelope.
type Data struct {
	BaseType string
	BaseData TelemetryData
}

// NewData wraps base into a Data with the matching discriminator.
func NewData(base TelemetryData) *Data {
	return &Data{
		BaseType: base.BaseType(),
		BaseData: base,
	}
}

func (d *Data) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"baseType":`)
	w.String(d.BaseType)
	w.RawString(`,"baseData":`)
	err := d.BaseData.MarshalFastJSON(w)
	w.RawByte('}')
	return err
}
