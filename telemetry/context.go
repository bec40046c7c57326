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

import "github.com/kamlesh-nb/appinsights-go/contracts"

// TelemetryContext holds the client-wide defaults merged into every
// outgoing telemetry item: the instrumentation key, default context
// tags and default properties.
//
// A context is created once at client construction and mutated only
// through its accessors. It is not safe for concurrent mutation; the
// embedding client must stop mutating it before items are enveloped
// from multiple goroutines.
type TelemetryContext struct {
	iKey       string
	tags       ContextTags
	properties Properties
}

// NewTelemetryContext creates a context for the given instrumentation
// key with empty defaults.
func NewTelemetryContext(iKey string) *TelemetryContext {
	return &TelemetryContext{
		iKey:       iKey,
		tags:       ContextTags{},
		properties: Properties{},
	}
}

// InstrumentationKey returns the destination account key.
func (c *TelemetryContext) InstrumentationKey() string {
	return c.iKey
}

// Tags returns the default context tags. The returned map is live:
// inserts are visible to subsequent conversions.
func (c *TelemetryContext) Tags() ContextTags {
	return c.tags
}

// Properties returns the default properties. The returned map is
// live, like Tags.
func (c *TelemetryContext) Properties() Properties {
	return c.properties
}

// Envelop combines the context defaults with a telemetry item and
// materializes the canonical envelope:
//
//   - envelope name and baseType come from the item's payload kind
//   - time is the item timestamp in millisecond UTC form
//   - iKey is the context key, omitted from the wire when empty
//   - tags and payload properties are right-biased merges with the
//     context as base and the item as overlay
//   - measurements come from the item alone
//
// Conversion is a total function: it assumes valid inputs, cannot
// fail and is free of side effects, so enveloping the same pair
// twice yields identical envelopes. Neither the context nor the item
// is retained by the result.
func (c *TelemetryContext) Envelop(item Telemetry) *contracts.Envelope {
	data := contracts.NewData(item.TelemetryData(c.properties.Combine(item.Properties())))

	envelope := contracts.NewEnvelope()
	envelope.Name = data.BaseData.EnvelopeName()
	envelope.Time = formatTime(item.Timestamp())
	envelope.IKey = c.iKey
	envelope.Tags = c.tags.Combine(item.Tags())
	envelope.Data = data
	return envelope
}
