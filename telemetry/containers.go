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

// Properties is a collection of custom string properties.
type Properties map[string]string

// Combine returns a new collection holding every entry of p overlaid
// with every entry of overlay. On key collision the overlay wins.
// Neither operand is modified.
func (p Properties) Combine(overlay Properties) Properties {
	merged := make(Properties, len(p)+len(overlay))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// Measurements is a collection of named numeric measurements.
type Measurements map[string]float64

// Combine returns a new collection of m overlaid with overlay; the
// overlay wins on key collision.
func (m Measurements) Combine(overlay Measurements) Measurements {
	merged := make(Measurements, len(m)+len(overlay))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// ContextTags is a collection of ai.* context tags describing the
// environment a telemetry item was produced in. See the contracts
// package for the well-known keys.
type ContextTags map[string]string

// Combine returns a new collection of t overlaid with overlay; the
// overlay wins on key collision.
func (t ContextTags) Combine(overlay ContextTags) ContextTags {
	merged := make(ContextTags, len(t)+len(overlay))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}
