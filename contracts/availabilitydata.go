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

// AvailabilityData is the payload of an availability test result.
type AvailabilityData struct {
	Ver          int
	ID           string
	Name         string
	Duration     string
	Success      bool
	RunLocation  string
	Message      string
	Properties   map[string]string
	Measurements map[string]float64
}

// NewAvailabilityData creates an AvailabilityData with the current
// schema version.
func NewAvailabilityData() *AvailabilityData {
	return &AvailabilityData{Ver: 2}
}

func (d *AvailabilityData) BaseType() string     { return AvailabilityBaseType }
func (d *AvailabilityData) EnvelopeName() string { return AvailabilityEnvelopeName }

func (d *AvailabilityData) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	// id is a required string; serialized even when empty.
	w.RawString(`,"id":`)
	w.String(d.ID)
	w.RawString(`,"name":`)
	w.String(d.Name)
	w.RawString(`,"duration":`)
	w.String(d.Duration)
	w.RawString(`,"success":`)
	w.Bool(d.Success)
	if d.RunLocation != "" {
		w.RawString(`,"runLocation":`)
		w.String(d.RunLocation)
	}
	if d.Message != "" {
		w.RawString(`,"message":`)
		w.String(d.Message)
	}
	if len(d.Properties) > 0 {
		w.RawString(`,"properties":`)
		writeStringMap(w, d.Properties)
	}
	if len(d.Measurements) > 0 {
		w.RawString(`,"measurements":`)
		writeFloatMap(w, d.Measurements)
	}
	w.RawByte('}')
	return nil
}
