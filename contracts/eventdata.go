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

// EventData is the payload of a named event.
type EventData struct {
	Ver          int
	Name         string
	Properties   map[string]string
	Measurements map[string]float64
}

// NewEventData creates an EventData with the current schema version.
func NewEventData() *EventData {
	return &EventData{Ver: 2}
}

func (d *EventData) BaseType() string     { return EventBaseType }
func (d *EventData) EnvelopeName() string { return EventEnvelopeName }

func (d *EventData) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	w.RawString(`,"name":`)
	w.String(d.Name)
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
