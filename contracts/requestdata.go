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

// RequestData is the payload of a completed incoming request.
type RequestData struct {
	Ver          int
	ID           string
	Source       string
	Name         string
	Duration     string
	ResponseCode string
	Success      bool
	URL          string
	Properties   map[string]string
	Measurements map[string]float64
}

// NewRequestData creates a RequestData with the current schema version.
func NewRequestData() *RequestData {
	return &RequestData{Ver: 2}
}

func (d *RequestData) BaseType() string     { return RequestBaseType }
func (d *RequestData) EnvelopeName() string { return RequestEnvelopeName }

func (d *RequestData) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	// id is a required string; serialized even when empty.
	w.RawString(`,"id":`)
	w.String(d.ID)
	if d.Source != "" {
		w.RawString(`,"source":`)
		w.String(d.Source)
	}
	if d.Name != "" {
		w.RawString(`,"name":`)
		w.String(d.Name)
	}
	w.RawString(`,"duration":`)
	w.String(d.Duration)
	w.RawString(`,"responseCode":`)
	w.String(d.ResponseCode)
	w.RawString(`,"success":`)
	w.Bool(d.Success)
	if d.URL != "" {
		w.RawString(`,"url":`)
		w.String(d.URL)
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
