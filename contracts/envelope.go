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

// Package contracts holds the wire-level data contracts accepted by
// the ingestion endpoint. Field names, envelope names and baseType
// discriminators are fixed wire constants and must not change.
package contracts

import (
	"sort"

	"go.elastic.co/fastjson"
)

// Envelope is the canonical record submitted to the ingestion
// endpoint. It carries exactly one typed payload in Data plus the
// shared metadata fields. Envelopes are terminal: once materialized
// they are never mutated.
type Envelope struct {
	// Name is the fixed envelope name of the payload kind.
	Name string
	// Time is the item timestamp as millisecond-precision UTC
	// RFC3339 with a literal Z suffix.
	Time string
	// IKey is the instrumentation key routing the item to a
	// destination account. Omitted from the wire when empty.
	IKey string
	// Tags holds the merged context tags. Omitted when empty.
	Tags map[string]string
	// Data is the typed payload.
	Data *Data
}

// NewEnvelope creates an empty envelope.
func NewEnvelope() *Envelope {
	return &Envelope{}
}

func (e *Envelope) MarshalFastJSON(w *fastjson.Writer) error {
	var firstErr error
	w.RawByte('{')
	w.RawString(`"name":`)
	w.String(e.Name)
	w.RawString(`,"time":`)
	w.String(e.Time)
	if e.IKey != "" {
		w.RawString(`,"iKey":`)
		w.String(e.IKey)
	}
	if len(e.Tags) > 0 {
		w.RawString(`,"tags":`)
		writeStringMap(w, e.Tags)
	}
	if e.Data != nil {
		w.RawString(`,"data":`)
		if err := e.Data.MarshalFastJSON(w); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.RawByte('}')
	return firstErr
}

// writeStringMap emits a JSON object with keys in lexicographic order
// so that serializing the same envelope twice yields identical bytes.
func writeStringMap(w *fastjson.Writer, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	w.RawByte('{')
	for i, k := range keys {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(k)
		w.RawByte(':')
		w.String(m[k])
	}
	w.RawByte('}')
}

func writeFloatMap(w *fastjson.Writer, m map[string]float64) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	w.RawByte('{')
	for i, k := range keys {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(k)
		w.RawByte(':')
		w.Float64(m[k])
	}
	w.RawByte('}')
}
