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

// PageViewData is the payload of a page view.
//
// The id field is always serialized, defaulting to the empty string
// when no correlation id was assigned. The backend schema types it as
// a required string; it must not be omitted.
type PageViewData struct {
	Ver          int
	Name         string
	URL          string
	Duration     string
	ReferrerURI  string
	ID           string
	Properties   map[string]string
	Measurements map[string]float64
}

// NewPageViewData creates a PageViewData with the current schema version.
func NewPageViewData() *PageViewData {
	return &PageViewData{Ver: 2}
}

func (d *PageViewData) BaseType() string     { return PageViewBaseType }
func (d *PageViewData) EnvelopeName() string { return PageViewEnvelopeName }

func (d *PageViewData) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	w.RawString(`,"name":`)
	w.String(d.Name)
	if d.URL != "" {
		w.RawString(`,"url":`)
		w.String(d.URL)
	}
	if d.Duration != "" {
		w.RawString(`,"duration":`)
		w.String(d.Duration)
	}
	if d.ReferrerURI != "" {
		w.RawString(`,"referrerUri":`)
		w.String(d.ReferrerURI)
	}
	w.RawString(`,"id":`)
	w.String(d.ID)
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
