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

// DataPointType discriminates single measurements from pre-aggregated
// metric samples.
type DataPointType int

const (
	Measurement DataPointType = iota
	Aggregation
)

// DataPoint is a single metric sample carried in MetricData.
type DataPoint struct {
	NS    string
	Name  string
	Kind  DataPointType
	Value float64
	// Count, Min, Max and StdDev describe the aggregate; they are
	// serialized only for Aggregation data points.
	Count  int
	Min    float64
	Max    float64
	StdDev float64
}

func (p *DataPoint) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawByte('{')
	if p.NS != "" {
		w.RawString(`"ns":`)
		w.String(p.NS)
		w.RawByte(',')
	}
	w.RawString(`"name":`)
	w.String(p.Name)
	w.RawString(`,"kind":`)
	w.Int64(int64(p.Kind))
	w.RawString(`,"value":`)
	w.Float64(p.Value)
	if p.Kind == Aggregation {
		w.RawString(`,"count":`)
		w.Int64(int64(p.Count))
		w.RawString(`,"min":`)
		w.Float64(p.Min)
		w.RawString(`,"max":`)
		w.Float64(p.Max)
		w.RawString(`,"stdDev":`)
		w.Float64(p.StdDev)
	}
	w.RawByte('}')
	return nil
}

// MetricData is the payload of one or more metric samples.
type MetricData struct {
	Ver        int
	Metrics    []*DataPoint
	Properties map[string]string
}

// NewMetricData creates a MetricData with the current schema version.
func NewMetricData() *MetricData {
	return &MetricData{Ver: 2}
}

func (d *MetricData) BaseType() string     { return MetricBaseType }
func (d *MetricData) EnvelopeName() string { return MetricEnvelopeName }

func (d *MetricData) MarshalFastJSON(w *fastjson.Writer) error {
	var firstErr error
	w.RawString(`{"ver":`)
	w.Int64(int64(d.Ver))
	w.RawString(`,"metrics":[`)
	for i, p := range d.Metrics {
		if i > 0 {
			w.RawByte(',')
		}
		if err := p.MarshalFastJSON(w); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.RawByte(']')
	if len(d.Properties) > 0 {
		w.RawString(`,"properties":`)
		writeStringMap(w, d.Properties)
	}
	w.RawByte('}')
	return firstErr
}
