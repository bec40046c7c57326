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
	"math"
	"time"

	"github.com/kamlesh-nb/appinsights-go/clock"
	"github.com/kamlesh-nb/appinsights-go/contracts"
)

// MetricTelemetry represents a single sampled value of a metric.
type MetricTelemetry struct {
	name       string
	value      float64
	timestamp  time.Time
	properties Properties
	tags       ContextTags
}

// NewMetricTelemetry creates a metric telemetry item for a single
// sample, stamped with the current time.
func NewMetricTelemetry(name string, value float64) *MetricTelemetry {
	return &MetricTelemetry{
		name:       name,
		value:      value,
		timestamp:  clock.Now(),
		properties: Properties{},
		tags:       ContextTags{},
	}
}

// Timestamp returns the time when the metric was measured.
func (t *MetricTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the metric.
func (t *MetricTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the metric.
func (t *MetricTelemetry) Tags() ContextTags {
	return t.tags
}

func (t *MetricTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	data := contracts.NewMetricData()
	data.Metrics = []*contracts.DataPoint{{
		Name:  t.name,
		Kind:  contracts.Measurement,
		Value: t.value,
		Count: 1,
	}}
	data.Properties = properties
	return data
}

// AggregateMetricTelemetry represents a pre-aggregated set of metric
// samples submitted as a single data point.
type AggregateMetricTelemetry struct {
	name       string
	sum        float64
	sumSquares float64
	count      int
	min        float64
	max        float64
	timestamp  time.Time
	properties Properties
	tags       ContextTags
}

// NewAggregateMetricTelemetry creates an empty aggregate for the
// named metric, stamped with the current time. Samples are added
// with AddData.
func NewAggregateMetricTelemetry(name string) *AggregateMetricTelemetry {
	return &AggregateMetricTelemetry{
		name:       name,
		timestamp:  clock.Now(),
		properties: Properties{},
		tags:       ContextTags{},
	}
}

// AddData folds the given samples into the aggregate.
func (t *AggregateMetricTelemetry) AddData(values ...float64) {
	for _, v := range values {
		if t.count == 0 || v < t.min {
			t.min = v
		}
		if t.count == 0 || v > t.max {
			t.max = v
		}
		t.sum += v
		t.sumSquares += v * v
		t.count++
	}
}

// Count returns the number of samples folded in so far.
func (t *AggregateMetricTelemetry) Count() int {
	return t.count
}

// Timestamp returns the time when the aggregate was created.
func (t *AggregateMetricTelemetry) Timestamp() time.Time {
	return t.timestamp
}

// Properties returns custom properties submitted with the aggregate.
func (t *AggregateMetricTelemetry) Properties() Properties {
	return t.properties
}

// Tags returns extra context tags submitted with the aggregate.
func (t *AggregateMetricTelemetry) Tags() ContextTags {
	return t.tags
}

func (t *AggregateMetricTelemetry) TelemetryData(properties Properties) contracts.TelemetryData {
	point := &contracts.DataPoint{
		Name:  t.name,
		Kind:  contracts.Aggregation,
		Value: t.sum,
		Count: t.count,
		Min:   t.min,
		Max:   t.max,
	}
	if t.count > 0 {
		mean := t.sum / float64(t.count)
		variance := t.sumSquares/float64(t.count) - mean*mean
		if variance > 0 {
			point.StdDev = math.Sqrt(variance)
		}
	}

	data := contracts.NewMetricData()
	data.Metrics = []*contracts.DataPoint{point}
	data.Properties = properties
	return data
}
