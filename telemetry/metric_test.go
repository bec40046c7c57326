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
	"testing"

	"github.com/kamlesh-nb/appinsights-go/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricTelemetryData(t *testing.T) {
	item := NewMetricTelemetry("latency", 200)

	data, ok := item.TelemetryData(Properties{"region": "westus"}).(*contracts.MetricData)
	require.True(t, ok)
	require.Len(t, data.Metrics, 1)

	point := data.Metrics[0]
	assert.Equal(t, "latency", point.Name)
	assert.Equal(t, contracts.Measurement, point.Kind)
	assert.Equal(t, 200.0, point.Value)
	assert.Equal(t, 1, point.Count)
	assert.Equal(t, map[string]string{"region": "westus"}, data.Properties)
}

func TestAggregateMetricTelemetryData(t *testing.T) {
	item := NewAggregateMetricTelemetry("latency")
	item.AddData(100, 200, 300)
	require.Equal(t, 3, item.Count())

	data := item.TelemetryData(Properties{}).(*contracts.MetricData)
	require.Len(t, data.Metrics, 1)

	point := data.Metrics[0]
	assert.Equal(t, contracts.Aggregation, point.Kind)
	assert.Equal(t, 600.0, point.Value)
	assert.Equal(t, 3, point.Count)
	assert.Equal(t, 100.0, point.Min)
	assert.Equal(t, 300.0, point.Max)
	assert.InDelta(t, 81.65, point.StdDev, 0.01)
}

func TestAggregateMetricEmpty(t *testing.T) {
	item := NewAggregateMetricTelemetry("latency")

	data := item.TelemetryData(Properties{}).(*contracts.MetricData)
	require.Len(t, data.Metrics, 1)
	assert.Zero(t, data.Metrics[0].Value)
	assert.Zero(t, data.Metrics[0].Count)
	assert.Zero(t, data.Metrics[0].StdDev)
}
