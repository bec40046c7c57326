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
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kamlesh-nb/appinsights-go/clock"
	"github.com/kamlesh-nb/appinsights-go/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestPageViewOverridesPropertiesFromContext(t *testing.T) {
	clock.Set(time.Date(2019, 1, 2, 3, 4, 5, int(800*time.Millisecond), time.UTC))
	defer clock.Reset()

	context := NewTelemetryContext("instrumentation")
	context.Properties()["test"] = "ok"
	context.Properties()["no-write"] = "fail"

	item := NewPageViewTelemetry("page updated", parseURL(t, "https://example.com/main.html"))
	item.Properties()["no-write"] = "ok"
	item.Measurements()["latency"] = 200.0

	envelope := context.Envelop(item)

	expected := &contracts.Envelope{
		Name: "Microsoft.ApplicationInsights.PageView",
		Time: "2019-01-02T03:04:05.800Z",
		IKey: "instrumentation",
		Tags: map[string]string{},
		Data: contracts.NewData(&contracts.PageViewData{
			Ver:          2,
			Name:         "page updated",
			URL:          "https://example.com/main.html",
			ID:           "",
			Properties:   map[string]string{"test": "ok", "no-write": "ok"},
			Measurements: map[string]float64{"latency": 200.0},
		}),
	}
	assert.Equal(t, expected, envelope)
}

func TestPageViewOverridesTagsFromContext(t *testing.T) {
	clock.Set(time.Date(2019, 1, 2, 3, 4, 5, int(700*time.Millisecond), time.UTC))
	defer clock.Reset()

	context := NewTelemetryContext("instrumentation")
	context.Tags()["test"] = "ok"
	context.Tags()["no-write"] = "fail"

	item := NewPageViewTelemetry("page updated", parseURL(t, "https://example.com/main.html"))
	item.Tags()["no-write"] = "ok"

	envelope := context.Envelop(item)

	expected := &contracts.Envelope{
		Name: "Microsoft.ApplicationInsights.PageView",
		Time: "2019-01-02T03:04:05.700Z",
		IKey: "instrumentation",
		Tags: map[string]string{"test": "ok", "no-write": "ok"},
		Data: contracts.NewData(&contracts.PageViewData{
			Ver:          2,
			Name:         "page updated",
			URL:          "https://example.com/main.html",
			ID:           "",
			Properties:   map[string]string{},
			Measurements: map[string]float64{},
		}),
	}
	assert.Equal(t, expected, envelope)
}

func TestPageViewDefaultIDRendersEmpty(t *testing.T) {
	context := NewTelemetryContext("instrumentation")
	item := NewPageViewTelemetry("page updated", parseURL(t, "https://example.com/main.html"))

	data, ok := context.Envelop(item).Data.BaseData.(*contracts.PageViewData)
	require.True(t, ok)
	assert.Equal(t, "", data.ID)
}

func TestPageViewWithIDAndDuration(t *testing.T) {
	context := NewTelemetryContext("instrumentation")

	item := NewPageViewTelemetry("page updated", parseURL(t, "https://example.com/main.html"))
	item.SetID(uuid.MustParse("BFF4A842-4B4E-45E8-B0A1-0FBD4A71F502"))
	item.SetDuration(500 * time.Millisecond)

	data, ok := context.Envelop(item).Data.BaseData.(*contracts.PageViewData)
	require.True(t, ok)
	assert.Equal(t, "bff4a842-4b4e-45e8-b0a1-0fbd4a71f502", data.ID)
	assert.Equal(t, "0.00:00:00.5000000", data.Duration)
}
