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

package appinsights

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kamlesh-nb/appinsights-go/contracts"
	"github.com/kamlesh-nb/appinsights-go/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap/zaptest"
)

// recordingChannel captures envelopes handed to it by the client.
type recordingChannel struct {
	mu        sync.Mutex
	envelopes []*contracts.Envelope
	flushed   int
	closed    bool
}

func (r *recordingChannel) Send(envelope *contracts.Envelope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envelopes = append(r.envelopes, envelope)
}

func (r *recordingChannel) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushed++
}

func (r *recordingChannel) Close(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *recordingChannel) all() []*contracts.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*contracts.Envelope(nil), r.envelopes...)
}

func newRecordingClient(t *testing.T, opts ...Option) (*TelemetryClient, *recordingChannel) {
	t.Helper()
	rec := &recordingChannel{}
	opts = append([]Option{
		WithChannel(rec),
		WithLogger(zaptest.NewLogger(t).Sugar()),
	}, opts...)
	c, err := NewTelemetryClient("instrumentation-key", opts...)
	require.NoError(t, err)
	return c, rec
}

func TestTrackHelpersProduceExpectedKinds(t *testing.T) {
	c, rec := newRecordingClient(t)

	uri, err := url.Parse("https://example.com/main")
	require.NoError(t, err)

	c.TrackEvent("click")
	c.TrackTrace("starting up", telemetry.Information)
	c.TrackMetric("queue_len", 42)
	c.TrackRequest("GET", uri, 30*time.Millisecond, "200")
	c.TrackRemoteDependency("query", "SQL", "db01", true)
	c.TrackAvailability("ping", time.Second, true)
	c.TrackPageView("main", uri)
	c.TrackException(errors.New("boom"))

	var names []string
	for _, e := range rec.all() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{
		contracts.EventEnvelopeName,
		contracts.MessageEnvelopeName,
		contracts.MetricEnvelopeName,
		contracts.RequestEnvelopeName,
		contracts.RemoteDependencyEnvelopeName,
		contracts.AvailabilityEnvelopeName,
		contracts.PageViewEnvelopeName,
		contracts.ExceptionEnvelopeName,
	}, names)
}

func TestClientStampsSDKVersionTag(t *testing.T) {
	c, rec := newRecordingClient(t)

	c.TrackEvent("click")

	envelopes := rec.all()
	require.Len(t, envelopes, 1)
	assert.Equal(t, "instrumentation-key", envelopes[0].IKey)
	assert.True(t, strings.HasPrefix(envelopes[0].Tags[contracts.InternalSDKVersion], "go:"))
}

func TestClientCommonPropertiesAndTags(t *testing.T) {
	c, rec := newRecordingClient(t,
		WithContextTag(contracts.CloudRole, "frontend"),
		WithCommonProperty("region", "westus"),
		WithCommonProperty("stage", "context"),
	)

	item := telemetry.NewEventTelemetry("click")
	item.Properties()["stage"] = "item"
	c.Track(item)

	envelopes := rec.all()
	require.Len(t, envelopes, 1)
	assert.Equal(t, "frontend", envelopes[0].Tags[contracts.CloudRole])

	data, ok := envelopes[0].Data.BaseData.(*contracts.EventData)
	require.True(t, ok)
	assert.Equal(t, "westus", data.Properties["region"])
	// Item-level properties win on collision.
	assert.Equal(t, "item", data.Properties["stage"])
}

func TestDisabledClientDropsTelemetry(t *testing.T) {
	c, rec := newRecordingClient(t)

	require.True(t, c.IsEnabled())
	c.SetIsEnabled(false)
	c.TrackEvent("click")
	c.TrackException(nil)
	assert.Empty(t, rec.all())

	c.SetIsEnabled(true)
	c.TrackEvent("click")
	assert.Len(t, rec.all(), 1)
}

func TestFlushAndShutdownDelegateToChannel(t *testing.T) {
	c, rec := newRecordingClient(t)

	c.Flush()
	require.NoError(t, c.Shutdown(context.Background()))

	assert.Equal(t, 1, rec.flushed)
	assert.True(t, rec.closed)
	assert.False(t, c.IsEnabled())
}

func TestClientSubmitsOverHTTP(t *testing.T) {
	received := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gr, err := gzip.NewReader(r.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(gr)
		require.NoError(t, err)
		received <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewTelemetryClient("instrumentation-key",
		WithEndpoint(srv.URL),
		WithLogger(zaptest.NewLogger(t).Sugar()),
	)
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = c.Shutdown(ctx)
	}()

	c.TrackEvent("click")
	c.Flush()

	select {
	case body := <-received:
		assert.Equal(t, contracts.EventEnvelopeName, gjson.Get(body, "name").Str)
		assert.Equal(t, "instrumentation-key", gjson.Get(body, "iKey").Str)
	case <-time.After(time.Second):
		t.Fatal("no payload received")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("missing-key", func(t *testing.T) {
		t.Setenv(envInstrumentationKey, "")
		_, err := FromEnv()
		require.Error(t, err)
	})
	t.Run("configured", func(t *testing.T) {
		t.Setenv(envInstrumentationKey, "env-ikey")
		t.Setenv(envEndpointURL, "https://ingestion.internal/v2/track")
		t.Setenv(envLogLevel, "warning")

		rec := &recordingChannel{}
		c, err := FromEnv(WithChannel(rec), WithLogger(zaptest.NewLogger(t).Sugar()))
		require.NoError(t, err)

		c.TrackEvent("click")
		envelopes := rec.all()
		require.Len(t, envelopes, 1)
		assert.Equal(t, "env-ikey", envelopes[0].IKey)
	})
	t.Run("bad-log-level", func(t *testing.T) {
		t.Setenv(envInstrumentationKey, "env-ikey")
		t.Setenv(envLogLevel, "chatty")
		_, err := FromEnv()
		require.Error(t, err)
	})
}
