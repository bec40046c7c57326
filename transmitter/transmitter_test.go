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

package transmitter_test

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kamlesh-nb/appinsights-go/transmitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

const batch = `{"name":"Microsoft.ApplicationInsights.Event","time":"2019-01-02T03:04:05.800Z"}
{"name":"Microsoft.ApplicationInsights.Event","time":"2019-01-02T03:04:05.900Z"}`

func newTransmitter(t *testing.T, endpoint string) *transmitter.HTTPTransmitter {
	t.Helper()
	tr, err := transmitter.New(
		transmitter.WithEndpoint(endpoint),
		transmitter.WithLogger(zaptest.NewLogger(t).Sugar()),
	)
	require.NoError(t, err)
	return tr
}

func TestTransmitCompressesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Content-Encoding"))
		assert.Equal(t, "application/x-json-stream", r.Header.Get("Content-Type"))
		assert.Contains(t, r.Header.Get("User-Agent"), "appinsights-go")

		gr, err := gzip.NewReader(r.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(gr)
		require.NoError(t, err)
		assert.Equal(t, batch, string(body))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTransmitter(t, srv.URL)
	assert.NoError(t, tr.Transmit(context.Background(), []byte(batch), 2))
}

func TestTransmitPartialContent(t *testing.T) {
	response, err := sjson.Set(`{}`, "itemsReceived", 2)
	require.NoError(t, err)
	response, err = sjson.Set(response, "itemsAccepted", 1)
	require.NoError(t, err)
	response, err = sjson.SetRaw(response, "errors",
		`[{"index":1,"statusCode":400,"message":"106: Field 'name' on type 'Envelope' is required"}]`)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPartialContent)
		_, _ = w.Write([]byte(response))
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	tr, err := transmitter.New(
		transmitter.WithEndpoint(srv.URL),
		transmitter.WithLogger(zap.New(core).Sugar()),
	)
	require.NoError(t, err)

	// Partially accepted batches count as delivered.
	assert.NoError(t, tr.Transmit(context.Background(), []byte(batch), 2))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "accepted 1 of 2")
	assert.Contains(t, entries[1].Message, "item 1 rejected")
}

func TestTransmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"itemsReceived":2,"itemsAccepted":0,"errors":[]}`))
	}))
	defer srv.Close()

	tr := newTransmitter(t, srv.URL)
	err := tr.Transmit(context.Background(), []byte(batch), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}

func TestTransmitContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := newTransmitter(t, srv.URL)
	assert.Error(t, tr.Transmit(ctx, []byte(batch), 2))
}

func TestNewValidation(t *testing.T) {
	t.Run("missing-logger", func(t *testing.T) {
		_, err := transmitter.New()
		require.Error(t, err)
	})
	t.Run("empty-endpoint", func(t *testing.T) {
		_, err := transmitter.New(
			transmitter.WithEndpoint(""),
			transmitter.WithLogger(zaptest.NewLogger(t).Sugar()),
		)
		require.Error(t, err)
	})
}
