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

// Package transmitter submits serialized telemetry batches to the
// ingestion endpoint. Failed submissions are reported once and never
// retried.
package transmitter

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/kamlesh-nb/appinsights-go/version"
)

const (
	defaultEndpoint = "https://dc.services.visualstudio.com/v2/track"
	defaultTimeout  = 10 * time.Second
)

// Transmitter ships one serialized batch of telemetry items.
type Transmitter interface {
	Transmit(ctx context.Context, payload []byte, items int) error
}

// HTTPTransmitter posts gzip-compressed batches of newline-delimited
// envelope JSON to the ingestion endpoint.
type HTTPTransmitter struct {
	endpoint   string
	client     *http.Client
	logger     *zap.SugaredLogger
	bufferPool sync.Pool
}

// New creates an HTTPTransmitter for the default public ingestion
// endpoint unless WithEndpoint overrides it. A logger is required.
func New(opts ...Option) (*HTTPTransmitter, error) {
	t := HTTPTransmitter{
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: defaultTimeout},
		bufferPool: sync.Pool{New: func() interface{} {
			return &bytes.Buffer{}
		}},
	}

	for _, opt := range opts {
		opt(&t)
	}

	if t.endpoint == "" {
		return nil, errors.New("ingestion endpoint cannot be empty")
	}
	if t.logger == nil {
		return nil, errors.New("logger cannot be empty")
	}

	return &t, nil
}

// Transmit compresses payload and posts it to the ingestion endpoint.
// A nil return means the endpoint took responsibility for the batch;
// partially accepted batches are logged item by item and still count
// as delivered.
func (t *HTTPTransmitter) Transmit(ctx context.Context, payload []byte, items int) error {
	buf := t.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		t.bufferPool.Put(buf)
	}()

	gw, err := gzip.NewWriterLevel(buf, gzip.BestSpeed)
	if err != nil {
		return err
	}
	if _, err := gw.Write(payload); err != nil {
		return fmt.Errorf("failed to compress telemetry batch: %w", err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("failed to write compressed batch to buffer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, buf)
	if err != nil {
		return fmt.Errorf("failed to create ingestion request: %w", err)
	}
	req.Header.Add("Content-Encoding", "gzip")
	req.Header.Add("Content-Type", "application/x-json-stream")
	req.Header.Set("User-Agent", version.UserAgent)

	t.logger.Debugf("Sending %d telemetry items to the ingestion endpoint", items)
	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to ingestion endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logger.Warnf("Failed to read ingestion response body: %v", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusPartialContent:
		t.logRejectedItems(body)
		return nil
	default:
		t.logRejectedItems(body)
		return fmt.Errorf("ingestion endpoint refused the batch: response status: %s", resp.Status)
	}
}

// logRejectedItems reports per-item rejections from the ingestion
// response body. The body is a JSON document with itemsReceived,
// itemsAccepted and an errors array carrying index, statusCode and
// message per rejected item.
func (t *HTTPTransmitter) logRejectedItems(body []byte) {
	if len(body) == 0 {
		return
	}

	received := gjson.GetBytes(body, "itemsReceived").Int()
	accepted := gjson.GetBytes(body, "itemsAccepted").Int()
	if accepted < received {
		t.logger.Warnf("Ingestion endpoint accepted %d of %d telemetry items", accepted, received)
	}
	for _, item := range gjson.GetBytes(body, "errors").Array() {
		t.logger.Warnf("Telemetry item %d rejected: status %d: %s",
			item.Get("index").Int(),
			item.Get("statusCode").Int(),
			item.Get("message").String())
	}
}
