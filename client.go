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

// Package appinsights is a client for submitting application telemetry
// to the Application Insights ingestion service. A TelemetryClient
// assembles tracked items into envelopes and hands them to a channel
// for batched delivery.
package appinsights

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/kamlesh-nb/appinsights-go/channel"
	"github.com/kamlesh-nb/appinsights-go/contracts"
	"github.com/kamlesh-nb/appinsights-go/logger"
	"github.com/kamlesh-nb/appinsights-go/telemetry"
	"github.com/kamlesh-nb/appinsights-go/transmitter"
	"github.com/kamlesh-nb/appinsights-go/version"
	"go.uber.org/zap"
)

// TelemetryClient tracks application telemetry and submits it through a
// telemetry channel. All Track methods are safe for concurrent use.
type TelemetryClient struct {
	context *telemetry.TelemetryContext
	channel channel.TelemetryChannel
	logger  *zap.SugaredLogger
	enabled atomic.Bool
}

// NewTelemetryClient creates a client submitting telemetry for the given
// instrumentation key. Without options the client ships batches to the
// public ingestion endpoint using an in-memory channel.
func NewTelemetryClient(instrumentationKey string, opts ...Option) (*TelemetryClient, error) {
	cfg := newConfig(instrumentationKey)
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		l, err := logger.New(logger.WithLevel(cfg.logLevel))
		if err != nil {
			return nil, err
		}
		cfg.logger = l
	}

	ch := cfg.channel
	if ch == nil {
		transmitterOpts := []transmitter.Option{
			transmitter.WithLogger(cfg.logger),
		}
		if cfg.endpoint != "" {
			transmitterOpts = append(transmitterOpts, transmitter.WithEndpoint(cfg.endpoint))
		}
		if cfg.httpClient != nil {
			transmitterOpts = append(transmitterOpts, transmitter.WithHTTPClient(cfg.httpClient))
		}
		tr, err := transmitter.New(transmitterOpts...)
		if err != nil {
			return nil, err
		}

		channelOpts := []channel.Option{
			channel.WithTransmitter(tr),
			channel.WithLogger(cfg.logger),
		}
		if cfg.batchSize > 0 {
			channelOpts = append(channelOpts, channel.WithBatchSize(cfg.batchSize))
		}
		if cfg.batchInterval > 0 {
			channelOpts = append(channelOpts, channel.WithMaxBatchAge(cfg.batchInterval))
		}
		ch, err = channel.NewInMemoryChannel(channelOpts...)
		if err != nil {
			return nil, err
		}
	}

	tc := telemetry.NewTelemetryContext(instrumentationKey)
	tc.Tags()[contracts.InternalSDKVersion] = version.SDKName + ":" + version.Version
	for k, v := range cfg.contextTags {
		tc.Tags()[k] = v
	}
	for k, v := range cfg.commonProperties {
		tc.Properties()[k] = v
	}

	c := &TelemetryClient{
		context: tc,
		channel: ch,
		logger:  cfg.logger,
	}
	c.enabled.Store(true)
	return c, nil
}

// Context returns the client's telemetry context. Tags and properties
// set on it apply to all subsequently tracked items.
func (c *TelemetryClient) Context() *telemetry.TelemetryContext {
	return c.context
}

// Channel returns the underlying telemetry channel.
func (c *TelemetryClient) Channel() channel.TelemetryChannel {
	return c.channel
}

// IsEnabled reports whether the client is accepting telemetry.
func (c *TelemetryClient) IsEnabled() bool {
	return c.enabled.Load()
}

// SetIsEnabled toggles telemetry collection. While disabled, Track
// calls are discarded.
func (c *TelemetryClient) SetIsEnabled(enabled bool) {
	c.enabled.Store(enabled)
}

// Track assembles the item into an envelope and queues it for
// submission. Disabled clients and nil items are no-ops.
func (c *TelemetryClient) Track(item telemetry.Telemetry) {
	if item == nil || !c.IsEnabled() {
		return
	}
	c.channel.Send(c.context.Envelop(item))
}

// TrackEvent tracks a named custom event.
func (c *TelemetryClient) TrackEvent(name string) {
	c.Track(telemetry.NewEventTelemetry(name))
}

// TrackTrace tracks a log message with the given severity.
func (c *TelemetryClient) TrackTrace(message string, severity telemetry.SeverityLevel) {
	c.Track(telemetry.NewTraceTelemetry(message, severity))
}

// TrackMetric tracks a single metric sample.
func (c *TelemetryClient) TrackMetric(name string, value float64) {
	c.Track(telemetry.NewMetricTelemetry(name, value))
}

// TrackRequest tracks an incoming request with its outcome derived from
// the response code.
func (c *TelemetryClient) TrackRequest(method string, uri *url.URL, duration time.Duration, responseCode string) {
	c.Track(telemetry.NewRequestTelemetry(method, uri, duration, responseCode))
}

// TrackRemoteDependency tracks a call to an external component.
func (c *TelemetryClient) TrackRemoteDependency(name, dependencyType, target string, success bool) {
	c.Track(telemetry.NewRemoteDependencyTelemetry(name, dependencyType, target, success))
}

// TrackAvailability tracks the result of an availability test.
func (c *TelemetryClient) TrackAvailability(name string, duration time.Duration, success bool) {
	c.Track(telemetry.NewAvailabilityTelemetry(name, duration, success))
}

// TrackPageView tracks a page view.
func (c *TelemetryClient) TrackPageView(name string, uri *url.URL) {
	c.Track(telemetry.NewPageViewTelemetry(name, uri))
}

// TrackException tracks an error with a Critical severity.
func (c *TelemetryClient) TrackException(err error) {
	if err == nil {
		return
	}
	c.Track(telemetry.NewExceptionTelemetry(err, telemetry.Critical))
}

// Flush forces submission of all queued telemetry and waits for the
// batch to be handed to the transmitter.
func (c *TelemetryClient) Flush() {
	c.channel.Flush()
}

// Shutdown flushes pending telemetry and stops the channel. The client
// must not be used afterwards.
func (c *TelemetryClient) Shutdown(ctx context.Context) error {
	c.SetIsEnabled(false)
	return c.channel.Close(ctx)
}
