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

// Package channel buffers serialized telemetry envelopes and ships them
// in batches to the ingestion endpoint.
package channel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kamlesh-nb/appinsights-go/contracts"
	"github.com/kamlesh-nb/appinsights-go/transmitter"
	"go.elastic.co/fastjson"
	"go.uber.org/zap"
)

const (
	defaultCapacity  = 1024
	defaultBatchSize = 1024
	defaultMaxAge    = 10 * time.Second
)

// TelemetryChannel accepts assembled envelopes for eventual delivery.
type TelemetryChannel interface {
	// Send queues an envelope for batched submission. It never blocks;
	// envelopes are dropped if the channel buffer is full.
	Send(envelope *contracts.Envelope)
	// Flush requests submission of the current batch regardless of its
	// maturity and waits for the batch to be handed to the transmitter.
	Flush()
	// Close flushes pending telemetry and stops the background loop. No
	// envelopes are accepted after Close returns.
	Close(ctx context.Context) error
}

// InMemoryChannel is a TelemetryChannel holding envelopes in a bounded
// in-process queue. A single background goroutine drains the queue into
// a batch and ships it when the batch matures.
type InMemoryChannel struct {
	transmitter transmitter.Transmitter
	logger      *zap.SugaredLogger
	batch       *batch
	queue       chan []byte
	flushCh     chan chan struct{}
	stopCh      chan struct{}
	stopOnce    sync.Once
	doneCh      chan struct{}
	maxAge      time.Duration
}

// NewInMemoryChannel creates a channel and starts its background loop.
// A transmitter and a logger are required.
func NewInMemoryChannel(opts ...Option) (*InMemoryChannel, error) {
	c := &InMemoryChannel{
		batch:   newBatch(defaultBatchSize, defaultMaxAge),
		queue:   make(chan []byte, defaultCapacity),
		flushCh: make(chan chan struct{}),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		maxAge:  defaultMaxAge,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transmitter == nil {
		return nil, errors.New("transmitter must be set")
	}
	if c.logger == nil {
		return nil, errors.New("logger must be set")
	}
	go c.run()
	return c, nil
}

// Send serializes the envelope and queues it for submission. Serialization
// happens at enqueue time so the caller may reuse or mutate the envelope
// afterwards. Envelopes that fail to serialize or do not fit the queue are
// dropped with a log entry.
func (c *InMemoryChannel) Send(envelope *contracts.Envelope) {
	if envelope == nil {
		return
	}
	var w fastjson.Writer
	if err := envelope.MarshalFastJSON(&w); err != nil {
		c.logger.Errorf("Failed to serialize telemetry envelope: %v", err)
		return
	}
	select {
	case c.queue <- w.Bytes():
	default:
		c.logger.Warnf("Telemetry queue is full, dropping envelope %s", envelope.Name)
	}
}

// Flush triggers submission of the accumulated batch and blocks until the
// background loop has handed the batch to the transmitter.
func (c *InMemoryChannel) Flush() {
	ack := make(chan struct{})
	select {
	case c.flushCh <- ack:
		<-ack
	case <-c.doneCh:
	}
}

// Close drains the queue, ships any remaining telemetry and stops the
// background loop. The context bounds the final transmission.
func (c *InMemoryChannel) Close(ctx context.Context) error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	select {
	case <-c.doneCh:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (c *InMemoryChannel) run() {
	defer close(c.doneCh)
	ticker := time.NewTicker(c.maxAge)
	defer ticker.Stop()
	for {
		select {
		case data := <-c.queue:
			c.append(data)
			if c.batch.ShouldShip() {
				c.ship(context.Background())
			}
		case <-ticker.C:
			if c.batch.ShouldShip() {
				c.ship(context.Background())
			}
		case ack := <-c.flushCh:
			c.drain()
			c.ship(context.Background())
			close(ack)
		case <-c.stopCh:
			c.drain()
			c.ship(context.Background())
			return
		}
	}
}

// drain moves whatever is already queued into the batch without waiting
// for more telemetry to arrive.
func (c *InMemoryChannel) drain() {
	for {
		select {
		case data := <-c.queue:
			c.append(data)
		default:
			return
		}
	}
}

func (c *InMemoryChannel) append(data []byte) {
	if err := c.batch.Add(data); err != nil {
		if errors.Is(err, ErrBatchFull) {
			c.ship(context.Background())
			err = c.batch.Add(data)
		}
		if err != nil {
			c.logger.Errorf("Failed to buffer telemetry envelope: %v", err)
		}
	}
}

func (c *InMemoryChannel) ship(ctx context.Context) {
	count := c.batch.Count()
	if count == 0 {
		return
	}
	if err := c.transmitter.Transmit(ctx, c.batch.Bytes(), count); err != nil {
		c.logger.Errorf("Failed to submit %d telemetry items: %v", count, err)
	}
	c.batch.Reset()
}
