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

package channel

import (
	"time"

	"github.com/kamlesh-nb/appinsights-go/transmitter"
	"go.uber.org/zap"
)

type Option func(*InMemoryChannel)

// WithTransmitter sets the transmitter used to ship matured batches.
func WithTransmitter(t transmitter.Transmitter) Option {
	return func(c *InMemoryChannel) {
		c.transmitter = t
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *InMemoryChannel) {
		c.logger = logger
	}
}

// WithCapacity sets the size of the in-process envelope queue.
func WithCapacity(capacity int) Option {
	return func(c *InMemoryChannel) {
		if capacity > 0 {
			c.queue = make(chan []byte, capacity)
		}
	}
}

// WithBatchSize sets the maximum number of envelopes per batch.
func WithBatchSize(size int) Option {
	return func(c *InMemoryChannel) {
		if size > 0 {
			c.batch = newBatch(size, c.maxAge)
		}
	}
}

// WithMaxBatchAge sets how long a non-empty batch may wait before it is
// shipped regardless of its size.
func WithMaxBatchAge(age time.Duration) Option {
	return func(c *InMemoryChannel) {
		if age > 0 {
			c.maxAge = age
			c.batch = newBatch(c.batch.maxSize, age)
		}
	}
}
