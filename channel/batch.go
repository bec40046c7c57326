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
	"bytes"
	"errors"
	"sync"
	"time"

	"github.com/kamlesh-nb/appinsights-go/clock"
)

// ErrBatchFull signifies that the batch has reached full capacity
// and cannot accept more entries.
var ErrBatchFull = errors.New("batch is full")

var (
	maxSizeThreshold = 0.9
	zeroTime         = time.Time{}
)

// batch accumulates serialized envelopes until they are shipped to the
// ingestion endpoint. Entries are newline separated, matching the
// x-json-stream wire format.
type batch struct {
	mu      sync.RWMutex
	buf     bytes.Buffer
	count   int
	age     time.Time
	maxSize int
	maxAge  time.Duration
}

func newBatch(maxSize int, maxAge time.Duration) *batch {
	return &batch{
		maxSize: maxSize,
		maxAge:  maxAge,
	}
}

// Add appends a serialized envelope to the batch. Returns ErrBatchFull
// if the batch has reached its maximum size.
func (b *batch) Add(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count >= b.maxSize {
		return ErrBatchFull
	}
	if b.count > 0 {
		if err := b.buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	if _, err := b.buf.Write(data); err != nil {
		return err
	}
	if b.count == 0 {
		// For first entry, set the age of the batch
		b.age = clock.Now()
	}
	b.count++
	return nil
}

// Count returns the number of envelopes in the batch.
func (b *batch) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// ShouldShip indicates when a batch is ready for sending.
// A batch is marked as ready for flush when one of the
// below conditions is reached:
// 1. size is greater than threshold (90% of maxSize)
// 2. batch is older than maturity age
func (b *batch) ShouldShip() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return (b.count >= int(float64(b.maxSize)*maxSizeThreshold)) ||
		(!b.age.IsZero() && clock.Now().Sub(b.age) > b.maxAge)
}

// Reset resets the batch to prepare for a new set of data.
func (b *batch) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count, b.age = 0, zeroTime
	b.buf.Reset()
}

// Bytes returns the accumulated newline separated payload. The returned
// slice is only valid until the next Add or Reset.
func (b *batch) Bytes() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf.Bytes()
}
