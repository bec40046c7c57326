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

// Package clock is the process-wide time source used to stamp
// telemetry. Tests install a fixed time with Set to get
// deterministic timestamps.
package clock

import (
	"sync"
	"time"
)

var (
	mu  sync.RWMutex
	now = time.Now
)

// Now returns the current UTC wall-clock time, or the fixed time
// installed by Set.
func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return now().UTC()
}

// Set replaces the time source with one that always returns ts.
func Set(ts time.Time) {
	mu.Lock()
	defer mu.Unlock()
	now = func() time.Time { return ts }
}

// Reset restores the wall-clock time source.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	now = time.Now
}
