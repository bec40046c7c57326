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
	"fmt"
	"time"
)

// formatTime renders ts as millisecond-precision UTC RFC3339 with a
// literal Z suffix. The ingestion endpoint requires exactly three
// fractional digits: sub-millisecond digits are truncated and
// trailing zeros are kept.
func formatTime(ts time.Time) string {
	return ts.UTC().Format("2006-01-02T15:04:05.000Z")
}

// formatDuration renders d in the d.hh:mm:ss.ttttttt form used by
// the ingestion schema, where the fraction is 100ns ticks.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ticks := (d % time.Second) / (100 * time.Nanosecond)
	seconds := int64(d / time.Second)
	return fmt.Sprintf("%d.%02d:%02d:%02d.%07d",
		seconds/86400,
		seconds%86400/3600,
		seconds%3600/60,
		seconds%60,
		ticks)
}
