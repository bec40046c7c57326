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
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCombine(t *testing.T) {
	t.Run("overlay-wins", func(t *testing.T) {
		base := Properties{"test": "ok", "no-write": "fail"}
		overlay := Properties{"no-write": "ok"}

		assert.Equal(t, Properties{"test": "ok", "no-write": "ok"}, base.Combine(overlay))
	})
	t.Run("operands-unchanged", func(t *testing.T) {
		base := ContextTags{"a": "1"}
		overlay := ContextTags{"a": "2", "b": "3"}
		merged := base.Combine(overlay)
		merged["c"] = "4"

		assert.Equal(t, ContextTags{"a": "1"}, base)
		assert.Equal(t, ContextTags{"a": "2", "b": "3"}, overlay)
	})
	t.Run("identities", func(t *testing.T) {
		base := Measurements{"latency": 200}

		assert.Equal(t, base, base.Combine(Measurements{}))
		assert.Equal(t, base, Measurements{}.Combine(base))
		assert.Equal(t, Measurements{}, Measurements{}.Combine(Measurements{}))
	})
}

func TestCombineRightBias(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := Properties(rapid.MapOf(rapid.String(), rapid.String()).Draw(t, "base"))
		overlay := Properties(rapid.MapOf(rapid.String(), rapid.String()).Draw(t, "overlay"))

		merged := base.Combine(overlay)

		for k, v := range overlay {
			if merged[k] != v {
				t.Fatalf("overlay key %q: got %q, want %q", k, merged[k], v)
			}
		}
		for k, v := range base {
			if _, overridden := overlay[k]; !overridden && merged[k] != v {
				t.Fatalf("base key %q: got %q, want %q", k, merged[k], v)
			}
		}
		for k := range merged {
			_, inBase := base[k]
			_, inOverlay := overlay[k]
			if !inBase && !inOverlay {
				t.Fatalf("merged key %q appears in neither operand", k)
			}
		}
	})
}

func TestCombineIdentityLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := Properties(rapid.MapOf(rapid.String(), rapid.String()).Draw(t, "m"))

		left := Properties{}.Combine(m)
		right := m.Combine(Properties{})
		if len(left) != len(m) || len(right) != len(m) {
			t.Fatalf("identity changed size: %d / %d, want %d", len(left), len(right), len(m))
		}
		for k, v := range m {
			if left[k] != v || right[k] != v {
				t.Fatalf("identity changed key %q", k)
			}
		}
	})
}
