// Copyright 2026 The x12stream Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tracekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTraceContext(t *testing.T) {
	tc := NewTraceContext()
	assert.NotEqual(t, [16]byte{}, [16]byte(tc.TraceID))
	assert.NotEqual(t, [8]byte{}, [8]byte(tc.SpanID))
}

func TestNextSpanKeepsTraceID(t *testing.T) {
	tc := NewTraceContext()
	next := tc.NextSpan()

	assert.Equal(t, tc.TraceID, next.TraceID)
	assert.NotEqual(t, tc.SpanID, next.SpanID)
}

func TestRandomIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, RandomTraceID(), RandomTraceID())
	assert.NotEqual(t, RandomSpanID(), RandomSpanID())
}
