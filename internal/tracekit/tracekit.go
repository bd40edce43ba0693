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

// Package tracekit generates lightweight span identifiers for a parse
// session, using only go.opentelemetry.io/otel/trace's ID types. It does
// not carry the full OTLP collector data model: x12/host.Driver tags each
// interchange's lifecycle events with a TraceContext so a report or audit
// sink can correlate them, without this repo exporting OTLP itself.
package tracekit

import (
	"crypto/rand"

	"go.opentelemetry.io/otel/trace"
)

// TraceContext identifies one parse session (TraceID) and the current
// interchange within it (SpanID).
type TraceContext struct {
	TraceID trace.TraceID
	SpanID  trace.SpanID
}

// NewTraceContext generates a fresh TraceContext for a new parse session.
func NewTraceContext() TraceContext {
	return TraceContext{
		TraceID: RandomTraceID(),
		SpanID:  RandomSpanID(),
	}
}

// NextSpan derives a new interchange-scoped SpanID while keeping the
// session's TraceID fixed, so every interchange parsed in one session
// shares a trace but gets its own span.
func (tc TraceContext) NextSpan() TraceContext {
	return TraceContext{
		TraceID: tc.TraceID,
		SpanID:  RandomSpanID(),
	}
}

// RandomTraceID generates a random TraceID.
func RandomTraceID() trace.TraceID {
	b := make([]byte, 16)
	rand.Read(b)

	ret := [16]byte{}
	copy(ret[:], b)
	return ret
}

// RandomSpanID generates a random SpanID.
func RandomSpanID() trace.SpanID {
	b := make([]byte, 8)
	rand.Read(b)

	ret := [8]byte{}
	copy(ret[:], b)
	return ret
}
