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

package host

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x12stream/x12parse/x12"
)

const scenario1 = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *231213*1430*^*00501*000000001*0*P*:~" +
	"GS*HC*SENDER*RECEIVER*20231213*1430*1*X*005010X222A1~" +
	"ST*837*0001~" +
	"SE*2*0001~" +
	"GE*1*1~" +
	"IEA*1*000000001~"

func TestDriver_RunDeliversAllSegments(t *testing.T) {
	d := New(DefaultConfig())
	var ids []string
	handler := x12.HandlerFunc(func(seg *x12.Segment) error {
		ids = append(ids, seg.ID())
		return nil
	})

	stats, err := d.Run(strings.NewReader(scenario1), handler)
	require.NoError(t, err)
	assert.Equal(t, []string{"ISA", "GS", "ST", "SE", "GE", "IEA"}, ids)
	assert.EqualValues(t, len(scenario1), stats.BytesRead)
	assert.EqualValues(t, 6, stats.SegmentsDelivered)
}

func TestDriver_OversizeSegmentRaisesSegmentTooLarge(t *testing.T) {
	cfg := Config{InitialBufferSize: 256, MaxBufferSize: 1024, ResizeMultiplier: 2}
	d := New(cfg)

	var body strings.Builder
	body.WriteString("AAA")
	for body.Len() < 4*1024 {
		body.WriteString("*x")
	}

	handler := x12.HandlerFunc(func(seg *x12.Segment) error { return nil })

	// Feed a valid ISA first so the parser is in Processing state and
	// actually searching for a terminator within the oversize segment.
	src := io.MultiReader(strings.NewReader(scenario1[:106]), strings.NewReader(body.String()))

	_, err := d.Run(src, handler)
	require.Error(t, err)
	var perr *x12.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, x12.KindSegmentTooLarge, perr.Kind)
}

func TestDriver_IncrementalReaderYieldsSameSegments(t *testing.T) {
	d := New(DefaultConfig())
	var ids []string
	handler := x12.HandlerFunc(func(seg *x12.Segment) error {
		ids = append(ids, seg.ID())
		return nil
	})

	// A reader that returns one byte at a time exercises the
	// Incomplete/refill loop heavily.
	stats, err := d.Run(&oneByteReader{data: []byte(scenario1)}, handler)
	require.NoError(t, err)
	assert.Equal(t, []string{"ISA", "GS", "ST", "SE", "GE", "IEA"}, ids)
	assert.EqualValues(t, len(scenario1), stats.BytesRead)
}

type oneByteReader struct {
	data []byte
	pos  int
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:r.pos+1])
	r.pos += n
	return n, nil
}

func TestWindow_GrowAndCompact(t *testing.T) {
	w := NewWindow(4)
	assert.Equal(t, 4, w.Capacity())

	ok := w.Grow(2, 16)
	require.True(t, ok)
	assert.Equal(t, 8, w.Capacity())

	copy(w.Tail(), []byte("abcdefgh"))
	w.Filled(8)
	w.Advance(5)
	assert.True(t, w.ShouldCompact())

	w.Compact()
	assert.Equal(t, 0, w.consumed)
	assert.Equal(t, 3, w.filled)
}

func TestWindow_GrowStopsAtMaxSize(t *testing.T) {
	w := NewWindow(8)
	ok := w.Grow(2, 8)
	assert.False(t, ok)
	assert.Equal(t, 8, w.Capacity())
}
