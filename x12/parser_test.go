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

package x12

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario1 = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *231213*1430*^*00501*000000001*0*P*:~" +
	"GS*HC*SENDER*RECEIVER*20231213*1430*1*X*005010X222A1~" +
	"ST*837*0001~" +
	"SE*2*0001~" +
	"GE*1*1~" +
	"IEA*1*000000001~"

type recordingHandler struct {
	ids []string
}

func (h *recordingHandler) Handle(seg *Segment) error {
	h.ids = append(h.ids, seg.ID())
	return nil
}

func drain(t *testing.T, p *Parser, input []byte, h Handler) int {
	t.Helper()
	total := 0
	for {
		n, err := p.ParseSegment(input[total:], h)
		if err != nil {
			require.ErrorIs(t, err, ErrIncomplete)
			return total
		}
		require.Greater(t, n, 0)
		total += n
	}
}

func TestParseSegment_Scenario1MinimalInterchange(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}

	total := drain(t, p, []byte(scenario1), h)

	assert.Equal(t, []string{"ISA", "GS", "ST", "SE", "GE", "IEA"}, h.ids)
	assert.Equal(t, len(scenario1), total)
	assert.Equal(t, stateInitial, p.state)
}

func TestParseSegment_Scenario4IncrementalFeeding(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}
	full := []byte(scenario1)

	var buf []byte
	consumedTotal := 0
	incompleteCount := 0

	for i := 0; i < len(full); i++ {
		buf = append(buf, full[i])
		for {
			n, err := p.ParseSegment(buf[consumedTotal:], h)
			if err != nil {
				require.ErrorIs(t, err, ErrIncomplete)
				incompleteCount++
				break
			}
			consumedTotal += n
		}
	}

	assert.Equal(t, []string{"ISA", "GS", "ST", "SE", "GE", "IEA"}, h.ids)
	assert.Equal(t, len(full), consumedTotal)
	assert.Greater(t, incompleteCount, 0)
}

func TestParseSegment_Scenario5MalformedEnvelopeHeader(t *testing.T) {
	bad := make([]byte, envelopeHeaderLen)
	copy(bad, scenario1)
	bad[2] = 'X' // ISA -> ISX

	p := NewParser()
	h := &recordingHandler{}

	n, err := p.ParseSegment(bad, h)

	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindInvalidSegment, perr.Kind)
	assert.Equal(t, 0, n)
	assert.Empty(t, h.ids)
	assert.Equal(t, stateInitial, p.state)
}

func TestParseSegment_IncompleteEnvelopeHeader(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}

	n, err := p.ParseSegment([]byte(scenario1[:50]), h)

	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, 0, n)
	assert.Empty(t, h.ids)
}

func TestParseSegment_IncompleteRegularSegment(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}

	// Consume the ISA header first.
	n, err := p.ParseSegment([]byte(scenario1), h)
	require.NoError(t, err)

	// Feed a truncated GS segment (no terminator yet).
	truncated := []byte(scenario1)[n : n+10]
	n2, err := p.ParseSegment(truncated, h)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, 0, n2)
}

func TestParseSegment_EmptySegmentBodyIsInvalid(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}

	_, err := p.ParseSegment([]byte(scenario1), h)
	require.NoError(t, err)

	_, err = p.ParseSegment([]byte("~"), h)
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindInvalidSegment, perr.Kind)
}

func TestParseSegment_ElementLimitExceeded(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}

	_, err := p.ParseSegment([]byte(scenario1), h)
	require.NoError(t, err)

	seg := "AAA"
	for i := 0; i < MaxElements+1; i++ {
		seg += "*x"
	}
	seg += "~"

	_, err = p.ParseSegment([]byte(seg), h)
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindElementLimitExceeded, perr.Kind)
}

func TestParseSegment_HandlerErrorStillConsumesSegment(t *testing.T) {
	p := NewParser()
	boom := errors.New("boom")
	h := HandlerFunc(func(seg *Segment) error {
		return boom
	})

	n, err := p.ParseSegment([]byte(scenario1), h)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, envelopeHeaderLen, n)
	// Handler error is still fatal to the call but does not silently
	// re-run the envelope parse: state already advanced.
	assert.Equal(t, stateProcessing, p.state)
}

func TestParseSegment_TrailingEmptyElementIsPresent(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}
	_, err := p.ParseSegment([]byte(scenario1), h)
	require.NoError(t, err)

	n, err := p.ParseSegment([]byte("AAA*1*~"), h)
	require.NoError(t, err)
	assert.Equal(t, len("AAA*1*~"), n)
	assert.Equal(t, 2, p.seg.ElementCount())
	assert.False(t, p.seg.Element(0).Empty())
	assert.True(t, p.seg.Element(1).Empty())
}

func TestReset_Idempotent(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}
	_, err := p.ParseSegment([]byte(scenario1), h)
	require.NoError(t, err)
	require.Equal(t, stateProcessing, p.state)

	p.Reset()
	p.Reset()

	assert.Equal(t, stateInitial, p.state)
	assert.Equal(t, Delimiters{}, p.Delimiters())
}

func TestParseSegment_RoundTripBytes(t *testing.T) {
	p := NewParser()
	h := &recordingHandler{}
	_, err := p.ParseSegment([]byte(scenario1), h)
	require.NoError(t, err)

	_, err = p.ParseSegment([]byte(scenario1[envelopeHeaderLen:]), h)
	require.NoError(t, err)

	d := p.Delimiters()
	assert.Equal(t, byte('*'), d.Element)
	assert.Equal(t, byte(':'), d.Component)
	assert.Equal(t, byte('~'), d.Terminator)
	assert.Equal(t, byte('^'), d.Repetition)

	// Rejoining the GS segment's id and elements with the element
	// separator, plus the terminator, reproduces its source bytes.
	var rebuilt []byte
	rebuilt = append(rebuilt, p.seg.ID()...)
	for i := 0; i < p.seg.ElementCount(); i++ {
		rebuilt = append(rebuilt, d.Element)
		rebuilt = append(rebuilt, p.seg.Element(i).Bytes()...)
	}
	rebuilt = append(rebuilt, d.Terminator)
	assert.Equal(t, "GS*HC*SENDER*RECEIVER*20231213*1430*1*X*005010X222A1~", string(rebuilt))
}
