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

// Package x12 is a resumable, zero-copy state machine for X12 EDI
// interchanges. It accepts arbitrary byte slices, self-configures its
// delimiters from the ISA envelope header, and yields one segment view
// at a time to a Handler, signaling Incomplete without losing progress
// when the slice ends mid-segment.
package x12

import (
	"bytes"

	"github.com/x12stream/x12parse/internal/splitio"
)

type parserState uint8

const (
	// stateInitial - delimiter table not yet established; awaiting the
	// ISA envelope header.
	stateInitial parserState = iota

	// stateProcessing - delimiter table populated; parsing
	// delimiter-framed segments.
	stateProcessing
)

// envelopeHeaderLen is the fixed width of the ISA segment: identifier
// through terminator, inclusive.
const envelopeHeaderLen = 106

// Parser is a single-threaded, resumable X12 segment parser. It is not
// safe for concurrent use; a validator suite or handler observing one
// Parser's output must do so on the same goroutine that drives it.
type Parser struct {
	state  parserState
	delims Delimiters
	seg    Segment
}

// NewParser returns a Parser in Initial state.
func NewParser() *Parser {
	return &Parser{}
}

// Reset returns the parser to Initial and clears the delimiter table.
// Idempotent: Reset(); Reset() has the same effect as one Reset().
func (p *Parser) Reset() {
	p.state = stateInitial
	p.delims = Delimiters{}
}

// Delimiters returns the delimiter table currently in force. The zero
// value is returned while the parser is in Initial state.
func (p *Parser) Delimiters() Delimiters {
	return p.delims
}

// ParseSegment examines a prefix of input sufficient to produce exactly
// one segment.
//
// On success it invokes handler exactly once and returns the number of
// bytes consumed, inclusive of the trailing terminator and any
// inter-segment CR/LF skipped afterward (and, for an ISA header, any
// CR/LF skipped before it).
//
// On ErrIncomplete, no handler call occurs, consumed is 0, and the
// parser's state is unchanged: calling ParseSegment again with a longer
// prefix of the same logical stream will succeed.
//
// On any other *ParseError, consumed is 0 and the parser remains in its
// prior state; it does not auto-recover past a malformed segment.
//
// If handler itself returns an error, that error is propagated verbatim
// and consumed reflects the segment's terminator position: the segment
// is considered consumed even though its delivery failed (at-most-once
// delivery; Reset does not replay it).
func (p *Parser) ParseSegment(input []byte, handler Handler) (consumed int, err error) {
	if p.state == stateInitial {
		return p.parseEnvelope(input, handler)
	}
	return p.parseRegular(input, handler)
}

func (p *Parser) parseEnvelope(input []byte, handler Handler) (int, error) {
	// CR/LF ahead of an ISA header is skipped like inter-segment CR/LF
	// and counts toward consumed.
	lead := skipCRLF(input)
	input = input[lead:]
	if len(input) < envelopeHeaderLen {
		return 0, ErrIncomplete
	}

	header := input[:envelopeHeaderLen]
	if header[0] != 'I' || header[1] != 'S' || header[2] != 'A' {
		return 0, newParseError(KindInvalidSegment, "", "envelope header does not begin with ISA")
	}

	elementSep := header[3]
	componentSep := header[104]
	terminator := header[105]

	fields := splitFields(header[4:105], elementSep)
	if len(fields) != 16 {
		return 0, newParseError(KindInvalidDelimiters, "ISA",
			"envelope header must declare exactly 16 elements, got %d", len(fields))
	}

	repetition := byte(DefaultRepetition)
	if isa11 := fields[10]; len(isa11) == 1 && isValidDelimiterByte(isa11[0]) {
		repetition = isa11[0]
	}

	delims := Delimiters{
		Element:    elementSep,
		Component:  componentSep,
		Terminator: terminator,
		Repetition: repetition,
	}
	if !delims.Validate() {
		return 0, newParseError(KindInvalidDelimiters, "ISA",
			"delimiter set must be four pairwise-distinct printable, non-alphanumeric bytes")
	}

	p.seg.reset()
	p.seg.setID(header[0:3])
	p.seg.delims = delims
	for _, f := range fields {
		if !p.seg.appendElement(f, componentSep) {
			return 0, newParseError(KindElementLimitExceeded, "ISA", "too many elements")
		}
	}

	p.delims = delims
	p.state = stateProcessing

	if err := handler.Handle(&p.seg); err != nil {
		return lead + envelopeHeaderLen, err
	}

	consumed := lead + envelopeHeaderLen
	consumed += skipCRLF(input[envelopeHeaderLen:])
	return consumed, nil
}

func (p *Parser) parseRegular(input []byte, handler Handler) (int, error) {
	idx := bytes.IndexByte(input, p.delims.Terminator)
	if idx < 0 {
		return 0, ErrIncomplete
	}

	body := input[:idx]
	if len(body) == 0 {
		return 0, newParseError(KindInvalidSegment, "", "empty segment body")
	}

	fields := splitFields(body, p.delims.Element)
	id := fields[0]
	if !validSegmentID(id) {
		return 0, newParseError(KindInvalidSegmentID, string(id), "segment identifier fails shape rule")
	}

	elements := fields[1:]
	if len(elements) > MaxElements {
		return 0, newParseError(KindElementLimitExceeded, string(id),
			"segment has %d elements, exceeds MaxElements (%d)", len(elements), MaxElements)
	}

	p.seg.reset()
	p.seg.setID(id)
	p.seg.delims = p.delims
	for _, e := range elements {
		p.seg.appendElement(e, p.delims.Component)
	}

	consumed := idx + 1 // include the terminator

	if p.seg.ID() == "IEA" {
		p.state = stateInitial
		p.delims = Delimiters{}
	}

	if err := handler.Handle(&p.seg); err != nil {
		return consumed, err
	}

	consumed += skipCRLF(input[consumed:])
	return consumed, nil
}

// splitFields splits b on sep, preserving empty trailing fields (e.g.
// "1*" on '*' yields ["1", ""]).
func splitFields(b []byte, sep byte) [][]byte {
	return bytes.Split(b, []byte{sep})
}

func validSegmentID(b []byte) bool {
	if len(b) < 2 || len(b) > 3 {
		return false
	}
	if b[0] < 'A' || b[0] > 'Z' {
		return false
	}
	for _, c := range b {
		if !isUpperAlnum(c) {
			return false
		}
	}
	return true
}

func isUpperAlnum(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// skipCRLF returns the count of leading ASCII CR/LF bytes in b.
func skipCRLF(b []byte) int {
	n := 0
	for n < len(b) && splitio.IsCROrLF(b[n]) {
		n++
	}
	return n
}
