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

// Package validate holds the validator contract, the validation suite's
// fan-out dispatch, and the two reference rule families: envelope
// integrity and inter-segment control-number reconciliation.
package validate

import (
	"fmt"

	"github.com/x12stream/x12parse/internal/bufbytes"
	"github.com/x12stream/x12parse/x12"
)

// previewSize bounds how much of an offending segment's reconstructed
// bytes survive into Error.Preview, regardless of the segment's actual
// element count.
const previewSize = 64

// Severity classifies a validation finding.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}

// Error is one accumulated validation finding. Unlike x12.ParseError it
// is never fatal on its own; a Suite collects these across every
// segment of an interchange for the caller to inspect once parsing
// completes.
type Error struct {
	Severity Severity
	Kind     x12.Kind
	Segment  string // three-byte identifier, space-padded if shorter
	Element  int    // element index, -1 when not applicable
	Message  string
	Locator  string // byte-offset or segment-ordinal, set by the caller
	Preview  string // bounded reconstruction of the offending segment's bytes
}

func (e Error) Error() string {
	if e.Element < 0 {
		return fmt.Sprintf("%s: %s: %s (segment %s)", e.Severity, e.Kind, e.Message, e.Segment)
	}
	return fmt.Sprintf("%s: %s: %s (segment %s, element %d)", e.Severity, e.Kind, e.Message, e.Segment, e.Element)
}

func paddedSegmentID(id string) string {
	for len(id) < 3 {
		id += " "
	}
	return id
}

// segmentPreview reconstructs an element-separated preview of seg,
// bounded to previewSize bytes, for embedding in an Error without
// retaining a reference to the segment's backing buffer.
func segmentPreview(seg *x12.Segment) string {
	buf := bufbytes.New(previewSize)
	buf.Write([]byte(seg.ID()))
	for i := 0; i < seg.ElementCount(); i++ {
		buf.Write([]byte("*"))
		buf.Write(seg.Element(i).Bytes())
	}
	return buf.Text()
}
