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

package validate

import (
	"fmt"

	"github.com/x12stream/x12parse/x12"
)

// minElementCounts are the X12-specified minimum element counts for
// envelope segments. The parser already enforces identifier shape; this
// rule does not duplicate that check.
var minElementCounts = map[string]int{
	"ISA": 16,
	"GS":  8,
	"ST":  2,
	"SE":  2,
	"GE":  2,
	"IEA": 2,
}

// EnvelopeIntegrityRule is a stateless, per-segment syntactic check: for
// the six envelope segments, element_count must meet the X12-specified
// minimum.
type EnvelopeIntegrityRule struct {
	errs []Error
}

// NewEnvelopeIntegrityRule returns a ready-to-use rule instance.
func NewEnvelopeIntegrityRule() *EnvelopeIntegrityRule {
	return &EnvelopeIntegrityRule{}
}

func (r *EnvelopeIntegrityRule) Name() string { return "envelope_integrity" }

func (r *EnvelopeIntegrityRule) Validate(seg *x12.Segment) {
	min, ok := minElementCounts[seg.ID()]
	if !ok {
		return
	}
	if seg.ElementCount() < min {
		r.errs = append(r.errs, Error{
			Severity: SeverityError,
			Kind:     x12.KindInvalidElementCount,
			Segment:  paddedSegmentID(seg.ID()),
			Element:  seg.ElementCount(),
			Message:  fmt.Sprintf("expected at least %d elements, got %d", min, seg.ElementCount()),
			Preview:  segmentPreview(seg),
		})
	}
}

func (r *EnvelopeIntegrityRule) Errors() []Error { return r.errs }

func (r *EnvelopeIntegrityRule) Clear() { r.errs = nil }
