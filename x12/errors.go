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

import "fmt"

// Kind tags every error this repository produces, parser, validator, or
// host alike, so x12/validate.Error and x12/host's fatal errors share one
// vocabulary with the ParseError this package returns.
type Kind string

const (
	// KindIncomplete signals the input slice ends mid-segment; resume
	// with more bytes. Never accumulated; the host driver returns it as
	// Run's error only when the source ends on a partial segment.
	KindIncomplete Kind = "incomplete"

	// KindInvalidDelimiters - envelope header malformed, or its declared
	// delimiters violate the uniqueness/printability invariant.
	KindInvalidDelimiters Kind = "invalid_delimiters"

	// KindInvalidSegmentID - identifier fails the shape rule (2-3 bytes,
	// uppercase alphanumeric, leading byte alphabetic).
	KindInvalidSegmentID Kind = "invalid_segment_id"

	// KindInvalidSegment - terminator found but body structurally
	// invalid (e.g. empty).
	KindInvalidSegment Kind = "invalid_segment"

	// KindElementLimitExceeded - segment has more than MaxElements elements.
	KindElementLimitExceeded Kind = "element_limit_exceeded"

	// KindInvalidElementCount - known segment has the wrong element count
	// (x12/validate's envelope-integrity rule).
	KindInvalidElementCount Kind = "invalid_element_count"

	// KindMissingRequiredElement - required element at index i is absent
	// or empty (a consumer-level concern, not raised by this repository's
	// reference rules).
	KindMissingRequiredElement Kind = "missing_required_element"

	// KindControlNumberMismatch - paired control numbers disagree
	// (x12/validate's control-reconciliation rule).
	KindControlNumberMismatch Kind = "control_number_mismatch"

	// KindCountMismatch - declared count disagrees with observed.
	KindCountMismatch Kind = "count_mismatch"

	// KindMissingOpener - a trailer arrived with no matching opener.
	KindMissingOpener Kind = "missing_opener"

	// KindNestingError - a new opener arrived while one was still open
	// for the same envelope level.
	KindNestingError Kind = "nesting_error"

	// KindSegmentTooLarge - one segment exceeds the host's configured
	// max buffer size.
	KindSegmentTooLarge Kind = "segment_too_large"

	// KindTrailingGarbage - bytes remain past end-of-input that are not
	// a partial segment.
	KindTrailingGarbage Kind = "trailing_garbage"
)

// ParseError is returned by Parser.ParseSegment on any parser-level
// failure, including Incomplete. It carries enough context for a host
// or validator to build a locator without re-scanning the buffer.
type ParseError struct {
	Kind    Kind
	Segment string // 3-byte identifier, when known; "" otherwise
	Message string
}

func (e *ParseError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("x12: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("x12: %s: %s (segment %s)", e.Kind, e.Message, e.Segment)
}

// Is lets errors.Is(err, ErrIncomplete) and similar sentinel comparisons
// work by Kind rather than by identity, so a freshly constructed
// *ParseError with the same Kind as a sentinel still matches it.
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// ErrIncomplete is the sentinel returned whenever the input slice ends
// before a full segment. Reused across calls: the Incomplete path never
// allocates.
var ErrIncomplete = &ParseError{Kind: KindIncomplete, Message: "input ends before a complete segment"}

func newParseError(kind Kind, segment, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Segment: segment,
		Message: fmt.Sprintf(format, args...),
	}
}
