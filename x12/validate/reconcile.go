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
	"strconv"

	"github.com/x12stream/x12parse/x12"
)

type interchangeCtx struct {
	controlNumber string
	groupCount    int
}

type groupCtx struct {
	controlNumber    string
	transactionCount int
}

type transactionCtx struct {
	controlNumber string
	segmentCount  int
}

// ControlReconciliationRule is the stateful, inter-segment counterpart
// to EnvelopeIntegrityRule. It maintains one open context per envelope
// level (interchange, group, transaction) and reconciles paired control
// numbers and counts as each trailer arrives.
type ControlReconciliationRule struct {
	interchange *interchangeCtx
	group       *groupCtx
	transaction *transactionCtx
	errs        []Error
}

// NewControlReconciliationRule returns a rule with no open contexts.
func NewControlReconciliationRule() *ControlReconciliationRule {
	return &ControlReconciliationRule{}
}

func (r *ControlReconciliationRule) Name() string { return "control_reconciliation" }

func (r *ControlReconciliationRule) Validate(seg *x12.Segment) {
	id := seg.ID()

	if r.transaction != nil && id != "ST" {
		r.transaction.segmentCount++
	}

	switch id {
	case "ISA":
		if r.interchange != nil {
			r.errs = append(r.errs, r.nestingError("ISA"))
		}
		r.interchange = &interchangeCtx{controlNumber: elementAt(seg, 12)}
	case "GS":
		if r.group != nil {
			r.errs = append(r.errs, r.nestingError("GS"))
		}
		r.group = &groupCtx{controlNumber: elementAt(seg, 5)}
	case "ST":
		if r.transaction != nil {
			r.errs = append(r.errs, r.nestingError("ST"))
		}
		r.transaction = &transactionCtx{controlNumber: elementAt(seg, 1), segmentCount: 1}
	case "SE":
		if r.transaction == nil {
			r.errs = append(r.errs, r.missingOpener("SE"))
			return
		}
		r.checkSE(seg)
		if r.group != nil {
			r.group.transactionCount++
		}
		r.transaction = nil
	case "GE":
		if r.group == nil {
			r.errs = append(r.errs, r.missingOpener("GE"))
			return
		}
		r.checkGE(seg)
		if r.interchange != nil {
			r.interchange.groupCount++
		}
		r.group = nil
	case "IEA":
		if r.interchange == nil {
			r.errs = append(r.errs, r.missingOpener("IEA"))
			return
		}
		r.checkIEA(seg)
		r.interchange = nil
	}
}

func (r *ControlReconciliationRule) checkSE(seg *x12.Segment) {
	claimed := elementAt(seg, 0)
	if n, err := strconv.Atoi(claimed); err != nil || n != r.transaction.segmentCount {
		r.errs = append(r.errs, Error{
			Severity: SeverityError,
			Kind:     x12.KindCountMismatch,
			Segment:  paddedSegmentID("SE"),
			Element:  0,
			Message:  fmt.Sprintf("SE01 claims %s segments, counted %d", claimed, r.transaction.segmentCount),
		})
	}
	if ctrl := elementAt(seg, 1); ctrl != r.transaction.controlNumber {
		r.errs = append(r.errs, Error{
			Severity: SeverityError,
			Kind:     x12.KindControlNumberMismatch,
			Segment:  paddedSegmentID("SE"),
			Element:  1,
			Message:  fmt.Sprintf("SE02 %q does not match ST02 %q", ctrl, r.transaction.controlNumber),
		})
	}
}

func (r *ControlReconciliationRule) checkGE(seg *x12.Segment) {
	claimed := elementAt(seg, 0)
	if n, err := strconv.Atoi(claimed); err != nil || n != r.group.transactionCount {
		r.errs = append(r.errs, Error{
			Severity: SeverityError,
			Kind:     x12.KindCountMismatch,
			Segment:  paddedSegmentID("GE"),
			Element:  0,
			Message:  fmt.Sprintf("GE01 claims %s transactions, counted %d", claimed, r.group.transactionCount),
		})
	}
	if ctrl := elementAt(seg, 1); ctrl != r.group.controlNumber {
		r.errs = append(r.errs, Error{
			Severity: SeverityError,
			Kind:     x12.KindControlNumberMismatch,
			Segment:  paddedSegmentID("GE"),
			Element:  1,
			Message:  fmt.Sprintf("GE02 %q does not match GS06 %q", ctrl, r.group.controlNumber),
		})
	}
}

func (r *ControlReconciliationRule) checkIEA(seg *x12.Segment) {
	claimed := elementAt(seg, 0)
	if n, err := strconv.Atoi(claimed); err != nil || n != r.interchange.groupCount {
		r.errs = append(r.errs, Error{
			Severity: SeverityError,
			Kind:     x12.KindCountMismatch,
			Segment:  paddedSegmentID("IEA"),
			Element:  0,
			Message:  fmt.Sprintf("IEA01 claims %s groups, counted %d", claimed, r.interchange.groupCount),
		})
	}
	if ctrl := elementAt(seg, 1); ctrl != r.interchange.controlNumber {
		r.errs = append(r.errs, Error{
			Severity: SeverityError,
			Kind:     x12.KindControlNumberMismatch,
			Segment:  paddedSegmentID("IEA"),
			Element:  1,
			Message:  fmt.Sprintf("IEA02 %q does not match ISA13 %q", ctrl, r.interchange.controlNumber),
		})
	}
}

func (r *ControlReconciliationRule) missingOpener(id string) Error {
	return Error{
		Severity: SeverityError,
		Kind:     x12.KindMissingOpener,
		Segment:  paddedSegmentID(id),
		Element:  -1,
		Message:  id + " arrived with no matching opener",
	}
}

func (r *ControlReconciliationRule) nestingError(id string) Error {
	return Error{
		Severity: SeverityError,
		Kind:     x12.KindNestingError,
		Segment:  paddedSegmentID(id),
		Element:  -1,
		Message:  id + " opened while a previous context at this level was still open; overwriting",
	}
}

func (r *ControlReconciliationRule) Errors() []Error { return r.errs }

func (r *ControlReconciliationRule) Clear() { r.errs = nil }

func elementAt(seg *x12.Segment, i int) string {
	return seg.Element(i).String()
}
