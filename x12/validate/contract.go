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

import "github.com/x12stream/x12parse/x12"

// Validator is a per-segment rule that accumulates findings internally
// and never aborts the parse. By construction, Validate has no return
// value; callers retrieve findings through Errors.
type Validator interface {
	// Validate inspects one segment view. seg is only valid for the
	// duration of this call.
	Validate(seg *x12.Segment)

	// Errors returns the accumulated findings so far. The returned
	// slice shares the validator's storage: Suite.Handle writes each new
	// finding's Locator through it, and other callers must not mutate it.
	Errors() []Error

	// Clear discards accumulated findings, keeping any other internal
	// state (a stateful rule's open-context stack is not state in this
	// sense and survives Clear).
	Clear()

	// Name identifies the rule, used for registry lookup and reporting.
	Name() string
}

// CreateFunc builds a fresh Validator instance. Registered factories
// receive no arguments; a rule needing configuration reads it through
// its own package-level defaults or a constructor variant outside this
// registry.
type CreateFunc func() Validator
