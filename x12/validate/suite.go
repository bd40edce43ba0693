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
	"strconv"

	"github.com/pkg/errors"

	"github.com/x12stream/x12parse/x12"
)

// Config lists the validator names a Suite should be assembled from,
// decoded from the "validate" confengine config block.
type Config struct {
	Rules []string `config:"rules"`
}

// Suite implements x12.Handler by fanning out each segment to an
// ordered collection of validators, in insertion order, and aggregating
// their findings on request. Validators never abort the parse: Handle
// always returns nil, and the Validator contract gives a rule no way to
// hand a catastrophic finding back to the parser as a handler error.
type Suite struct {
	validators []Validator
	ordinal    int
}

// NewSuite returns a Suite over an explicit, pre-built validator list.
func NewSuite(validators ...Validator) *Suite {
	return &Suite{validators: validators}
}

// NewSuiteFromConfig builds a Suite from a list of registered validator
// names, the same factory-lookup idiom report.NewManager uses to build a
// named processor set from configuration.
func NewSuiteFromConfig(cfg Config) (*Suite, error) {
	s := &Suite{}
	for _, name := range cfg.Rules {
		f, err := Get(name)
		if err != nil {
			return nil, errors.Wrapf(err, "building suite")
		}
		s.validators = append(s.validators, f())
	}
	return s, nil
}

// Handle satisfies x12.Handler: it dispatches seg to every validator in
// order, stamping each newly accumulated Error with the segment's
// 1-based ordinal as its Locator. Validate never returns an error, so
// Handle itself only ever returns nil; a catastrophic finding a rule
// wants to abort the parse over would have to come back some other way,
// which neither reference rule currently needs.
func (s *Suite) Handle(seg *x12.Segment) error {
	s.ordinal++
	locator := strconv.Itoa(s.ordinal)
	for _, v := range s.validators {
		before := len(v.Errors())
		v.Validate(seg)
		errs := v.Errors()
		for i := before; i < len(errs); i++ {
			errs[i].Locator = locator
		}
	}
	return nil
}

// Ordinal returns the 1-based count of segments observed so far, used
// by callers assembling a ValidationError locator.
func (s *Suite) Ordinal() int {
	return s.ordinal
}

// Errors aggregates every validator's accumulated findings, in
// validator insertion order.
func (s *Suite) Errors() []Error {
	var all []Error
	for _, v := range s.validators {
		all = append(all, v.Errors()...)
	}
	return all
}

// Clear discards every validator's accumulated findings and resets the
// segment ordinal, without dropping any stateful validator's internal
// context stack (Validator.Clear's contract).
func (s *Suite) Clear() {
	s.ordinal = 0
	for _, v := range s.validators {
		v.Clear()
	}
}
