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

func drainInto(t *testing.T, body string, suite *Suite) {
	t.Helper()
	p := x12.NewParser()
	input := []byte(body)
	total := 0
	for {
		n, err := p.ParseSegment(input[total:], suite)
		if err != nil {
			require.ErrorIs(t, err, x12.ErrIncomplete)
			return
		}
		total += n
	}
}

func TestSuite_Scenario1CleanInput(t *testing.T) {
	suite := NewSuite(NewEnvelopeIntegrityRule(), NewControlReconciliationRule())
	drainInto(t, scenario1, suite)

	assert.Empty(t, suite.Errors())
}

func TestSuite_Scenario2SegmentCountMismatch(t *testing.T) {
	body := strings.Replace(scenario1, "SE*2*0001~", "SE*5*0001~", 1)
	suite := NewSuite(NewEnvelopeIntegrityRule(), NewControlReconciliationRule())
	drainInto(t, body, suite)

	errs := suite.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, x12.KindCountMismatch, errs[0].Kind)
	assert.Equal(t, "SE ", errs[0].Segment)
}

func TestSuite_Scenario3ControlNumberMismatch(t *testing.T) {
	body := strings.Replace(scenario1, "GE*1*1~", "GE*1*2~", 1)
	suite := NewSuite(NewEnvelopeIntegrityRule(), NewControlReconciliationRule())
	drainInto(t, body, suite)

	errs := suite.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, x12.KindControlNumberMismatch, errs[0].Kind)
	assert.Equal(t, "GE ", errs[0].Segment)
}

func TestControlReconciliationRule_MissingOpener(t *testing.T) {
	r := NewControlReconciliationRule()
	p := x12.NewParser()
	body := []byte("ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *231213*1430*^*00501*000000001*0*P*:~" +
		"GE*1*1~")
	total := 0
	for {
		n, err := p.ParseSegment(body[total:], HandlerFuncOf(r))
		if err != nil {
			require.ErrorIs(t, err, x12.ErrIncomplete)
			break
		}
		total += n
	}

	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, x12.KindMissingOpener, errs[0].Kind)
}

func TestEnvelopeIntegrityRule_TooFewElements(t *testing.T) {
	r := NewEnvelopeIntegrityRule()
	p := x12.NewParser()
	body := []byte("ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *231213*1430*^*00501*000000001*0*P*:~" +
		"GS*HC~")
	total := 0
	for {
		n, err := p.ParseSegment(body[total:], HandlerFuncOf(r))
		if err != nil {
			require.ErrorIs(t, err, x12.ErrIncomplete)
			break
		}
		total += n
	}

	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, x12.KindInvalidElementCount, errs[0].Kind)
}

func TestSuite_ClearResetsOrdinalAndErrors(t *testing.T) {
	suite := NewSuite(NewEnvelopeIntegrityRule())
	drainInto(t, scenario1, suite)
	assert.Equal(t, 6, suite.Ordinal())

	suite.Clear()
	assert.Equal(t, 0, suite.Ordinal())
	assert.Empty(t, suite.Errors())
}

func TestNewSuiteFromConfig(t *testing.T) {
	suite, err := NewSuiteFromConfig(Config{Rules: []string{"envelope_integrity", "control_reconciliation"}})
	require.NoError(t, err)
	assert.Len(t, suite.validators, 2)
}

func TestNewSuiteFromConfig_UnknownRule(t *testing.T) {
	_, err := NewSuiteFromConfig(Config{Rules: []string{"no_such_rule"}})
	require.Error(t, err)
}

// HandlerFuncOf adapts a single Validator to x12.Handler for tests that
// want to exercise one rule in isolation.
func HandlerFuncOf(v Validator) x12.HandlerFunc {
	return func(seg *x12.Segment) error {
		v.Validate(seg)
		return nil
	}
}
