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

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x12stream/x12parse/common"
	"github.com/x12stream/x12parse/x12"
	"github.com/x12stream/x12parse/x12/host"
	"github.com/x12stream/x12parse/x12/validate"
)

func sampleReport() *ParseReport {
	return &ParseReport{
		Stats: host.Stats{
			BytesRead:         290,
			SegmentsDelivered: 6,
		},
		Errors: []validate.Error{
			{Severity: validate.SeverityError, Kind: x12.KindCountMismatch, Segment: "SE ", Element: 0, Message: "boom"},
		},
		InterchangeCtrl: "000000001",
	}
}

func TestSummaryProcessor_Process(t *testing.T) {
	p, err := NewSummaryProcessor(nil)
	require.NoError(t, err)

	rec, err := p.Process(sampleReport())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, common.RecordMetrics, rec.RecordType)

	data, ok := rec.Data.(*common.MetricsData)
	require.True(t, ok)
	assert.NotEmpty(t, data.Data)
}

func TestAuditProcessor_Process(t *testing.T) {
	p, err := NewAuditProcessor(nil)
	require.NoError(t, err)

	rec, err := p.Process(sampleReport())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, common.RecordAudit, rec.RecordType)

	doc, ok := rec.Data.(bson.D)
	require.True(t, ok)

	var errs bson.A
	for _, e := range doc {
		if e.Key == "errors" {
			errs, _ = e.Value.(bson.A)
		}
	}
	assert.Len(t, errs, 1)
}

func TestPipeline_Range(t *testing.T) {
	mgr, err := NewManager([]Config{
		{Name: SummaryName},
		{Name: AuditName},
	})
	require.NoError(t, err)

	pl := NewPipeline([]PipelineConfig{
		{Name: "default", Processors: []string{SummaryName, AuditName}},
	}, mgr)

	var got []common.RecordType
	pl.Range(sampleReport(), func(dst *common.Record) {
		got = append(got, dst.RecordType)
	})

	assert.Equal(t, []common.RecordType{common.RecordMetrics, common.RecordAudit}, got)
}

func TestManager_UnknownProcessor(t *testing.T) {
	_, err := NewManager([]Config{{Name: "no_such_processor"}})
	require.Error(t, err)
}
