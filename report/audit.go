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
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x12stream/x12parse/common"
)

// AuditName is the registered name for the audit processor.
const AuditName = "audit"

func init() {
	Register(AuditName, NewAuditProcessor)
}

// auditProcessor turns a ParseReport into a BSON-ready document for the
// Mongo sink, the shape pmongodb's decoder tests exercise in reverse.
type auditProcessor struct{}

// NewAuditProcessor builds the audit processor. It takes no
// configuration of its own.
func NewAuditProcessor(conf common.Options) (Processor, error) {
	return &auditProcessor{}, nil
}

func (p *auditProcessor) Name() string { return AuditName }

func (p *auditProcessor) Process(r *ParseReport) (*common.Record, error) {
	errDocs := make(bson.A, 0, len(r.Errors))
	for _, e := range r.Errors {
		errDocs = append(errDocs, bson.D{
			{Key: "severity", Value: e.Severity.String()},
			{Key: "kind", Value: string(e.Kind)},
			{Key: "segment", Value: e.Segment},
			{Key: "element", Value: e.Element},
			{Key: "message", Value: e.Message},
			{Key: "locator", Value: e.Locator},
		})
	}

	doc := bson.D{
		{Key: "interchange_control", Value: r.InterchangeCtrl},
		{Key: "bytes_read", Value: r.Stats.BytesRead},
		{Key: "segments_delivered", Value: r.Stats.SegmentsDelivered},
		{Key: "buffer_growth_events", Value: r.Stats.BufferGrowthEvents},
		{Key: "max_capacity_reached", Value: r.Stats.MaxCapacityReached},
		{Key: "errors", Value: errDocs},
	}

	return common.NewRecord(common.RecordAudit, doc), nil
}

func (p *auditProcessor) Clean() {}
