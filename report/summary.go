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
	"github.com/mitchellh/mapstructure"

	"github.com/x12stream/x12parse/common"
	"github.com/x12stream/x12parse/internal/labels"
	"github.com/x12stream/x12parse/internal/metricstorage"
)

// SummaryName is the registered name for the summary processor.
const SummaryName = "summary"

func init() {
	Register(SummaryName, NewSummaryProcessor)
}

// SummaryConfig is decoded the same way
// processor/roundtripstometrics/config.go decodes its converter-scoped
// config blocks.
type SummaryConfig struct {
	Expired int `config:"expired" mapstructure:"expired"`
}

// summaryProcessor counts validation errors by kind and severity and
// turns the counts into ConstMetrics, mirroring roundtripstometrics.
type summaryProcessor struct {
	cfg SummaryConfig
}

// NewSummaryProcessor builds the summary processor from its decoded
// configuration block.
func NewSummaryProcessor(conf common.Options) (Processor, error) {
	var cfg SummaryConfig
	if err := mapstructure.Decode(conf, &cfg); err != nil {
		return nil, err
	}
	return &summaryProcessor{cfg: cfg}, nil
}

func (p *summaryProcessor) Name() string { return SummaryName }

func (p *summaryProcessor) Process(r *ParseReport) (*common.Record, error) {
	counts := map[string]int{}
	for _, e := range r.Errors {
		counts[string(e.Kind)+"|"+e.Severity.String()]++
	}

	var metrics []metricstorage.ConstMetric
	metrics = append(metrics,
		metricstorage.ConstMetric{
			Model: metricstorage.ModelCounter,
			Name:  "x12parse_segments_total",
			Value: float64(r.Stats.SegmentsDelivered),
		},
		metricstorage.ConstMetric{
			Model: metricstorage.ModelCounter,
			Name:  "x12parse_bytes_read_total",
			Value: float64(r.Stats.BytesRead),
		},
	)
	for key, n := range counts {
		kind, severity := splitCountKey(key)
		metrics = append(metrics, metricstorage.ConstMetric{
			Model: metricstorage.ModelCounter,
			Name:  "x12parse_validation_errors_total",
			Labels: labels.Labels{
				{Name: "kind", Value: kind},
				{Name: "severity", Value: severity},
			},
			Value: float64(n),
		})
	}

	return common.NewRecord(common.RecordMetrics, &common.MetricsData{Data: metrics}), nil
}

func (p *summaryProcessor) Clean() {}

func splitCountKey(key string) (kind, severity string) {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '|' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
