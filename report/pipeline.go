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

import "github.com/x12stream/x12parse/common"

// PipelineConfig names one named stage: a list of processors to run
// over every ParseReport, in order.
type PipelineConfig struct {
	Name       string   `config:"name"`
	Processors []string `config:"processors"`
}

// Pipeline walks a configured list of processor names and feeds each
// resulting Record to a callback, mirroring pipeline.Pipeline.Range.
type Pipeline struct {
	configs []PipelineConfig
	mgr     *Manager
}

// NewPipeline pairs a stage list with the processor manager that
// resolves each name.
func NewPipeline(configs []PipelineConfig, mgr *Manager) *Pipeline {
	return &Pipeline{configs: configs, mgr: mgr}
}

// Range runs r through every configured processor, invoking f once per
// non-nil resulting Record.
func (p *Pipeline) Range(r *ParseReport, f func(dst *common.Record)) {
	for _, stage := range p.configs {
		for _, name := range stage.Processors {
			ps, ok := p.mgr.Get(name)
			if !ok {
				continue
			}
			rec, err := ps.Process(r)
			if err != nil {
				continue
			}
			if rec != nil {
				f(rec)
			}
		}
	}
}
