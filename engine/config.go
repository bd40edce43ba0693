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

package engine

import (
	"github.com/x12stream/x12parse/report"
	"github.com/x12stream/x12parse/x12/host"
	"github.com/x12stream/x12parse/x12/validate"
)

// Config is decoded from the top-level "host", "validate" and "report"
// confengine config blocks.
type Config struct {
	Host     host.Config    `config:"host"`
	Validate validate.Config `config:"validate"`
	Report   ReportConfig   `config:"report"`
}

// ReportConfig names the processors available to the pipeline and the
// named stages that run over every ParseReport.
type ReportConfig struct {
	Processors []report.Config         `config:"processors"`
	Pipelines  []report.PipelineConfig `config:"pipelines"`
}
