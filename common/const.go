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

package common

const (
	// App is the program name, used in metric namespaces and default file paths.
	App = "x12parse"

	// Version is the fallback module version reported when no build-time
	// version was injected via -ldflags.
	Version = "v0.1.0"

	// ReadBlockSize is a 4 KiB chunk size. host.Driver does not use it:
	// each fill reads into the whole free tail of its buffer window.
	ReadBlockSize = 4096
)

// RecordType identifies the kind of record an exporter Sinker accepts.
type RecordType string

const (
	// RecordMetrics carries a *MetricsData batch produced by the
	// "summary" processor.
	RecordMetrics RecordType = "metrics"

	// RecordAudit carries the bson.D document produced by the "audit" processor.
	RecordAudit RecordType = "audit"

	// RecordReport carries a full x12parse ParseReport for JSON logging.
	RecordReport RecordType = "report"
)
