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

import "github.com/x12stream/x12parse/internal/metricstorage"

// Record is the envelope the report pipeline and exporter exchange:
// one tagged payload per produced artifact.
type Record struct {
	RecordType RecordType
	Data       any
}

// NewRecord wraps data under the given RecordType.
func NewRecord(t RecordType, data any) *Record {
	return &Record{RecordType: t, Data: data}
}

// MetricsData carries a batch of ConstMetric values destined for the
// metrics exporter sink.
type MetricsData struct {
	Data []metricstorage.ConstMetric
}
