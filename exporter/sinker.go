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

// Package exporter owns a fixed set of Sinkers, each accepting one
// common.RecordType of data produced by the report pipeline or the
// driver's attached metric storage, and writing it somewhere external.
package exporter

import (
	"github.com/pkg/errors"

	"github.com/x12stream/x12parse/common"
)

// Sinker writes one RecordType's data to an external destination.
type Sinker interface {
	// Name returns the RecordType this sink accepts.
	Name() common.RecordType

	// Sink writes one value. The concrete type of data is sink-specific:
	// a *prompb.WriteRequest for metrics, a bson.D for audit, a
	// *report.ParseReport for the report log.
	Sink(data any) error

	// Close releases resources held by the sink.
	Close()
}

// CreateFunc builds a Sinker from the exporter's full configuration.
type CreateFunc func(Config) (Sinker, error)

var sinkFactory = map[common.RecordType]CreateFunc{}

// Register adds a named sink factory, called from each sink
// implementation's package init.
func Register(name common.RecordType, createFunc CreateFunc) {
	sinkFactory[name] = createFunc
}

// Get looks up a previously registered sink factory by RecordType.
func Get(name common.RecordType) (CreateFunc, error) {
	f, ok := sinkFactory[name]
	if !ok {
		return nil, errors.Errorf("sink factory (%s) not found", name)
	}
	return f, nil
}
