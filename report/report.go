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

// Package report turns one byte-source run's parse outcome into named
// derived records: a Prometheus-shaped summary, an audit document, or
// anything else a registered Processor wants to produce. A ParseReport
// plays the role a socket round trip would in a packet-oriented
// pipeline: the single unit processors consume and the exporter
// forwards on.
package report

import (
	"github.com/x12stream/x12parse/x12/host"
	"github.com/x12stream/x12parse/x12/validate"
)

// ParseReport is the plain aggregate its callers assemble from one
// host.Driver run (Stats) and the validator suite's findings: not
// one of the three core subsystems, just the unit this package and the
// exporter package operate on.
type ParseReport struct {
	Stats           host.Stats
	Errors          []validate.Error
	InterchangeCtrl string // ISA13 of the last interchange seen, if any
}
