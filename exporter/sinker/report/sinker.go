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

// Package report sinks report records (a *report.ParseReport per run) as
// JSON-per-line, either to stdout or a rotated log file.
package report

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/x12stream/x12parse/common"
	"github.com/x12stream/x12parse/exporter"
	"github.com/x12stream/x12parse/internal/json"
)

func init() {
	exporter.Register(common.RecordReport, New)
}

type Sinker struct {
	wr      io.WriteCloser
	encoder json.Encoder
	cfg     *exporter.ReportConfig
}

func New(conf exporter.Config) (exporter.Sinker, error) {
	cfg := &conf.Report
	cfg.Validate()

	var wr io.WriteCloser
	switch {
	case cfg.Console:
		wr = os.Stdout
	default:
		wr = &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			LocalTime:  true,
		}
	}

	return &Sinker{
		wr:      wr,
		cfg:     cfg,
		encoder: json.NewEncoder(wr),
	}, nil
}

func (s *Sinker) Name() common.RecordType {
	return common.RecordReport
}

func (s *Sinker) Sink(data any) error {
	return s.encoder.Encode(data)
}

func (s *Sinker) Close() {
	if s.cfg.Console {
		return
	}
	s.wr.Close()
}
