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

package exporter

import (
	"context"
	"time"

	"github.com/x12stream/x12parse/common"
	"github.com/x12stream/x12parse/confengine"
	"github.com/x12stream/x12parse/internal/metricstorage"
	"github.com/x12stream/x12parse/logger"
)

// Exporter owns a fixed set of Sinkers, built via the Register/Get
// registry in sinker.go, and drives the metrics sink's periodic flush loop.
// The audit and report sinks are driven synchronously by whatever calls
// Export, since each call corresponds to one already-complete
// ParseReport rather than a steady stream.
type Exporter struct {
	ctx    context.Context
	cancel context.CancelFunc
	conf   Config

	metricsStorage *metricstorage.Storage

	metricsSinker Sinker
	auditSinker   Sinker
	reportSinker  Sinker
}

// New builds an Exporter from the "exporter" confengine config block,
// wiring whichever sinks their Enabled flag turns on.
func New(conf *confengine.Config, metricsStorage *metricstorage.Storage) (*Exporter, error) {
	var cfg Config
	if err := conf.UnpackChild("exporter", &cfg); err != nil {
		return nil, err
	}

	var metricsSinker, auditSinker, reportSinker Sinker

	if cfg.Metrics.Enabled {
		f, err := Get(common.RecordMetrics)
		if err != nil {
			return nil, err
		}
		if metricsSinker, err = f(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Audit.Enabled {
		f, err := Get(common.RecordAudit)
		if err != nil {
			return nil, err
		}
		if auditSinker, err = f(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Report.Enabled {
		f, err := Get(common.RecordReport)
		if err != nil {
			return nil, err
		}
		if reportSinker, err = f(cfg); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Exporter{
		ctx:            ctx,
		cancel:         cancel,
		conf:           cfg,
		metricsStorage: metricsStorage,
		metricsSinker:  metricsSinker,
		auditSinker:    auditSinker,
		reportSinker:   reportSinker,
	}, nil
}

// Start launches the metrics sink's periodic flush loop. The audit and
// report sinks have no loop of their own; Export drives them directly.
func (e *Exporter) Start() {
	if e.conf.Metrics.Enabled {
		go e.loopExportMetrics()
	}
}

// Close stops the flush loop and releases every enabled sink.
func (e *Exporter) Close() {
	e.cancel()

	if e.conf.Metrics.Enabled {
		e.metricsSinker.Close()
	}
	if e.conf.Audit.Enabled {
		e.auditSinker.Close()
	}
	if e.conf.Report.Enabled {
		e.reportSinker.Close()
	}
	if e.metricsStorage != nil {
		e.metricsStorage.Close()
	}
}

// Export routes one Record to its matching sink, if enabled.
func (e *Exporter) Export(record *common.Record) {
	switch record.RecordType {
	case common.RecordMetrics:
		if !e.conf.Metrics.Enabled || e.metricsStorage == nil {
			return
		}
		data, ok := record.Data.(*common.MetricsData)
		if !ok {
			return
		}
		e.metricsStorage.Update(data.Data...)

	case common.RecordAudit:
		if !e.conf.Audit.Enabled {
			return
		}
		if err := e.auditSinker.Sink(record.Data); err != nil {
			logger.Errorf("sink audit record failed: %v", err)
		}

	case common.RecordReport:
		if !e.conf.Report.Enabled {
			return
		}
		if err := e.reportSinker.Sink(record.Data); err != nil {
			logger.Errorf("sink report record failed: %v", err)
		}
	}
}

func (e *Exporter) loopExportMetrics() {
	ticker := time.NewTicker(e.conf.Metrics.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return

		case <-ticker.C:
			if err := e.metricsSinker.Sink(e.metricsStorage.WriteRequest()); err != nil {
				logger.Errorf("sink metrics failed: %v", err)
			}
		}
	}
}
