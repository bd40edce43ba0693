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

// Package engine wires the host driver, the validator suite, the report
// pipeline, the exporter and the server together into one long-running
// process: each byte source run flows driver -> suite -> pipeline ->
// exporter, with the server exposing health and metrics endpoints
// alongside it.
package engine

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/x12stream/x12parse/common"
	"github.com/x12stream/x12parse/confengine"
	"github.com/x12stream/x12parse/exporter"
	"github.com/x12stream/x12parse/internal/metricstorage"
	"github.com/x12stream/x12parse/internal/pubsub"
	"github.com/x12stream/x12parse/logger"
	"github.com/x12stream/x12parse/report"
	"github.com/x12stream/x12parse/server"
	"github.com/x12stream/x12parse/x12"
	"github.com/x12stream/x12parse/x12/host"
	"github.com/x12stream/x12parse/x12/validate"
)

// Engine drives byte sources through the host driver and validator
// suite, turns each byte source run into a ParseReport, routes it through
// the report pipeline, and exports whatever the pipeline produces.
type Engine struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg       Config
	buildInfo common.BuildInfo

	drv     *host.Driver
	suite   *validate.Suite
	pl      *report.Pipeline
	mgr     *report.Manager
	exp     *exporter.Exporter
	svr     *server.Server
	storage *metricstorage.Storage
	bus     *pubsub.PubSub
}

func setupLogger(conf *confengine.Config) error {
	var opts logger.Options
	if err := conf.UnpackChild("logger", &opts); err != nil {
		return err
	}

	if opts.Filename == "" {
		opts.Filename = "x12parse.log"
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 10
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = 100
	}

	logger.SetOptions(opts)
	return nil
}

// New builds an Engine from a loaded confengine.Config.
func New(conf *confengine.Config, buildInfo common.BuildInfo) (*Engine, error) {
	if err := setupLogger(conf); err != nil {
		return nil, err
	}

	var cfg Config
	if err := conf.UnpackChild("host", &cfg.Host); err != nil {
		return nil, err
	}
	if err := conf.UnpackChild("validate", &cfg.Validate); err != nil {
		return nil, err
	}
	if err := conf.UnpackChild("report", &cfg.Report); err != nil {
		return nil, err
	}

	storage, err := metricstorage.New(conf)
	if err != nil {
		return nil, err
	}

	exp, err := exporter.New(conf, storage)
	if err != nil {
		return nil, err
	}

	svr, err := server.New(conf)
	if err != nil {
		return nil, err
	}

	suite, err := validate.NewSuiteFromConfig(cfg.Validate)
	if err != nil {
		return nil, errors.Wrap(err, "building validator suite")
	}

	mgr, err := report.NewManager(cfg.Report.Processors)
	if err != nil {
		return nil, errors.Wrap(err, "building report processors")
	}

	drv := host.New(cfg.Host)
	drv.AttachMetrics(storage)
	bus := pubsub.New()
	drv.AttachPubSub(bus)

	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
		buildInfo: buildInfo,
		drv:       drv,
		suite:     suite,
		pl:        report.NewPipeline(cfg.Report.Pipelines, mgr),
		mgr:       mgr,
		exp:       exp,
		svr:       svr,
		storage:   storage,
		bus:       bus,
	}, nil
}

// Start registers HTTP routes and launches the exporter's background
// flush loop. The caller drives actual parsing via Run.
func (e *Engine) Start() error {
	e.setupServer()
	e.exp.Start()

	if e.svr != nil {
		go func() {
			err := e.svr.ListenAndServe()
			if !errors.Is(err, io.EOF) && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("failed to start server: %v", err)
			}
		}()
	}
	return nil
}

// Stop releases the exporter and cancels any in-flight background work.
func (e *Engine) Stop() {
	e.exp.Close()
	e.mgr.Clean()
	e.cancel()
}

// Reload rebuilds the validator suite from fresh configuration, letting
// an operator change which rules run without restarting the process.
func (e *Engine) Reload(conf *confengine.Config) error {
	var cfg validate.Config
	if err := conf.UnpackChild("validate", &cfg); err != nil {
		return err
	}

	suite, err := validate.NewSuiteFromConfig(cfg)
	if err != nil {
		return err
	}

	e.cfg.Validate = cfg
	e.suite = suite
	return nil
}

// Run drives one byte source through the host driver and validator
// suite to completion, producing a ParseReport that is then fed through
// the report pipeline and exported. The returned error is the driver's
// terminal error, if any; a non-nil report is still returned alongside
// a fatal error so partial validation findings are not discarded.
func (e *Engine) Run(src io.Reader) (*report.ParseReport, error) {
	e.suite.Clear()

	var lastCtrl string
	handler := x12.HandlerFunc(func(seg *x12.Segment) error {
		if seg.ID() == "ISA" && seg.ElementCount() > 12 {
			lastCtrl = seg.Element(12).String()
		}
		return e.suite.Handle(seg)
	})

	stats, runErr := e.drv.Run(src, handler)

	rep := &report.ParseReport{
		Stats:           stats,
		Errors:          e.suite.Errors(),
		InterchangeCtrl: lastCtrl,
	}

	e.pl.Range(rep, func(dst *common.Record) {
		e.exp.Export(dst)
	})
	e.exp.Export(common.NewRecord(common.RecordReport, rep))

	return rep, runErr
}

func (e *Engine) setupServer() {
	if e.svr == nil {
		return
	}

	e.svr.RegisterGetRoute("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	e.svr.RegisterGetRoute("/metrics", func(w http.ResponseWriter, r *http.Request) {
		if e.storage == nil {
			return
		}
		e.storage.WritePrometheus(w)
	})

	e.svr.RegisterPostRoute("/-/logger", func(w http.ResponseWriter, r *http.Request) {
		level := r.FormValue("level")
		logger.SetLoggerLevel(level)
		w.Write([]byte(`{"status": "success"}`))
	})
}
