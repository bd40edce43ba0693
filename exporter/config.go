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
	"net/url"
	"time"
)

const defaultTimeout = 15 * time.Second

// Config is decoded from the "exporter" confengine config block.
type Config struct {
	Metrics MetricsConfig `config:"metrics"`
	Audit   AuditConfig   `config:"audit"`
	Report  ReportConfig  `config:"report"`
}

// MetricsConfig configures the Prometheus remote-write sink.
type MetricsConfig struct {
	Enabled  bool              `config:"enabled"`
	Endpoint string            `config:"endpoint"`
	Header   map[string]string `config:"header"`
	Interval time.Duration     `config:"interval"`
	Timeout  time.Duration     `config:"timeout"`
}

func (mc *MetricsConfig) Validate() error {
	if _, err := url.Parse(mc.Endpoint); err != nil {
		return err
	}
	if mc.Timeout <= 0 {
		mc.Timeout = defaultTimeout
	}
	if mc.Interval <= 0 {
		mc.Interval = time.Minute
	}
	return nil
}

// AuditConfig configures the MongoDB audit sink.
type AuditConfig struct {
	Enabled    bool          `config:"enabled"`
	URI        string        `config:"uri"`
	Database   string        `config:"database"`
	Collection string        `config:"collection"`
	Timeout    time.Duration `config:"timeout"`
}

func (ac *AuditConfig) Validate() {
	if ac.Database == "" {
		ac.Database = "x12parse"
	}
	if ac.Collection == "" {
		ac.Collection = "audit"
	}
	if ac.Timeout <= 0 {
		ac.Timeout = defaultTimeout
	}
}

// ReportConfig configures the JSON-per-line report log sink.
type ReportConfig struct {
	Enabled    bool   `config:"enabled"`
	Console    bool   `config:"console"`
	Filename   string `config:"filename"`
	MaxSize    int    `config:"maxSize"`
	MaxBackups int    `config:"maxBackups"`
	MaxAge     int    `config:"maxAge"`
}

func (rc *ReportConfig) Validate() {
	if rc.Filename == "" {
		rc.Filename = "x12parse-report.log"
	}
	if rc.MaxSize <= 0 {
		rc.MaxSize = 100
	}
	if rc.MaxAge <= 0 {
		rc.MaxAge = 7
	}
	if rc.MaxBackups <= 0 {
		rc.MaxBackups = 10
	}
}
