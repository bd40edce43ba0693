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

import (
	"github.com/pkg/errors"

	"github.com/x12stream/x12parse/common"
)

// Processor turns a ParseReport into a derived Record. A nil result
// with a nil error means the processor had nothing to emit for this
// report.
type Processor interface {
	Name() string
	Process(r *ParseReport) (*common.Record, error)
	Clean()
}

// CreateFunc builds a Processor from its decoded configuration block.
type CreateFunc func(conf common.Options) (Processor, error)

var processorFactory = map[string]CreateFunc{}

// Register adds a named processor factory, called from each
// processor's package init, mirroring processor.Register.
func Register(name string, f CreateFunc) {
	processorFactory[name] = f
}

// Get looks up a previously registered processor factory by name.
func Get(name string) (CreateFunc, error) {
	f, ok := processorFactory[name]
	if !ok {
		return nil, errors.Errorf("report processor factory (%s) not found", name)
	}
	return f, nil
}

// Config names one processor instance and its configuration block.
type Config struct {
	Name   string         `config:"name"`
	Config map[string]any `config:"config"`
}

// Manager holds the set of Processor instances built from configuration,
// looked up by name.
type Manager struct {
	processors []Processor
}

// NewManager builds every configured processor via its registered
// factory.
func NewManager(configs []Config) (*Manager, error) {
	mgr := &Manager{}
	for _, pcfg := range configs {
		f, err := Get(pcfg.Name)
		if err != nil {
			return nil, err
		}
		p, err := f(pcfg.Config)
		if err != nil {
			return nil, errors.Wrapf(err, "building processor %q", pcfg.Name)
		}
		mgr.processors = append(mgr.processors, p)
	}
	return mgr, nil
}

// Get returns the named processor, if configured.
func (mgr *Manager) Get(name string) (Processor, bool) {
	for _, p := range mgr.processors {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Clean releases every processor's resources.
func (mgr *Manager) Clean() {
	for _, p := range mgr.processors {
		p.Clean()
	}
}
