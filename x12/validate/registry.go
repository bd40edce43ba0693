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

package validate

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	factoryMu sync.RWMutex
	factory   = map[string]CreateFunc{}
)

// Register adds a named validator factory, making it available to
// NewSuiteFromConfig. Intended for package init functions; panics are
// deliberately avoided so tests can register fixtures freely.
func Register(name string, f CreateFunc) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory[name] = f
}

// Get looks up a previously registered validator factory by name.
func Get(name string) (CreateFunc, error) {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	f, ok := factory[name]
	if !ok {
		return nil, errors.Errorf("validator factory (%s) not found", name)
	}
	return f, nil
}

func init() {
	Register("envelope_integrity", func() Validator { return NewEnvelopeIntegrityRule() })
	Register("control_reconciliation", func() Validator { return NewControlReconciliationRule() })
}
