// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Verify checks the invariants of every op in the body of fn. All
// failures are reported, not only the first one.
func (f *Func) Verify() error {
	var errs error
	for i, op := range f.ops {
		if err := op.Verify(); err != nil {
			errs = multierr.Append(errs, errors.Errorf("func %s: op %d (%s): %v", f.name, i, op.OpName(), err))
		}
	}
	return errs
}

// Verify checks the invariants of every function of the module.
func (m *Module) Verify() error {
	var errs error
	for _, fn := range m.Funcs() {
		errs = multierr.Append(errs, fn.Verify())
	}
	return errs
}
