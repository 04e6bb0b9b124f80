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
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Module is a named set of functions.
type Module struct {
	name  string
	funcs map[string]*Func
}

// NewModule returns a new empty module.
func NewModule(name string) *Module {
	return &Module{name: name, funcs: make(map[string]*Func)}
}

// Name of the module.
func (m *Module) Name() string { return m.name }

// Add a function to the module. Returns an error if the module already
// has a function with the same name.
func (m *Module) Add(fn *Func) error {
	if _, ok := m.funcs[fn.Name()]; ok {
		return errors.Errorf("function %s already defined in module %s", fn.Name(), m.name)
	}
	m.funcs[fn.Name()] = fn
	return nil
}

// Func returns the function with the given name, or nil if the module
// has none.
func (m *Module) Func(name string) *Func {
	return m.funcs[name]
}

// Funcs returns the functions of the module ordered by name.
func (m *Module) Funcs() []*Func {
	names := maps.Keys(m.funcs)
	sort.Strings(names)
	fns := make([]*Func, len(names))
	for i, name := range names {
		fns[i] = m.funcs[name]
	}
	return fns
}
