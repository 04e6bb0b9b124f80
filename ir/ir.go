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

// Package ir is the host intermediate representation read by the
// index-expression builder: ranked tensor types, values in single
// static assignment form, integer attributes, and the ops materialising
// constants, axis extents and array elements.
//
// Values and ops are borrowed views for the extraction layer: functions
// own their ops, ops own their result, and nothing in this package
// mutates a structure after the op creating it has been appended.
package ir

import "slices"

type (
	// Value is a value of the function being compiled: either one of the
	// function arguments or the result of an op of its body.
	Value interface {
		// value marks a structure as a value of this IR.
		// It prevents external implementations of the interface.
		value()

		// Type of the value.
		Type() Type

		// DefiningOp returns the op computing the value,
		// or nil for a function argument.
		DefiningOp() Op

		// String representation of the value.
		String() string
	}

	// Op is an operation in the body of a function. Every op of this IR
	// produces exactly one result value.
	Op interface {
		// op marks a structure as an op of this IR.
		op()

		// OpName returns the mnemonic of the op.
		OpName() string

		// Operands returns the values the op reads.
		Operands() []Value

		// Result returns the value computed by the op.
		Result() Value

		// Verify returns an error if the op violates one of its invariants.
		Verify() error

		// String representation of the op.
		String() string
	}
)

// Argument is a value bound to a parameter of a function.
type Argument struct {
	name string
	typ  Type
}

var _ Value = (*Argument)(nil)

func (*Argument) value() {}

// Name of the parameter the argument is bound to.
func (a *Argument) Name() string { return a.name }

// Type of the value.
func (a *Argument) Type() Type { return a.typ }

// DefiningOp returns nil: arguments are not computed by an op.
func (a *Argument) DefiningOp() Op { return nil }

// Result is the value computed by an op.
type Result struct {
	def Op
	typ Type
	id  int
}

var _ Value = (*Result)(nil)

func (*Result) value() {}

// Type of the value.
func (r *Result) Type() Type { return r.typ }

// DefiningOp returns the op computing the value.
func (r *Result) DefiningOp() Op { return r.def }

// Func is a function under compilation: named, typed arguments and a
// body of ops kept in insertion order.
type Func struct {
	name   string
	args   []*Argument
	ops    []Op
	nextID int
}

// NewFunc returns a new empty function.
func NewFunc(name string) *Func {
	return &Func{name: name}
}

// Name of the function.
func (f *Func) Name() string { return f.name }

// NewArgument appends a parameter to the function and returns the value
// bound to it.
func (f *Func) NewArgument(name string, typ Type) Value {
	arg := &Argument{name: name, typ: typ}
	f.args = append(f.args, arg)
	return arg
}

// Arguments returns the values bound to the parameters of the function.
func (f *Func) Arguments() []*Argument {
	return slices.Clone(f.args)
}

// Ops returns the body of the function in insertion order.
func (f *Func) Ops() []Op {
	return slices.Clone(f.ops)
}

func (f *Func) append(op Op, typ Type) *Result {
	res := &Result{def: op, typ: typ, id: f.nextID}
	f.nextID++
	f.ops = append(f.ops, op)
	return res
}
