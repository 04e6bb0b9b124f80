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

// Builder appends ops to the body of a function. Op invariants are not
// checked at creation time: call Verify on the function once it has
// been built.
type Builder struct {
	fn *Func
}

// NewBuilder returns a builder appending ops to fn.
func NewBuilder(fn *Func) *Builder {
	return &Builder{fn: fn}
}

// Func returns the function the builder appends to.
func (b *Builder) Func() *Func {
	return b.fn
}

// Constant appends an op materialising the constant described by val and
// returns its result.
func (b *Builder) Constant(val *DenseIntAttr) Value {
	op := &ConstantOp{Val: val}
	op.res = b.fn.append(op, val.Type())
	return op.res
}

// Dim appends an op reading the length of the i-th axis of arr at
// runtime and returns its result.
func (b *Builder) Dim(arr Value, i int) Value {
	op := &DimOp{Arr: arr, Index: i}
	op.res = b.fn.append(op, IndexType())
	return op.res
}

// Extract appends an op reading the i-th element of arr at runtime and
// returns its result.
func (b *Builder) Extract(arr Value, i int) Value {
	op := &ExtractOp{Arr: arr, Index: i}
	op.res = b.fn.append(op, IndexType())
	return op.res
}
