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

// Package ixbuild extracts index expressions from the host IR. The
// builder normalizes shape related quantities (axis lengths, integer
// list attributes, the elements of integer array values) into ixpr
// expressions, always choosing the most informative representation
// available: a compile-time literal, then a runtime handle, then a
// question mark. The host IR is reached through injected capabilities
// so that the same queries serve both analysis, where no code may be
// created, and lowering, where handles are materialised on demand.
package ixbuild

import (
	"fmt"

	"github.com/gx-org/indexexpr/ir"
	"github.com/gx-org/indexexpr/ixpr"
)

// AllElements asks Symbols to extract every element of the array.
const AllElements = -1

// Capabilities are the seams through which the builder reads the host
// IR. A capability declines by returning nil; the builder then falls
// back to the next representation.
type Capabilities interface {
	// Const returns the dense table of the elements of arr when the
	// IR proves the value constant.
	Const(arr ir.Value) *ir.DenseIntAttr

	// Val returns a runtime handle to the i-th element of arr.
	Val(arr ir.Value, i int) ir.Value

	// ShapeVal returns a runtime handle to the length of the i-th
	// axis of arr.
	ShapeVal(arr ir.Value, i int) ir.Value
}

// Builder extracts and normalizes shape quantities of host IR entities
// into index expressions. The builder holds no state besides its
// capabilities: every query is a pure read of the current IR, and the
// caller owns every expression returned.
type Builder struct {
	caps Capabilities
}

// New returns a builder reading the host IR through caps.
func New(caps Capabilities) *Builder {
	return &Builder{caps: caps}
}

func tensorType(v ir.Value) *ir.TensorType {
	typ, ok := v.Type().(*ir.TensorType)
	if !ok {
		panic(fmt.Sprintf("value %s has type %s: want a tensor", v.String(), v.Type().String()))
	}
	return typ
}

// AttrSize returns the number of elements of an integer list attribute.
func (b *Builder) AttrSize(attr *ir.IntsAttr) int {
	return attr.Size()
}

// AttrLiteralAt returns the i-th element of an integer list attribute
// as a literal, or the undefined sentinel when i is beyond the size of
// the attribute. A short attribute is an expected condition: trailing
// elements are often optional.
func (b *Builder) AttrLiteralAt(attr *ir.IntsAttr, i int) ixpr.IndexExpr {
	if i < 0 || i >= attr.Size() {
		return ixpr.NewUndefined()
	}
	return ixpr.NewLiteral(attr.At(i))
}

// AttrLiteralAtOrDefault returns the i-th element of an integer list
// attribute as a literal, or the literal def when i is beyond the size
// of the attribute.
func (b *Builder) AttrLiteralAtOrDefault(attr *ir.IntsAttr, i int, def int64) ixpr.IndexExpr {
	if e := b.AttrLiteralAt(attr, i); e.IsDefined() {
		return e
	}
	return ixpr.NewLiteral(def)
}

// Rank returns the number of axes of the tensor type of v. A rank of 0
// denotes a scalar. Rank panics when v is not a tensor: reasoning on
// values of unknown rank is not supported.
func (b *Builder) Rank(v ir.Value) int {
	return tensorType(v).Rank()
}

// ArraySize returns the number of elements of an integer array value:
// a scalar counts one element, an array with one axis counts its
// length. ArraySize panics when v has more than one axis or when the
// length of the array is not known at compile time.
func (b *Builder) ArraySize(v ir.Value) int {
	typ := tensorType(v)
	switch typ.Rank() {
	case 0:
		return 1
	case 1:
		if !typ.HasStaticDim(0) {
			panic(fmt.Sprintf("array %s of type %s has no length known at compile time", v.String(), typ.String()))
		}
		return int(typ.Dim(0))
	}
	panic(fmt.Sprintf("value %s has rank %d: want a scalar or an array with one axis", v.String(), typ.Rank()))
}

// SymbolAt returns the i-th element of an integer array value, or the
// undefined sentinel when i is beyond the size of the array. The
// element is a literal when the contents of the array are provably
// constant (a known integer is always preferred over a handle), a
// symbol when a runtime handle to the element can be obtained, and a
// question mark otherwise.
func (b *Builder) SymbolAt(v ir.Value, i int) ixpr.IndexExpr {
	if i < 0 || i >= b.ArraySize(v) {
		return ixpr.NewUndefined()
	}
	if cst := b.caps.Const(v); cst != nil {
		return ixpr.NewLiteral(cst.At(i))
	}
	if handle := b.caps.Val(v, i); handle != nil {
		return ixpr.NewSymbol(handle)
	}
	return ixpr.NewQuestionmark()
}

// SymbolAtOrDefault returns the i-th element of an integer array
// value, or the literal def when i is beyond the size of the array.
func (b *Builder) SymbolAtOrDefault(v ir.Value, i int, def int64) ixpr.IndexExpr {
	if e := b.SymbolAt(v, i); e.IsDefined() {
		return e
	}
	return ixpr.NewLiteral(def)
}

// Symbols fills list with the first n elements of an integer array
// value, extracted like SymbolAt, or with all of its elements when n
// is AllElements. Prior contents of list are discarded. Symbols panics
// when n is greater than the size of the array: every position within
// the size has a representation, at worst a question mark.
func (b *Builder) Symbols(v ir.Value, list *ixpr.List, n int) {
	size := b.ArraySize(v)
	if n == AllElements {
		n = size
	}
	if n < 0 || n > size {
		panic(fmt.Sprintf("cannot extract %d elements from array %s of size %d", n, v.String(), size))
	}
	*list = (*list)[:0]
	for i := 0; i < n; i++ {
		e := b.SymbolAt(v, i)
		if e.IsUndefined() {
			panic(fmt.Sprintf("element %d of array %s of size %d resolved to no expression", i, v.String(), size))
		}
		*list = append(*list, e)
	}
}

// HasLiteralShapeAt returns true if the length of the i-th axis of v
// is known at compile time. HasLiteralShapeAt panics when i is not
// smaller than the rank of v.
func (b *Builder) HasLiteralShapeAt(v ir.Value, i int) bool {
	return tensorType(v).HasStaticDim(i)
}

// HasLiteralShape returns true if the length of every axis of v is
// known at compile time. A scalar has a literal shape.
func (b *Builder) HasLiteralShape(v ir.Value) bool {
	return tensorType(v).IsStatic()
}

// ShapeAt returns the length of the i-th axis of v when known at
// compile time, and ir.DynamicSize otherwise. ShapeAt panics when i is
// not smaller than the rank of v.
func (b *Builder) ShapeAt(v ir.Value, i int) int64 {
	return tensorType(v).Dim(i)
}

// ShapeLiteralAt returns the length of the i-th axis of v as a
// literal. ShapeLiteralAt panics when the length is not known at
// compile time: callers that tolerate a dynamic axis use ShapeSymbolAt
// or ShapeDimAt instead.
func (b *Builder) ShapeLiteralAt(v ir.Value, i int) ixpr.IndexExpr {
	dim := b.ShapeAt(v, i)
	if dim == ir.DynamicSize {
		panic(fmt.Sprintf("axis %d of %s has no length known at compile time", i, v.String()))
	}
	return ixpr.NewLiteral(dim)
}

// ShapeSymbolAt returns the length of the i-th axis of v: a literal
// when the length is known at compile time, a symbol when a runtime
// handle to the length can be obtained, and a question mark carrying
// the provenance (v, i) otherwise. ShapeSymbolAt panics when i is not
// smaller than the rank of v.
func (b *Builder) ShapeSymbolAt(v ir.Value, i int) ixpr.IndexExpr {
	return b.shapeExprAt(v, i, ixpr.NewSymbol)
}

// ShapeDimAt is ShapeSymbolAt with the handle restricted to axis
// length and loop bound contexts.
func (b *Builder) ShapeDimAt(v ir.Value, i int) ixpr.IndexExpr {
	return b.shapeExprAt(v, i, ixpr.NewDim)
}

func (b *Builder) shapeExprAt(v ir.Value, i int, wrap func(ir.Value) ixpr.IndexExpr) ixpr.IndexExpr {
	dim := b.ShapeAt(v, i)
	if dim != ir.DynamicSize {
		return ixpr.NewLiteral(dim)
	}
	if handle := b.caps.ShapeVal(v, i); handle != nil {
		return wrap(handle)
	}
	return ixpr.QuestionmarkAt(v, i)
}

// ShapeLiterals fills list with the length of every axis of v as
// literals. Prior contents of list are discarded. ShapeLiterals panics
// when the length of an axis is not known at compile time.
func (b *Builder) ShapeLiterals(v ir.Value, list *ixpr.List) {
	b.fillShape(v, list, b.ShapeLiteralAt)
}

// ShapeSymbols fills list with the length of every axis of v, each
// extracted like ShapeSymbolAt. Prior contents of list are discarded.
func (b *Builder) ShapeSymbols(v ir.Value, list *ixpr.List) {
	b.fillShape(v, list, b.ShapeSymbolAt)
}

// ShapeDims fills list with the length of every axis of v, each
// extracted like ShapeDimAt. Prior contents of list are discarded.
func (b *Builder) ShapeDims(v ir.Value, list *ixpr.List) {
	b.fillShape(v, list, b.ShapeDimAt)
}

func (b *Builder) fillShape(v ir.Value, list *ixpr.List, at func(ir.Value, int) ixpr.IndexExpr) {
	rank := b.Rank(v)
	*list = (*list)[:0]
	for i := 0; i < rank; i++ {
		*list = append(*list, at(v, i))
	}
}
