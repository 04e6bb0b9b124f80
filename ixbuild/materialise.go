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

package ixbuild

import "github.com/gx-org/indexexpr/ir"

type materialiseCaps struct {
	irb *ir.Builder
}

var _ Capabilities = (*materialiseCaps)(nil)

// Const returns the dense table of arr when arr is the result of a
// constant op. A constant read never materialises code.
func (c *materialiseCaps) Const(arr ir.Value) *ir.DenseIntAttr {
	return constOf(arr)
}

// Val materialises an extract op reading the i-th element of arr at
// the insertion point.
func (c *materialiseCaps) Val(arr ir.Value, i int) ir.Value {
	return c.irb.Extract(arr, i)
}

// ShapeVal materialises a dim op reading the length of the i-th axis
// of arr at the insertion point.
func (c *materialiseCaps) ShapeVal(arr ir.Value, i int) ir.Value {
	return c.irb.Dim(arr, i)
}

// NewMaterialiser returns a builder for lowering: runtime quantities
// are materialised as ops appended at the insertion point of irb, so
// that every extracted expression carries a usable handle.
func NewMaterialiser(irb *ir.Builder) *Builder {
	return New(&materialiseCaps{irb: irb})
}
