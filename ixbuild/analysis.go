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

type analysisCaps struct{}

var _ Capabilities = analysisCaps{}

// Const returns the dense table of arr when arr is the result of a
// constant op.
func (analysisCaps) Const(arr ir.Value) *ir.DenseIntAttr {
	return constOf(arr)
}

// Val declines: analysis runs before any code exists to extract an
// element into.
func (analysisCaps) Val(arr ir.Value, i int) ir.Value { return nil }

// ShapeVal declines.
func (analysisCaps) ShapeVal(arr ir.Value, i int) ir.Value { return nil }

// NewAnalysis returns a builder for shape analysis: quantities known
// at compile time are extracted as literals and everything else
// degrades to question marks. The IR is never modified.
func NewAnalysis() *Builder {
	return New(analysisCaps{})
}

func constOf(arr ir.Value) *ir.DenseIntAttr {
	cst, ok := arr.DefiningOp().(*ir.ConstantOp)
	if !ok {
		return nil
	}
	return cst.Val
}
