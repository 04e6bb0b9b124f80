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

package ixbuild_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/indexexpr/ir"
	"github.com/gx-org/indexexpr/ixbuild"
	"github.com/gx-org/indexexpr/ixpr"
)

func wantPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic but got none", name)
		}
	}()
	f()
}

func newTestFunc(t *testing.T) (*ir.Func, *ir.Builder) {
	t.Helper()
	fn := ir.NewFunc("test")
	return fn, ir.NewBuilder(fn)
}

// fakeCaps declines every request not listed in its maps. It lets a
// test drive each fallback of the builder deterministically.
type fakeCaps struct {
	cst    *ir.DenseIntAttr
	vals   map[int]ir.Value
	shapes map[int]ir.Value
}

var _ ixbuild.Capabilities = (*fakeCaps)(nil)

func (c *fakeCaps) Const(arr ir.Value) *ir.DenseIntAttr   { return c.cst }
func (c *fakeCaps) Val(arr ir.Value, i int) ir.Value      { return c.vals[i] }
func (c *fakeCaps) ShapeVal(arr ir.Value, i int) ir.Value { return c.shapes[i] }

func TestAttrExtraction(t *testing.T) {
	bld := ixbuild.NewAnalysis()
	attr := ir.Ints(4, 5, 6)
	if got, want := bld.AttrSize(attr), 3; got != want {
		t.Errorf("got size %d but want %d", got, want)
	}
	for i, want := range []int64{4, 5, 6} {
		got := bld.AttrLiteralAt(attr, i)
		if !got.IsLiteral() || got.Literal() != want {
			t.Errorf("element %d: got %v but want the literal %d", i, got, want)
		}
	}
	for _, i := range []int{3, 100, -1} {
		if got := bld.AttrLiteralAt(attr, i); !got.IsUndefined() {
			t.Errorf("element %d: got %v but want the undefined sentinel", i, got)
		}
	}
}

func TestAttrLiteralAtOrDefault(t *testing.T) {
	bld := ixbuild.NewAnalysis()
	attr := ir.Ints(4, 5, 6)
	tests := []struct {
		i    int
		def  int64
		want int64
	}{
		{i: 0, def: 9, want: 4},
		{i: 2, def: 9, want: 6},
		{i: 3, def: 9, want: 9},
		{i: 3, def: 0, want: 0},
		{i: 100, def: -1, want: -1},
	}
	for _, test := range tests {
		got := bld.AttrLiteralAtOrDefault(attr, test.i, test.def)
		if !got.IsLiteral() || got.Literal() != test.want {
			t.Errorf("element %d with default %d: got %v but want the literal %d", test.i, test.def, got, test.want)
		}
	}
}

func TestRank(t *testing.T) {
	fn, _ := newTestFunc(t)
	bld := ixbuild.NewAnalysis()
	tests := []struct {
		v    ir.Value
		want int
	}{
		{v: fn.NewArgument("scalar", ir.TensorOf(dtype.Int64)), want: 0},
		{v: fn.NewArgument("vec", ir.TensorOf(dtype.Int64, 4)), want: 1},
		{v: fn.NewArgument("cube", ir.TensorOf(dtype.Float32, 2, ir.DynamicSize, 4)), want: 3},
	}
	for _, test := range tests {
		if got := bld.Rank(test.v); got != test.want {
			t.Errorf("%s: got rank %d but want %d", test.v, got, test.want)
		}
	}
	idx := fn.NewArgument("i", ir.IndexType())
	wantPanic(t, "rank of a non-tensor", func() {
		bld.Rank(idx)
	})
}

func TestArraySize(t *testing.T) {
	fn, _ := newTestFunc(t)
	bld := ixbuild.NewAnalysis()
	scalar := fn.NewArgument("scalar", ir.TensorOf(dtype.Int64))
	if got, want := bld.ArraySize(scalar), 1; got != want {
		t.Errorf("got size %d but want %d", got, want)
	}
	vec := fn.NewArgument("vec", ir.TensorOf(dtype.Int64, 4))
	if got, want := bld.ArraySize(vec), 4; got != want {
		t.Errorf("got size %d but want %d", got, want)
	}
	mat := fn.NewArgument("mat", ir.TensorOf(dtype.Int64, 2, 3))
	wantPanic(t, "array size of a rank 2 value", func() {
		bld.ArraySize(mat)
	})
	dyn := fn.NewArgument("dyn", ir.TensorOf(dtype.Int64, ir.DynamicSize))
	wantPanic(t, "array size with a dynamic length", func() {
		bld.ArraySize(dyn)
	})
}

func TestSymbolAtConstantArray(t *testing.T) {
	_, irb := newTestFunc(t)
	cst := irb.Constant(ir.DenseVector(10, 20, 30))
	bld := ixbuild.NewAnalysis()
	for i, want := range []int64{10, 20, 30} {
		got := bld.SymbolAt(cst, i)
		if !got.IsLiteral() || got.Literal() != want {
			t.Errorf("element %d: got %v but want the literal %d", i, got, want)
		}
	}
	if got := bld.SymbolAt(cst, 3); !got.IsUndefined() {
		t.Errorf("got %v but want the undefined sentinel", got)
	}
	if got := bld.SymbolAtOrDefault(cst, 3, 1); !got.IsLiteral() || got.Literal() != 1 {
		t.Errorf("got %v but want the literal 1", got)
	}
	if got := bld.SymbolAtOrDefault(cst, 0, 1); !got.IsLiteral() || got.Literal() != 10 {
		t.Errorf("got %v but want the literal 10", got)
	}
}

func TestSymbolAtScalar(t *testing.T) {
	fn, irb := newTestFunc(t)
	bld := ixbuild.NewAnalysis()
	cst := irb.Constant(ir.DenseScalar(7))
	if got := bld.SymbolAt(cst, 0); !got.IsLiteral() || got.Literal() != 7 {
		t.Errorf("got %v but want the literal 7", got)
	}
	arg := fn.NewArgument("n", ir.TensorOf(dtype.Int64))
	if got := bld.SymbolAt(arg, 0); !got.IsQuestionmark() {
		t.Errorf("got %v but want a question mark", got)
	}
	if got := bld.SymbolAt(arg, 1); !got.IsUndefined() {
		t.Errorf("got %v but want the undefined sentinel", got)
	}
}

func TestSymbolAtMixedPositions(t *testing.T) {
	fn, _ := newTestFunc(t)
	arr := fn.NewArgument("arr", ir.TensorOf(dtype.Int64, 3))
	handle := fn.NewArgument("h", ir.IndexType())
	bld := ixbuild.New(&fakeCaps{vals: map[int]ir.Value{1: handle}})
	want := ixpr.List{
		ixpr.NewQuestionmark(),
		ixpr.NewSymbol(handle),
		ixpr.NewQuestionmark(),
	}
	var got ixpr.List
	bld.Symbols(arr, &got, ixbuild.AllElements)
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestSymbolsOfConstant(t *testing.T) {
	_, irb := newTestFunc(t)
	cst := irb.Constant(ir.DenseVector(10, 20, 30))
	bld := ixbuild.NewAnalysis()
	var got ixpr.List
	bld.Symbols(cst, &got, ixbuild.AllElements)
	want := ixpr.List{ixpr.NewLiteral(10), ixpr.NewLiteral(20), ixpr.NewLiteral(30)}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
	allLits, err := got.Literals()
	if err != nil {
		t.Fatalf("cannot read the literals: %v", err)
	}
	if want := []int64{10, 20, 30}; !cmp.Equal(allLits, want) {
		t.Errorf("got %v but want %v", allLits, want)
	}

	bld.Symbols(cst, &got, 2)
	if want := (ixpr.List{ixpr.NewLiteral(10), ixpr.NewLiteral(20)}); !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestSymbolsClearsPriorContents(t *testing.T) {
	_, irb := newTestFunc(t)
	cst := irb.Constant(ir.DenseVector(10, 20))
	bld := ixbuild.NewAnalysis()
	got := ixpr.List{ixpr.NewLiteral(-1), ixpr.NewLiteral(-2), ixpr.NewLiteral(-3)}
	bld.Symbols(cst, &got, ixbuild.AllElements)
	want := ixpr.List{ixpr.NewLiteral(10), ixpr.NewLiteral(20)}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestSymbolsPanics(t *testing.T) {
	_, irb := newTestFunc(t)
	cst := irb.Constant(ir.DenseVector(10, 20, 30))
	bld := ixbuild.NewAnalysis()
	var list ixpr.List
	wantPanic(t, "more elements than the array size", func() {
		bld.Symbols(cst, &list, 4)
	})
	wantPanic(t, "negative element count", func() {
		bld.Symbols(cst, &list, -2)
	})
}
