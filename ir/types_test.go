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

package ir_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/indexexpr/ir"
)

// wantPanic runs f and checks that it panics.
func wantPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic but got none", name)
		}
	}()
	f()
}

func TestTensorTypeString(t *testing.T) {
	tests := []struct {
		typ  *ir.TensorType
		want string
	}{
		{
			typ:  ir.TensorOf(dtype.Int64),
			want: "tensor<int64>",
		},
		{
			typ:  ir.TensorOf(dtype.Int64, 3),
			want: "tensor<3xint64>",
		},
		{
			typ:  ir.TensorOf(dtype.Float32, 2, ir.DynamicSize, 4),
			want: "tensor<2x?x4xfloat32>",
		},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("wrong type string: got %s but want %s", got, test.want)
		}
	}
}

func TestTensorTypeDims(t *testing.T) {
	typ := ir.TensorOf(dtype.Float32, 2, ir.DynamicSize, 4)
	if got, want := typ.Rank(), 3; got != want {
		t.Errorf("wrong rank: got %d but want %d", got, want)
	}
	wantDims := []int64{2, ir.DynamicSize, 4}
	for i, want := range wantDims {
		if got := typ.Dim(i); got != want {
			t.Errorf("wrong length for axis %d: got %d but want %d", i, got, want)
		}
	}
	wantStatic := []bool{true, false, true}
	for i, want := range wantStatic {
		if got := typ.HasStaticDim(i); got != want {
			t.Errorf("wrong static axis %d: got %v but want %v", i, got, want)
		}
	}
	if typ.IsStatic() {
		t.Errorf("%s reported as static", typ.String())
	}
	if scalar := ir.TensorOf(dtype.Int64); !scalar.IsStatic() {
		t.Errorf("%s reported as not static", scalar.String())
	}
	wantPanic(t, "axis out of range", func() {
		typ.Dim(3)
	})
}

func TestNumElements(t *testing.T) {
	if got, want := ir.TensorOf(dtype.Int64, 2, 3).NumElements(), int64(6); got != want {
		t.Errorf("wrong number of elements: got %d but want %d", got, want)
	}
	if got, want := ir.TensorOf(dtype.Int64).NumElements(), int64(1); got != want {
		t.Errorf("wrong number of elements: got %d but want %d", got, want)
	}
	wantPanic(t, "number of elements with a dynamic axis", func() {
		ir.TensorOf(dtype.Int64, 2, ir.DynamicSize).NumElements()
	})
}

func TestTensorTypeEqual(t *testing.T) {
	tests := []struct {
		x, y ir.Type
		want bool
	}{
		{
			x:    ir.TensorOf(dtype.Int64, 2, 3),
			y:    ir.TensorOf(dtype.Int64, 2, 3),
			want: true,
		},
		{
			x:    ir.TensorOf(dtype.Int64, 2, 3),
			y:    ir.TensorOf(dtype.Int64, 2, ir.DynamicSize),
			want: false,
		},
		{
			x:    ir.TensorOf(dtype.Int64, 2),
			y:    ir.TensorOf(dtype.Int32, 2),
			want: false,
		},
		{
			x:    ir.TensorOf(dtype.Int64),
			y:    ir.IndexType(),
			want: false,
		},
		{
			x:    ir.IndexType(),
			y:    ir.IndexType(),
			want: true,
		},
	}
	for i, test := range tests {
		if got := test.x.Equal(test.y); got != test.want {
			t.Errorf("test %d: %s == %s: got %v but want %v", i, test.x.String(), test.y.String(), got, test.want)
		}
	}
}

func TestTensorOfPanicsOnNegativeLength(t *testing.T) {
	wantPanic(t, "negative axis length", func() {
		ir.TensorOf(dtype.Int64, 2, -5)
	})
}

func TestBackendShape(t *testing.T) {
	sh, err := ir.TensorOf(dtype.Int64, 2, 3).BackendShape()
	if err != nil {
		t.Fatalf("cannot convert a static type to a backend shape: %v", err)
	}
	if got, want := sh.AxisLengths, []int{2, 3}; !cmp.Equal(got, want) {
		t.Errorf("wrong axis lengths: got %v but want %v", got, want)
	}
	if got, want := sh.DType, dtype.Int64; got != want {
		t.Errorf("wrong data type: got %v but want %v", got, want)
	}
	if got, want := sh.Size(), 6; got != want {
		t.Errorf("wrong size: got %d but want %d", got, want)
	}
	if _, err := ir.TensorOf(dtype.Int64, 2, ir.DynamicSize).BackendShape(); err == nil {
		t.Errorf("expected an error for a dynamic axis but got none")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind ir.Kind
		want string
	}{
		{kind: ir.Index, want: "index"},
		{kind: ir.Tensor, want: "tensor"},
		{kind: ir.Invalid, want: "invalid"},
	}
	for _, test := range tests {
		if got := fmt.Sprint(test.kind); got != test.want {
			t.Errorf("wrong kind string: got %s but want %s", got, test.want)
		}
	}
}
