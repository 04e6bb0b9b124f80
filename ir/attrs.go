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
	"fmt"
	"slices"
	"strings"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
)

// Attr is a compile-time constant attached to an op.
type Attr interface {
	// attr marks a structure as an attribute of this IR.
	attr()

	// String representation of the attribute.
	String() string
}

// IntsAttr is a read-only ordered list of integers known at compile time.
// The position of an element is meaningful, typically mapping to an axis
// of a tensor.
type IntsAttr struct {
	vals []int64
}

var _ Attr = (*IntsAttr)(nil)

// Ints returns a new integer list attribute.
func Ints(vals ...int64) *IntsAttr {
	return &IntsAttr{vals: slices.Clone(vals)}
}

func (*IntsAttr) attr() {}

// Size returns the number of elements in the attribute.
func (a *IntsAttr) Size() int { return len(a.vals) }

// At returns the i-th element. At panics when i is out of bounds: soft
// bounds handling belongs to the extraction layer, which checks Size
// before reading.
func (a *IntsAttr) At(i int) int64 {
	if i < 0 || i >= len(a.vals) {
		panic(fmt.Sprintf("element %d out of range for attribute of size %d", i, len(a.vals)))
	}
	return a.vals[i]
}

// Values returns a copy of the elements of the attribute.
func (a *IntsAttr) Values() []int64 {
	return slices.Clone(a.vals)
}

// String representation of the attribute.
func (a *IntsAttr) String() string {
	ss := make([]string, len(a.vals))
	for i, val := range a.vals {
		ss[i] = fmt.Sprintf("%d", val)
	}
	return "[" + strings.Join(ss, ", ") + "]"
}

// DenseIntAttr is a dense table of integers backing a constant tensor
// value. Its type is always static: a constant with an unknown axis
// length cannot be written down.
type DenseIntAttr struct {
	typ  *TensorType
	sh   *shape.Shape
	vals []int64
}

var _ Attr = (*DenseIntAttr)(nil)

// DenseInts returns a dense integer attribute holding the elements of a
// constant tensor of the given type. DenseInts panics when the type has
// an axis with no compile-time length or when the number of values does
// not match the number of elements of the type.
func DenseInts(typ *TensorType, vals ...int64) *DenseIntAttr {
	sh, err := typ.BackendShape()
	if err != nil {
		panic(fmt.Sprintf("cannot build a constant of type %s: %v", typ.String(), err))
	}
	if len(vals) != sh.Size() {
		panic(fmt.Sprintf("mismatch between the number of values (=%d) and the number of elements (=%d) in shape %s", len(vals), sh.Size(), sh.String()))
	}
	return &DenseIntAttr{typ: typ, sh: sh, vals: slices.Clone(vals)}
}

// DenseScalar returns a dense attribute holding a single integer, backing
// a constant scalar (that is, a tensor of rank 0).
func DenseScalar(val int64) *DenseIntAttr {
	return DenseInts(TensorOf(dtype.Int64), val)
}

// DenseVector returns a dense attribute backing a constant tensor with
// one axis.
func DenseVector(vals ...int64) *DenseIntAttr {
	return DenseInts(TensorOf(dtype.Int64, int64(len(vals))), vals...)
}

func (*DenseIntAttr) attr() {}

// Type returns the tensor type of the constant.
func (a *DenseIntAttr) Type() *TensorType { return a.typ }

// Shape returns the backend shape of the constant.
func (a *DenseIntAttr) Shape() *shape.Shape { return a.sh }

// Size returns the number of elements in the table.
func (a *DenseIntAttr) Size() int { return len(a.vals) }

// At returns the i-th element of the table in row-major order. At panics
// when i is out of bounds.
func (a *DenseIntAttr) At(i int) int64 {
	if i < 0 || i >= len(a.vals) {
		panic(fmt.Sprintf("element %d out of range for constant of %d elements", i, len(a.vals)))
	}
	return a.vals[i]
}

// Scalar returns the value of a constant holding a single element.
// Scalar panics when the constant holds more than one element.
func (a *DenseIntAttr) Scalar() int64 {
	if len(a.vals) != 1 {
		panic(fmt.Sprintf("constant %s holds %d elements: want exactly one", a.typ.String(), len(a.vals)))
	}
	return a.vals[0]
}

// Values returns a copy of the elements of the table.
func (a *DenseIntAttr) Values() []int64 {
	return slices.Clone(a.vals)
}

// String representation of the attribute.
func (a *DenseIntAttr) String() string {
	ss := make([]string, len(a.vals))
	for i, val := range a.vals {
		ss[i] = fmt.Sprintf("%d", val)
	}
	return fmt.Sprintf("dense<[%s]> : %s", strings.Join(ss, ", "), a.typ.String())
}
