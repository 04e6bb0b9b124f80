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

	"github.com/pkg/errors"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
)

// Kind of a type.
type Kind uint

// Kinds of types in the IR.
const (
	// Invalid is the zero kind, marking a missing type.
	Invalid Kind = iota
	// Index is the kind of scalar dimension and element handles.
	Index
	// Tensor is the kind of ranked tensor types.
	Tensor
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Index:
		return "index"
	case Tensor:
		return "tensor"
	default:
		return "invalid"
	}
}

// Type of a value.
type Type interface {
	// typ marks a structure as a type of this IR.
	// It prevents external implementations of the interface.
	typ()

	// Kind of the type.
	Kind() Kind

	// Equal returns true if other is the same type.
	Equal(Type) bool

	// String representation of the type.
	String() string
}

type indexType struct{}

var _ Type = (*indexType)(nil)

var indexT = &indexType{}

func (*indexType) typ() {}

// Kind of the type.
func (*indexType) Kind() Kind { return Index }

// Equal returns true if other is the index type.
func (*indexType) Equal(other Type) bool {
	_, ok := other.(*indexType)
	return ok
}

// String representation of the type.
func (*indexType) String() string { return "index" }

// IndexType returns the scalar type of dimension and element handles.
func IndexType() Type {
	return indexT
}

// DynamicSize marks an axis length unknown at compile time.
const DynamicSize = int64(-1)

// TensorType is a ranked tensor type: an element data type together with
// a length for each axis. An axis length is either non-negative or
// DynamicSize. A rank of 0 denotes a scalar. Unranked tensors cannot be
// represented.
type TensorType struct {
	dt   dtype.DataType
	dims []int64
}

var _ Type = (*TensorType)(nil)

// TensorOf returns the tensor type with the given element data type and
// axis lengths. TensorOf panics if an axis length is negative but not
// DynamicSize.
func TensorOf(dt dtype.DataType, dims ...int64) *TensorType {
	for i, dim := range dims {
		if dim < 0 && dim != DynamicSize {
			panic(fmt.Sprintf("axis %d has length %d: want a non-negative length or DynamicSize", i, dim))
		}
	}
	return &TensorType{dt: dt, dims: slices.Clone(dims)}
}

func (*TensorType) typ() {}

// Kind of the type.
func (*TensorType) Kind() Kind { return Tensor }

// DataType returns the element type of the tensor.
func (t *TensorType) DataType() dtype.DataType { return t.dt }

// Rank returns the number of axes of the tensor. A rank of 0 denotes a scalar.
func (t *TensorType) Rank() int { return len(t.dims) }

// Dim returns the length of the i-th axis, or DynamicSize when the length
// is unknown at compile time. Dim panics when i is not smaller than the rank.
func (t *TensorType) Dim(i int) int64 {
	if i < 0 || i >= len(t.dims) {
		panic(fmt.Sprintf("axis %d out of range for %s", i, t.String()))
	}
	return t.dims[i]
}

// HasStaticDim returns true if the length of the i-th axis is known at
// compile time.
func (t *TensorType) HasStaticDim(i int) bool {
	return t.Dim(i) != DynamicSize
}

// IsStatic returns true if the length of every axis is known at compile
// time. A scalar is vacuously static.
func (t *TensorType) IsStatic() bool {
	return !slices.Contains(t.dims, DynamicSize)
}

// NumElements returns the total number of elements of the tensor. A
// scalar has one element. NumElements panics when the length of an axis
// is unknown at compile time.
func (t *TensorType) NumElements() int64 {
	n := int64(1)
	for i, dim := range t.dims {
		if dim == DynamicSize {
			panic(fmt.Sprintf("axis %d of %s has no length known at compile time", i, t.String()))
		}
		n *= dim
	}
	return n
}

// Equal returns true if other is a tensor type with the same element data
// type and the same axis lengths.
func (t *TensorType) Equal(other Type) bool {
	otherT, ok := other.(*TensorType)
	if !ok {
		return false
	}
	return t.dt == otherT.dt && slices.Equal(t.dims, otherT.dims)
}

// BackendShape returns the tensor type as a backend shape. Returns an
// error if the length of an axis is unknown at compile time.
func (t *TensorType) BackendShape() (*shape.Shape, error) {
	axes := make([]int, len(t.dims))
	for i, dim := range t.dims {
		if dim == DynamicSize {
			return nil, errors.Errorf("axis %d of %s has no length known at compile time", i, t.String())
		}
		axes[i] = int(dim)
	}
	return &shape.Shape{DType: t.dt, AxisLengths: axes}, nil
}

// String representation of the type.
func (t *TensorType) String() string {
	bld := strings.Builder{}
	bld.WriteString("tensor<")
	for _, dim := range t.dims {
		if dim == DynamicSize {
			bld.WriteString("?x")
			continue
		}
		bld.WriteString(fmt.Sprintf("%dx", dim))
	}
	bld.WriteString(t.dt.String())
	bld.WriteString(">")
	return bld.String()
}
