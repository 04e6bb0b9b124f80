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

import "github.com/pkg/errors"

// ConstantOp materialises the constant tensor described by a dense
// attribute.
type ConstantOp struct {
	// Val holds the elements and the type of the constant.
	Val *DenseIntAttr

	res *Result
}

var _ Op = (*ConstantOp)(nil)

func (*ConstantOp) op() {}

// OpName returns the mnemonic of the op.
func (*ConstantOp) OpName() string { return "constant" }

// Operands returns the values the op reads.
func (op *ConstantOp) Operands() []Value { return nil }

// Result returns the value computed by the op.
func (op *ConstantOp) Result() Value { return op.res }

// Verify returns an error if the op violates one of its invariants.
func (op *ConstantOp) Verify() error {
	if op.Val == nil {
		return errors.Errorf("constant has no dense attribute")
	}
	if op.res == nil {
		return errors.Errorf("constant has no result")
	}
	if !op.res.typ.Equal(op.Val.Type()) {
		return errors.Errorf("constant result type %s does not match its attribute type %s", op.res.typ.String(), op.Val.Type().String())
	}
	return nil
}

// DimOp reads the length of one axis of a tensor value at runtime.
type DimOp struct {
	// Arr is the tensor value the axis length is read from.
	Arr Value
	// Index of the axis.
	Index int

	res *Result
}

var _ Op = (*DimOp)(nil)

func (*DimOp) op() {}

// OpName returns the mnemonic of the op.
func (*DimOp) OpName() string { return "dim" }

// Operands returns the values the op reads.
func (op *DimOp) Operands() []Value { return []Value{op.Arr} }

// Result returns the value computed by the op.
func (op *DimOp) Result() Value { return op.res }

// Verify returns an error if the op violates one of its invariants.
func (op *DimOp) Verify() error {
	if op.Arr == nil {
		return errors.Errorf("dim has no tensor operand")
	}
	typ, ok := op.Arr.Type().(*TensorType)
	if !ok {
		return errors.Errorf("dim operand has type %s: want a tensor", op.Arr.Type().String())
	}
	if op.Index < 0 || op.Index >= typ.Rank() {
		return errors.Errorf("dim axis %d out of range for %s", op.Index, typ.String())
	}
	return nil
}

// ExtractOp reads one element of an integer array value at runtime.
// The array is a tensor of rank 0 or 1 with a compile-time length.
type ExtractOp struct {
	// Arr is the array value the element is read from.
	Arr Value
	// Index of the element. An extract from a scalar reads index 0.
	Index int

	res *Result
}

var _ Op = (*ExtractOp)(nil)

func (*ExtractOp) op() {}

// OpName returns the mnemonic of the op.
func (*ExtractOp) OpName() string { return "extract" }

// Operands returns the values the op reads.
func (op *ExtractOp) Operands() []Value { return []Value{op.Arr} }

// Result returns the value computed by the op.
func (op *ExtractOp) Result() Value { return op.res }

// Verify returns an error if the op violates one of its invariants.
func (op *ExtractOp) Verify() error {
	if op.Arr == nil {
		return errors.Errorf("extract has no array operand")
	}
	typ, ok := op.Arr.Type().(*TensorType)
	if !ok {
		return errors.Errorf("extract operand has type %s: want a tensor", op.Arr.Type().String())
	}
	if typ.Rank() > 1 {
		return errors.Errorf("extract operand has rank %d: want a scalar or a tensor with one axis", typ.Rank())
	}
	size := int64(1)
	if typ.Rank() == 1 {
		size = typ.Dim(0)
		if size == DynamicSize {
			return errors.Errorf("extract from %s: the array length is not known at compile time", typ.String())
		}
	}
	if op.Index < 0 || int64(op.Index) >= size {
		return errors.Errorf("extract element %d out of range for %s", op.Index, typ.String())
	}
	return nil
}
