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

// Package ixpr defines index expressions, the scalar quantities used in
// tensor shape and loop bound computations. Such a quantity is only
// sometimes known at compile time: an index expression is a literal
// integer, a handle to the runtime computation producing the value, or
// a question mark when no handle is available. Expressions are
// extracted from the host IR by package ixbuild.
package ixpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/gx-org/indexexpr/ir"
)

// Kind of an index expression.
type Kind uint8

// Kinds of index expressions.
const (
	// Undefined marks a missing expression, for example an element
	// read beyond the size of an array. It is the zero value.
	Undefined Kind = iota
	// Literal is a value known at compile time.
	Literal
	// Symbol is a value known only at runtime, carrying a handle to
	// the computation producing it. The handle can be used in any
	// expression context.
	Symbol
	// Dim is a Symbol whose handle is restricted to axis length and
	// loop bound contexts.
	Dim
	// Questionmark is a value known only at runtime for which no
	// handle is available.
	Questionmark
)

// String representation of a kind.
func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Literal:
		return "literal"
	case Symbol:
		return "symbol"
	case Dim:
		return "dim"
	case Questionmark:
		return "questionmark"
	}
	return "invalid"
}

// Provenance localises the array element or the axis that a question
// mark stands for. It is a diagnostic hint and carries no ownership of
// the source value.
type Provenance struct {
	// Source is the value the question mark was extracted from.
	Source ir.Value
	// Index of the element or of the axis within Source.
	Index int
}

// IndexExpr is a scalar quantity used in shape computations. Exactly
// one kind is active; the kind tells how much of the quantity is known
// at compile time. The zero value is the Undefined sentinel.
type IndexExpr struct {
	kind Kind
	lit  int64
	val  ir.Value
	prov Provenance
}

// NewUndefined returns the sentinel marking a missing expression.
func NewUndefined() IndexExpr {
	return IndexExpr{}
}

// NewLiteral returns the expression of a value known at compile time.
func NewLiteral(v int64) IndexExpr {
	return IndexExpr{kind: Literal, lit: v}
}

// NewSymbol returns the expression of a runtime value usable in any
// expression context. NewSymbol panics when val is nil.
func NewSymbol(val ir.Value) IndexExpr {
	if val == nil {
		panic("symbol index expression with no runtime handle")
	}
	return IndexExpr{kind: Symbol, val: val}
}

// NewDim returns the expression of a runtime value usable only as an
// axis length or a loop bound. NewDim panics when val is nil.
func NewDim(val ir.Value) IndexExpr {
	if val == nil {
		panic("dim index expression with no runtime handle")
	}
	return IndexExpr{kind: Dim, val: val}
}

// NewQuestionmark returns the expression of a runtime value for which
// no handle is available.
func NewQuestionmark() IndexExpr {
	return IndexExpr{kind: Questionmark}
}

// QuestionmarkAt returns a question mark remembering which element or
// axis of src it stands for. QuestionmarkAt panics when src is nil.
func QuestionmarkAt(src ir.Value, i int) IndexExpr {
	if src == nil {
		panic("question mark provenance with no source value")
	}
	return IndexExpr{kind: Questionmark, prov: Provenance{Source: src, Index: i}}
}

// Kind of the expression.
func (e IndexExpr) Kind() Kind { return e.kind }

// IsUndefined returns true for the missing-expression sentinel.
func (e IndexExpr) IsUndefined() bool { return e.kind == Undefined }

// IsDefined returns true for every expression but the sentinel.
func (e IndexExpr) IsDefined() bool { return e.kind != Undefined }

// IsLiteral returns true if the value is known at compile time.
func (e IndexExpr) IsLiteral() bool { return e.kind == Literal }

// IsSymbol returns true if the expression is a general-purpose runtime
// handle.
func (e IndexExpr) IsSymbol() bool { return e.kind == Symbol }

// IsDim returns true if the expression is a runtime handle restricted
// to axis length and loop bound contexts.
func (e IndexExpr) IsDim() bool { return e.kind == Dim }

// IsQuestionmark returns true if the value is unknown and no handle is
// available.
func (e IndexExpr) IsQuestionmark() bool { return e.kind == Questionmark }

// HasValue returns true if the expression carries a runtime handle.
func (e IndexExpr) HasValue() bool { return e.kind == Symbol || e.kind == Dim }

// Literal returns the compile-time value of the expression. Literal
// panics when the kind is not Literal: a literal is authoritative and
// is never recomputed from a runtime handle.
func (e IndexExpr) Literal() int64 {
	if e.kind != Literal {
		panic(fmt.Sprintf("reading the literal of a %s expression", e.kind.String()))
	}
	return e.lit
}

// Value returns the runtime handle of the expression. Value panics
// when the expression carries none.
func (e IndexExpr) Value() ir.Value {
	if !e.HasValue() {
		panic(fmt.Sprintf("reading the runtime handle of a %s expression", e.kind.String()))
	}
	return e.val
}

// Provenance returns the diagnostic hint of a question mark, and true
// when one is attached.
func (e IndexExpr) Provenance() (Provenance, bool) {
	return e.prov, e.prov.Source != nil
}

// Equal returns true if other is structurally the same expression.
// Runtime handles are compared by identity.
func (e IndexExpr) Equal(other IndexExpr) bool {
	if e.kind != other.kind {
		return false
	}
	switch e.kind {
	case Literal:
		return e.lit == other.lit
	case Symbol, Dim:
		return e.val == other.val
	case Questionmark:
		return e.prov == other.prov
	}
	return true
}

// String representation of the expression.
func (e IndexExpr) String() string {
	switch e.kind {
	case Literal:
		return strconv.FormatInt(e.lit, 10)
	case Symbol:
		return "sym(" + e.val.String() + ")"
	case Dim:
		return "dim(" + e.val.String() + ")"
	case Questionmark:
		if e.prov.Source != nil {
			return fmt.Sprintf("?(%s:%d)", e.prov.Source.String(), e.prov.Index)
		}
		return "?"
	}
	return "undef"
}

// List is an ordered sequence of index expressions. The position of an
// expression is meaningful, typically mapping to an array index or to
// an axis, and is never reordered.
type List []IndexExpr

// AllLiteral returns true if every expression of the list is a value
// known at compile time.
func (l List) AllLiteral() bool {
	for _, e := range l {
		if !e.IsLiteral() {
			return false
		}
	}
	return true
}

// Literals returns the compile-time values of the list. Returns an
// error on the first expression with no compile-time value.
func (l List) Literals() ([]int64, error) {
	vals := make([]int64, len(l))
	for i, e := range l {
		if !e.IsLiteral() {
			return nil, errors.Errorf("expression %d (%s) has no compile-time value", i, e.String())
		}
		vals[i] = e.Literal()
	}
	return vals, nil
}

// String representation of the list.
func (l List) String() string {
	ss := make([]string, len(l))
	for i, e := range l {
		ss[i] = e.String()
	}
	return "[" + strings.Join(ss, ", ") + "]"
}
