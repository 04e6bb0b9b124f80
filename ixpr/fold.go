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

package ixpr

import "fmt"

// fold returns the literal f(x, y) when both operands are known at
// compile time and a question mark otherwise. An undefined operand is
// a caller bug.
func fold(name string, x, y IndexExpr, f func(a, b int64) int64) IndexExpr {
	if x.IsUndefined() || y.IsUndefined() {
		panic(fmt.Sprintf("%s with an undefined operand", name))
	}
	if !x.IsLiteral() || !y.IsLiteral() {
		return NewQuestionmark()
	}
	return NewLiteral(f(x.lit, y.lit))
}

func checkDivisor(name string, y IndexExpr) {
	if y.IsLiteral() && y.lit == 0 {
		panic(fmt.Sprintf("%s by zero", name))
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// Add returns the sum of e and other as a literal when both operands
// are known at compile time, and a question mark otherwise. Add panics
// on an undefined operand.
func (e IndexExpr) Add(other IndexExpr) IndexExpr {
	return fold("add", e, other, func(a, b int64) int64 { return a + b })
}

// Sub returns the difference of e and other. Same folding rules as Add.
func (e IndexExpr) Sub(other IndexExpr) IndexExpr {
	return fold("sub", e, other, func(a, b int64) int64 { return a - b })
}

// Mul returns the product of e and other. Same folding rules as Add.
func (e IndexExpr) Mul(other IndexExpr) IndexExpr {
	return fold("mul", e, other, func(a, b int64) int64 { return a * b })
}

// FloorDiv returns the quotient of the division of e by other, rounded
// toward negative infinity. Same folding rules as Add. FloorDiv panics
// when other is the literal zero.
func (e IndexExpr) FloorDiv(other IndexExpr) IndexExpr {
	checkDivisor("floordiv", other)
	return fold("floordiv", e, other, floorDiv)
}

// CeilDiv returns the quotient of the division of e by other, rounded
// toward positive infinity. Same folding rules as Add. CeilDiv panics
// when other is the literal zero.
func (e IndexExpr) CeilDiv(other IndexExpr) IndexExpr {
	checkDivisor("ceildiv", other)
	return fold("ceildiv", e, other, ceilDiv)
}

// Rem returns the remainder of the floor division of e by other. The
// remainder is zero or has the sign of the divisor. Same folding rules
// as Add. Rem panics when other is the literal zero.
func (e IndexExpr) Rem(other IndexExpr) IndexExpr {
	checkDivisor("rem", other)
	return fold("rem", e, other, func(a, b int64) int64 {
		return a - b*floorDiv(a, b)
	})
}

// Min returns the smaller of e and other. Same folding rules as Add.
func (e IndexExpr) Min(other IndexExpr) IndexExpr {
	return fold("min", e, other, func(a, b int64) int64 { return min(a, b) })
}

// Max returns the larger of e and other. Same folding rules as Add.
func (e IndexExpr) Max(other IndexExpr) IndexExpr {
	return fold("max", e, other, func(a, b int64) int64 { return max(a, b) })
}

// Clamp returns e constrained to the interval [lo, hi].
func (e IndexExpr) Clamp(lo, hi IndexExpr) IndexExpr {
	return e.Max(lo).Min(hi)
}
