// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package checked

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is the value carried by the panic raised whenever a checked
// operation would escape the representable range of its operand type.
// Escaping the range is treated as a defect of the calling code, hence a
// panic rather than an error return.
var ErrOverflow = errors.New("checked: integer overflow detected")

// Int wraps a fixed-width machine integer such that every arithmetic
// operation detects (rather than silently wraps on) overflow.  The zero
// value represents zero.
type Int[T constraints.Integer] struct {
	value T
}

// New constructs a checked integer holding the given value.
func New[T constraints.Integer](value T) Int[T] {
	return Int[T]{value}
}

// MinOf returns the smallest value representable by T.
func MinOf[T constraints.Integer]() T {
	var zero T
	// Unsigned types have no values below zero.
	if ^zero > zero {
		return 0
	}
	// Signed: double downwards until the width is exhausted.
	min := zero - 1
	//
	for m := min << 1; m < min; m <<= 1 {
		min = m
	}
	//
	return min
}

// MaxOf returns the largest value representable by T.
func MaxOf[T constraints.Integer]() T {
	var zero T
	//
	if ^zero > zero {
		return ^zero
	}
	//
	return ^MinOf[T]()
}

// NegOverflows reports whether negating value would escape the range of T.
// Using offset = max + min, negation overflows exactly on the extreme value
// which has no representable mirror image.
func NegOverflows[T constraints.Integer](value T) bool {
	var (
		min    = MinOf[T]()
		max    = MaxOf[T]()
		offset = max + min
	)
	//
	if offset < 0 && value == min {
		return true
	}
	//
	return offset > 0 && value == max
}

// AddOverflows reports whether lhs + rhs would escape the range of T.
func AddOverflows[T constraints.Integer](lhs, rhs T) bool {
	if rhs > 0 && lhs > MaxOf[T]()-rhs {
		return true
	}
	//
	return rhs < 0 && lhs < MinOf[T]()-rhs
}

// SubOverflows reports whether lhs - rhs would escape the range of T.
func SubOverflows[T constraints.Integer](lhs, rhs T) bool {
	if rhs < 0 && lhs > MaxOf[T]()+rhs {
		return true
	}
	//
	return rhs > 0 && lhs < MinOf[T]()+rhs
}

// MulOverflows reports whether lhs * rhs would escape the range of T.
func MulOverflows[T constraints.Integer](lhs, rhs T) bool {
	var (
		min      = MinOf[T]()
		max      = MaxOf[T]()
		offset   = max + min
		minusOne T
	)
	//
	minusOne--
	// Zero operands never overflow.
	if lhs == 0 || rhs == 0 {
		return false
	}
	// On asymmetric ranges, -1 times the extreme value is the one corner the
	// general division test below cannot see.
	if offset > 0 {
		if (rhs == minusOne && lhs == max) || (rhs == max && lhs == minusOne) {
			return true
		}
	} else if offset < 0 {
		if (rhs == minusOne && lhs == min) || (rhs == min && lhs == minusOne) {
			return true
		}
	}
	// General case: compare lhs against the bound divided by rhs, picking the
	// bound by the sign of the result.
	if lhs < 0 {
		if rhs < 0 {
			return lhs < max/rhs
		}
		//
		return lhs < min/rhs
	}
	//
	if rhs < 0 {
		// A positive value times -1 always fits, while min/-1 would wrap.
		return rhs != minusOne && lhs > min/rhs
	}
	//
	return lhs > max/rhs
}

// DivOverflows reports whether lhs / rhs would escape the range of T.  This
// covers division by zero together with the -1 times extreme corner of
// asymmetric ranges.
func DivOverflows[T constraints.Integer](lhs, rhs T) bool {
	var (
		min      = MinOf[T]()
		max      = MaxOf[T]()
		offset   = max + min
		minusOne T
	)
	//
	minusOne--
	//
	if rhs == 0 {
		return true
	}
	//
	// Only the extreme value divided by -1 escapes; unsigned types have no -1.
	if offset > 0 {
		return minusOne < 0 && lhs == max && rhs == minusOne
	} else if offset < 0 {
		return lhs == min && rhs == minusOne
	}
	//
	return false
}

// Value returns the wrapped machine integer.
func (x Int[T]) Value() T {
	return x.value
}

// IsZero reports whether this value is zero.
func (x Int[T]) IsZero() bool {
	return x.value == 0
}

// IsNegative reports whether this value is below zero.
func (x Int[T]) IsNegative() bool {
	return x.value < 0
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Int[T]) Cmp(y Int[T]) int {
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return 1
	default:
		return 0
	}
}

// Neg returns -x, panicking with ErrOverflow when -x is not representable.
func (x Int[T]) Neg() Int[T] {
	if NegOverflows(x.value) {
		panic(ErrOverflow)
	}
	//
	var zero T
	//
	return Int[T]{zero - x.value}
}

// Add returns x + y, panicking with ErrOverflow when the sum escapes T.
func (x Int[T]) Add(y Int[T]) Int[T] {
	if AddOverflows(x.value, y.value) {
		panic(ErrOverflow)
	}
	//
	return Int[T]{x.value + y.value}
}

// Sub returns x - y, panicking with ErrOverflow when the difference escapes T.
func (x Int[T]) Sub(y Int[T]) Int[T] {
	if SubOverflows(x.value, y.value) {
		panic(ErrOverflow)
	}
	//
	return Int[T]{x.value - y.value}
}

// Mul returns x * y, panicking with ErrOverflow when the product escapes T.
func (x Int[T]) Mul(y Int[T]) Int[T] {
	if MulOverflows(x.value, y.value) {
		panic(ErrOverflow)
	}
	//
	return Int[T]{x.value * y.value}
}

// Div returns x / y, panicking with ErrOverflow when y is zero or when the
// quotient escapes T.
func (x Int[T]) Div(y Int[T]) Int[T] {
	if DivOverflows(x.value, y.value) {
		panic(ErrOverflow)
	}
	//
	return Int[T]{x.value / y.value}
}

// String returns the decimal rendering of the wrapped value.
func (x Int[T]) String() string {
	return fmt.Sprintf("%d", x.value)
}

// Gcd returns the greatest common divisor of a and b, with Gcd(0, 0) = 0.
// The result is non-negative except when it equals the unrepresentable
// magnitude of the minimum value, in which case negation panics.
func Gcd[T constraints.Integer](a, b Int[T]) Int[T] {
	x, y := a.value, b.value
	//
	for y != 0 {
		x, y = y, x%y
	}
	//
	if x < 0 {
		return Int[T]{x}.Neg()
	}
	//
	return Int[T]{x}
}

// Lcm returns the least common multiple of a and b.  The quotient is taken
// before the product to keep the intermediate within range.  At least one of
// a and b must be non-zero.
func Lcm[T constraints.Integer](a, b Int[T]) Int[T] {
	return a.Div(Gcd(a, b)).Mul(b)
}
