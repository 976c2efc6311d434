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
package field

import (
	"errors"
	"fmt"

	"github.com/Phibonoci/Groebner-Basis/pkg/util/checked"
)

// ErrDivideByZero signals a division by a zero rational, or the construction
// of a rational with a zero denominator.
var ErrDivideByZero = errors.New("field: divide by zero")

// Rational is a reduced fraction of checked 64-bit integers.  Two invariants
// hold after every operation: the denominator is strictly positive, and the
// numerator and denominator are coprime.  The zero value represents zero.
type Rational struct {
	num, den checked.Int[int64]
}

// NewRational constructs the rational num/den.  Returns ErrDivideByZero when
// den is zero.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%d/%d: %w", num, den, ErrDivideByZero)
	}
	//
	r := Rational{checked.New(num), checked.New(den)}
	//
	return r.reduced(), nil
}

// Rat constructs the rational num/den, panicking when den is zero.  This is
// a convenience for literal fractions whose denominator is known non-zero.
func Rat(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}
	//
	return r
}

// FromInt constructs the rational val/1.
func FromInt(val int64) Rational {
	return Rational{checked.New(val), checked.New[int64](1)}
}

// fix maps the zero value (0, 0) onto the canonical zero (0, 1), so that the
// zero value of the struct behaves as the rational zero.
func (x Rational) fix() Rational {
	if x.den.IsZero() {
		x.den = checked.New[int64](1)
	}
	//
	return x
}

// reduced re-establishes the invariants: flip signs when the denominator is
// negative, then divide both parts by their gcd.
func (x Rational) reduced() Rational {
	x = x.fix()
	//
	if x.den.IsNegative() {
		x.num = x.num.Neg()
		x.den = x.den.Neg()
	}
	//
	g := checked.Gcd(x.num, x.den)
	x.num = x.num.Div(g)
	x.den = x.den.Div(g)
	//
	return x
}

// Numerator returns the numerator of this rational in reduced form.
func (x Rational) Numerator() int64 {
	return x.reduced().num.Value()
}

// Denominator returns the (positive) denominator of this rational in reduced
// form.
func (x Rational) Denominator() int64 {
	return x.reduced().den.Value()
}

// Add x + y.  The denominators are brought to their lcm to keep the
// intermediates small.
func (x Rational) Add(y Rational) Rational {
	x, y = x.fix(), y.fix()
	//
	l := checked.Lcm(x.den, y.den)
	n := x.num.Mul(l.Div(x.den)).Add(y.num.Mul(l.Div(y.den)))
	//
	return Rational{n, l}.reduced()
}

// Sub x - y.
func (x Rational) Sub(y Rational) Rational {
	x, y = x.fix(), y.fix()
	//
	l := checked.Lcm(x.den, y.den)
	n := x.num.Mul(l.Div(x.den)).Sub(y.num.Mul(l.Div(y.den)))
	//
	return Rational{n, l}.reduced()
}

// Mul x * y.
func (x Rational) Mul(y Rational) Rational {
	x, y = x.fix(), y.fix()
	//
	return Rational{x.num.Mul(y.num), x.den.Mul(y.den)}.reduced()
}

// Div x / y.  Returns ErrDivideByZero when y is zero.
func (x Rational) Div(y Rational) (Rational, error) {
	inv, err := y.Inverted()
	if err != nil {
		return Rational{}, err
	}
	//
	return x.Mul(inv), nil
}

// Neg -x.
func (x Rational) Neg() Rational {
	x = x.fix()
	x.num = x.num.Neg()
	//
	return x.reduced()
}

// Inverted returns 1/x, or ErrDivideByZero when x is zero.
func (x Rational) Inverted() (Rational, error) {
	x = x.fix()
	//
	if x.num.IsZero() {
		return Rational{}, fmt.Errorf("inverting zero: %w", ErrDivideByZero)
	}
	//
	return Rational{x.den, x.num}.reduced(), nil
}

// Inverse computes x⁻¹.  The receiver must be non-zero; inverting zero is a
// defect of the calling code and panics with ErrDivideByZero.
func (x Rational) Inverse() Rational {
	inv, err := x.Inverted()
	if err != nil {
		panic(err)
	}
	//
	return inv
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.  Both operands are
// re-normalized first, so differently constructed representations of the same
// value compare equal.
func (x Rational) Cmp(y Rational) int {
	x, y = x.reduced(), y.reduced()
	//
	l := checked.Lcm(x.den, y.den)
	a := x.num.Mul(l.Div(x.den))
	b := y.num.Mul(l.Div(y.den))
	//
	return a.Cmp(b)
}

// IsZero reports whether this rational is zero.
func (x Rational) IsZero() bool {
	return x.num.IsZero()
}

// IsOne reports whether this rational is one.
func (x Rational) IsOne() bool {
	x = x.reduced()
	//
	return x.num.Value() == 1 && x.den.Value() == 1
}

// SetUint64 returns the rational representing the given integer.
func (x Rational) SetUint64(val uint64) Rational {
	if val > uint64(checked.MaxOf[int64]()) {
		panic(checked.ErrOverflow)
	}
	//
	return FromInt(int64(val))
}

// Float64 returns the quotient of numerator and denominator as a float64,
// with no guarantee beyond rounding.
func (x Rational) Float64() float64 {
	x = x.fix()
	//
	return float64(x.num.Value()) / float64(x.den.Value())
}

// String renders the numerator alone when the denominator is one, and n/d
// otherwise.
func (x Rational) String() string {
	x = x.reduced()
	//
	if x.den.Value() == 1 {
		return fmt.Sprintf("%d", x.num.Value())
	}
	//
	return fmt.Sprintf("%d/%d", x.num.Value(), x.den.Value())
}
