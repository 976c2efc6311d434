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
package poly

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/Phibonoci/Groebner-Basis/pkg/util/checked"
)

// ErrIndivisibleMonomial signals a monomial division whose dividend has a
// smaller exponent than the divisor on some variable.
var ErrIndivisibleMonomial = errors.New("poly: monomial not divisible")

// Degree is the exponent type carried by monomials.  Degree arithmetic is
// overflow-checked.
type Degree = checked.Int[uint64]

// Monomial is a product of indexed variables with non-negative exponents.
// It carries no coefficient.  The exponent vector is kept free of trailing
// zeros: the last stored exponent is non-zero whenever any is stored at all.
// The zero value is the unit monomial 1.
type Monomial struct {
	degrees []Degree
}

// NewMonomial constructs a monomial from the exponents of variables
// x_0, x_1, ... in order.  Trailing zeros are stripped.
func NewMonomial(degrees ...uint64) Monomial {
	wrapped := make([]Degree, len(degrees))
	//
	for i, d := range degrees {
		wrapped[i] = checked.New(d)
	}
	//
	return Monomial{wrapped}.shrink()
}

// shrink strips trailing zero exponents, re-establishing the representation
// invariant.
func (m Monomial) shrink() Monomial {
	n := len(m.degrees)
	//
	for n > 0 && m.degrees[n-1].IsZero() {
		n--
	}
	//
	m.degrees = m.degrees[:n:n]
	//
	return m
}

// Vars returns the number of stored exponents, i.e. one past the index of
// the highest variable occurring in this monomial.
func (m Monomial) Vars() uint {
	return uint(len(m.degrees))
}

// Degree returns the exponent of the ith variable, with virtual zeros past
// the stored vector.
func (m Monomial) Degree(i uint) uint64 {
	if i < uint(len(m.degrees)) {
		return m.degrees[i].Value()
	}
	//
	return 0
}

// TotalDeg returns the sum of all exponents.
func (m Monomial) TotalDeg() uint64 {
	sum := checked.New[uint64](0)
	//
	for _, d := range m.degrees {
		sum = sum.Add(d)
	}
	//
	return sum.Value()
}

// IsUnit reports whether this monomial is the unit monomial 1.
func (m Monomial) IsUnit() bool {
	return len(m.degrees) == 0
}

// WithDegree returns a copy of this monomial whose ith exponent is replaced
// by the given degree.
func (m Monomial) WithDegree(i uint, degree uint64) Monomial {
	n := max(uint(len(m.degrees)), i+1)
	degrees := make([]Degree, n)
	copy(degrees, m.degrees)
	degrees[i] = checked.New(degree)
	//
	return Monomial{degrees}.shrink()
}

// Mul returns the product of this monomial and another, adding exponents
// element-wise.
func (m Monomial) Mul(other Monomial) Monomial {
	n := max(len(m.degrees), len(other.degrees))
	degrees := make([]Degree, n)
	copy(degrees, m.degrees)
	//
	for i, d := range other.degrees {
		degrees[i] = degrees[i].Add(d)
	}
	//
	return Monomial{degrees}.shrink()
}

// IsDivisibleBy reports whether every exponent of other is bounded by the
// matching exponent of this monomial.  The unit monomial divides everything.
func (m Monomial) IsDivisibleBy(other Monomial) bool {
	if len(other.degrees) > len(m.degrees) {
		return false
	}
	//
	for i, d := range other.degrees {
		if d.Value() > m.degrees[i].Value() {
			return false
		}
	}
	//
	return true
}

// Div returns the quotient of this monomial by another, subtracting
// exponents element-wise.  Returns ErrIndivisibleMonomial when other does
// not divide this monomial.
func (m Monomial) Div(other Monomial) (Monomial, error) {
	if !m.IsDivisibleBy(other) {
		return Monomial{}, fmt.Errorf("%s / %s: %w", m, other, ErrIndivisibleMonomial)
	}
	//
	degrees := slices.Clone(m.degrees)
	//
	for i, d := range other.degrees {
		degrees[i] = degrees[i].Sub(d)
	}
	//
	return Monomial{degrees}.shrink(), nil
}

// Lcm returns the least common multiple of two monomials, taking exponents
// element-wise to their maximum.
func Lcm(a, b Monomial) Monomial {
	n := max(len(a.degrees), len(b.degrees))
	degrees := make([]Degree, n)
	copy(degrees, a.degrees)
	//
	for i, d := range b.degrees {
		if d.Value() > degrees[i].Value() {
			degrees[i] = d
		}
	}
	//
	return Monomial{degrees}.shrink()
}

// Equal reports whether two monomials have identical exponent vectors.
func (m Monomial) Equal(other Monomial) bool {
	if len(m.degrees) != len(other.degrees) {
		return false
	}
	//
	for i, d := range m.degrees {
		if d.Value() != other.degrees[i].Value() {
			return false
		}
	}
	//
	return true
}

// String renders the monomial as (x_0^2 * x_2), eliding exponent one and
// skipping variables of exponent zero.  The unit monomial renders as ().
func (m Monomial) String() string {
	var (
		buf   bytes.Buffer
		first = true
	)
	//
	buf.WriteString("(")
	//
	for i, d := range m.degrees {
		if d.IsZero() {
			continue
		}
		//
		if !first {
			buf.WriteString(" * ")
		}
		//
		if d.Value() == 1 {
			fmt.Fprintf(&buf, "x_%d", i)
		} else {
			fmt.Fprintf(&buf, "x_%d^%d", i, d.Value())
		}
		//
		first = false
	}
	//
	buf.WriteString(")")
	//
	return buf.String()
}
