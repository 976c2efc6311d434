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

// Package fp provides the modular-integer plug-in field of a fixed prime
// modulus.  Elements are held reduced in [0, Modulus).
package fp

import (
	"fmt"

	"github.com/Phibonoci/Groebner-Basis/pkg/util/math"
)

// Modulus is the prime order of the field.
const Modulus uint64 = 1_000_000_007

// Element of the prime field of order Modulus.  The zero value represents
// zero.
type Element struct {
	value uint64
}

// New constructs the element representing val modulo Modulus.
func New(val int64) Element {
	m := int64(Modulus)
	//
	return Element{uint64((val%m + m) % m)}
}

// Uint64 returns the canonical representative in [0, Modulus).
func (x Element) Uint64() uint64 {
	return x.value
}

// Add x + y
func (x Element) Add(y Element) Element {
	return Element{(x.value + y.value) % Modulus}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return Element{(x.value + Modulus - y.value) % Modulus}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{(x.value * y.value) % Modulus}
}

// Neg -x
func (x Element) Neg() Element {
	return Element{(Modulus - x.value) % Modulus}
}

// Inverse computes x⁻¹ by Fermat's little theorem.  The receiver must be
// non-zero.
func (x Element) Inverse() Element {
	return Element{math.PowMod(x.value, Modulus-2, Modulus)}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y, comparing canonical
// representatives.
func (x Element) Cmp(y Element) int {
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether this element is zero.
func (x Element) IsZero() bool {
	return x.value == 0
}

// IsOne reports whether this element is one.
func (x Element) IsOne() bool {
	return x.value == 1
}

// SetUint64 returns the element representing the given integer.
func (x Element) SetUint64(val uint64) Element {
	return Element{val % Modulus}
}

// String returns the canonical representative in decimal.
func (x Element) String() string {
	return fmt.Sprintf("%d", x.value)
}
