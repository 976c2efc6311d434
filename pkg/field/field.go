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
	"fmt"
)

// An Element of a field of coefficients.  A type provides the field when its
// four arithmetic operations are closed over it, it has both identities, and
// it can decide equality with zero.  All operations are by value; no method
// mutates its receiver.
type Element[F any] interface {
	fmt.Stringer
	// Add x + y
	Add(y F) F
	// Sub x - y
	Sub(y F) F
	// Mul x * y
	Mul(y F) F
	// Neg -x
	Neg() F
	// Inverse computes x⁻¹.  The receiver must be non-zero.
	Inverse() F
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y F) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// SetUint64 returns the field element representing the given integer.
	SetUint64(uint64) F
}

// Zero constructs the field element representing 0.
func Zero[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(0)
}

// One constructs the field element representing 1.
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 constructs the field element representing a given uint64.
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Div computes x / y.  The divisor must be non-zero.
func Div[F Element[F]](x F, y F) F {
	return x.Mul(y.Inverse())
}
