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

import "cmp"

// Ordering is a stateless total order over monomials.  Orderings are carried
// as type parameters of Polynomial, so implementations must be usable as
// their zero value.
type Ordering interface {
	// Cmp returns a negative value when lhs precedes rhs, zero when they are
	// equal, and a positive value otherwise.
	Cmp(lhs, rhs Monomial) int
}

// Lex is the lexicographical order: exponent vectors are compared
// left-to-right, padded with virtual zeros on the right.
type Lex struct{}

// Cmp implementation for the Ordering interface.
func (Lex) Cmp(lhs, rhs Monomial) int {
	n := max(lhs.Vars(), rhs.Vars())
	//
	for i := uint(0); i < n; i++ {
		if c := cmp.Compare(lhs.Degree(i), rhs.Degree(i)); c != 0 {
			return c
		}
	}
	//
	return 0
}

// RevLex is the reverse lexicographical order, i.e. Lex with its operands
// swapped.
type RevLex struct{}

// Cmp implementation for the Ordering interface.
func (RevLex) Cmp(lhs, rhs Monomial) int {
	var lex Lex
	//
	return lex.Cmp(rhs, lhs)
}

// GrLex is the graded lexicographical order: total degrees compare first,
// ties break by Lex.
type GrLex struct{}

// Cmp implementation for the Ordering interface.
func (GrLex) Cmp(lhs, rhs Monomial) int {
	if c := cmp.Compare(lhs.TotalDeg(), rhs.TotalDeg()); c != 0 {
		return c
	}
	//
	var lex Lex
	//
	return lex.Cmp(lhs, rhs)
}

// GrevLex is the graded reverse lexicographical order: total degrees compare
// first, ties break by RevLex.
type GrevLex struct{}

// Cmp implementation for the Ordering interface.
func (GrevLex) Cmp(lhs, rhs Monomial) int {
	if c := cmp.Compare(lhs.TotalDeg(), rhs.TotalDeg()); c != 0 {
		return c
	}
	//
	var revlex RevLex
	//
	return revlex.Cmp(lhs, rhs)
}
