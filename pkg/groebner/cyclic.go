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
package groebner

import (
	"github.com/Phibonoci/Groebner-Basis/pkg/field"
	"github.com/Phibonoci/Groebner-Basis/pkg/poly"
)

// buildSymmetric accumulates into f every squarefree monomial over variables
// [index, bound) with exactly remain variables of degree one, extending the
// partial monomial m.
func buildSymmetric[F field.Element[F], O poly.Ordering](index, remain, bound uint,
	m poly.Monomial, f *poly.Polynomial[F, O]) {
	//
	if remain == 0 {
		f.AddInPlace(poly.FromMonomial[F, O](m))
		return
	}
	//
	if index == bound {
		return
	}
	// Take the variable at index, then skip it.
	buildSymmetric(index+1, remain-1, bound, m.WithDegree(index, 1), f)
	buildSymmetric(index+1, remain, bound, m, f)
}

// ElementarySymmetric builds the nth elementary symmetric polynomial in m
// variables: the sum of all squarefree monomials of total degree n.
func ElementarySymmetric[F field.Element[F], O poly.Ordering](n, m uint) poly.Polynomial[F, O] {
	var f poly.Polynomial[F, O]
	//
	buildSymmetric(0, n, m, poly.Monomial{}, &f)
	//
	return f
}

// CycleSet builds the cyclic-m ideal generators {e_1, ..., e_{m-1}, e_m - 1}
// over m variables, where e_n is the nth elementary symmetric polynomial.
func CycleSet[F field.Element[F], O poly.Ordering](m uint) poly.Set[F, O] {
	var set poly.Set[F, O]
	//
	for n := uint(1); n <= m; n++ {
		f := ElementarySymmetric[F, O](n, m)
		//
		if n == m {
			f.AddInPlace(poly.Constant[F, O](field.One[F]().Neg()))
		}
		//
		set.Insert(f)
	}
	//
	return set
}
