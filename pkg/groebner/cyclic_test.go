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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
	"github.com/Phibonoci/Groebner-Basis/pkg/poly"
)

func Test_ElementarySymmetric(t *testing.T) {
	// e_1 = x + y + z
	e1 := ElementarySymmetric[field.Rational, poly.Lex](1, 3)
	assert.True(t, e1.Equal(mkPoly(term(1, 1), term(1, 0, 1), term(1, 0, 0, 1))))
	// e_2 = x*y + x*z + y*z
	e2 := ElementarySymmetric[field.Rational, poly.Lex](2, 3)
	assert.True(t, e2.Equal(mkPoly(term(1, 1, 1), term(1, 1, 0, 1), term(1, 0, 1, 1))))
	// e_3 = x*y*z
	e3 := ElementarySymmetric[field.Rational, poly.Lex](3, 3)
	assert.True(t, e3.Equal(mkPoly(term(1, 1, 1, 1))))
	// Asking for more variables than available yields zero
	assert.True(t, ElementarySymmetric[field.Rational, poly.Lex](4, 3).IsZero())
}

func Test_CycleSet(t *testing.T) {
	set := CycleSet[field.Rational, poly.Lex](2)
	//
	require.Equal(t, uint(2), set.Len())
	assert.True(t, set.Contains(mkPoly(term(1, 1), term(1, 0, 1))))
	// The last generator always carries the constant -1
	assert.True(t, set.Contains(mkPoly(term(1, 1, 1), term(-1))))
}

func Test_Buchberger_Cyclic3(t *testing.T) {
	seed := CycleSet[field.Rational, poly.Lex](3)
	//
	basis := Buchberger(seed)
	//
	assert.True(t, IsGroebnerBasis(basis))
	//
	for f := range seed.All() {
		assert.True(t, Reduce(f, basis).IsZero(), "generator %s does not reduce to zero", f)
	}
}
