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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func Test_Order_Lex(t *testing.T) {
	var lex Lex
	//
	assert.Positive(t, lex.Cmp(NewMonomial(2), NewMonomial(1, 9, 9)))
	assert.Negative(t, lex.Cmp(NewMonomial(1, 2), NewMonomial(1, 3)))
	// Padding with virtual zeros
	assert.Equal(t, 0, lex.Cmp(NewMonomial(1, 2), NewMonomial(1, 2, 0)))
	assert.Negative(t, lex.Cmp(NewMonomial(), NewMonomial(0, 0, 1)))
}

func Test_Order_RevLex(t *testing.T) {
	var (
		lex    Lex
		revlex RevLex
	)
	// RevLex is Lex with its operands swapped
	pairs := [][2]Monomial{
		{NewMonomial(2), NewMonomial(1, 9, 9)},
		{NewMonomial(1, 2), NewMonomial(1, 3)},
		{NewMonomial(), NewMonomial(1)},
	}
	//
	for _, p := range pairs {
		assert.Equal(t, lex.Cmp(p[1], p[0]), revlex.Cmp(p[0], p[1]))
	}
}

func Test_Order_Graded(t *testing.T) {
	var (
		grlex   GrLex
		grevlex GrevLex
	)
	// Total degree dominates
	assert.Negative(t, grlex.Cmp(NewMonomial(3), NewMonomial(1, 1, 2)))
	assert.Negative(t, grevlex.Cmp(NewMonomial(3), NewMonomial(1, 1, 2)))
	// Equal degree: ties break by Lex under GrLex and by RevLex under GrevLex
	assert.Positive(t, grlex.Cmp(NewMonomial(2, 1), NewMonomial(1, 2)))
	assert.Negative(t, grevlex.Cmp(NewMonomial(2, 1), NewMonomial(1, 2)))
}

// Leading monomial of the same term set under two different orders.
func Test_Order_LeadingMonomial(t *testing.T) {
	monomials := []Monomial{
		NewMonomial(1, 2, 3),
		NewMonomial(1, 2, 4),
		NewMonomial(2, 2, 2),
		NewMonomial(6, 0, 0),
	}
	//
	assert.True(t, largest[Lex](monomials).Equal(NewMonomial(6, 0, 0)))
	assert.True(t, largest[GrLex](monomials).Equal(NewMonomial(1, 2, 4)))
}

func largest[O Ordering](monomials []Monomial) Monomial {
	var (
		ord O
		top = monomials[0]
	)
	//
	for _, m := range monomials[1:] {
		if ord.Cmp(top, m) < 0 {
			top = m
		}
	}
	//
	return top
}

// Admissibility laws: the unit monomial precedes every other monomial, and
// the order is compatible with multiplication.  RevLex alone is exempt from
// the first law; it participates only as the tie-breaker of GrevLex.
func Test_Order_Admissibility(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)
	//
	checkUnitLaw[Lex](properties, "lex")
	checkUnitLaw[GrLex](properties, "grlex")
	checkUnitLaw[GrevLex](properties, "grevlex")
	//
	checkMulLaw[Lex](properties, "lex")
	checkMulLaw[RevLex](properties, "revlex")
	checkMulLaw[GrLex](properties, "grlex")
	checkMulLaw[GrevLex](properties, "grevlex")

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func checkUnitLaw[O Ordering](properties *gopter.Properties, name string) {
	properties.Property("1 precedes m under "+name, prop.ForAll(
		func(m Monomial) bool {
			var ord O
			//
			return m.IsUnit() || ord.Cmp(NewMonomial(), m) < 0
		},
		genMonomial(),
	))
}

func checkMulLaw[O Ordering](properties *gopter.Properties, name string) {
	properties.Property("multiplication preserves "+name, prop.ForAll(
		func(m, n, p Monomial) bool {
			var ord O
			//
			if ord.Cmp(m, n) >= 0 {
				return true
			}
			//
			return ord.Cmp(m.Mul(p), n.Mul(p)) < 0
		},
		genMonomial(), genMonomial(), genMonomial(),
	))
}
