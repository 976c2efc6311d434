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
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Monomial_Shrink(t *testing.T) {
	assert.True(t, NewMonomial(1, 2, 3).Equal(NewMonomial(1, 2, 3, 0)))
	assert.True(t, NewMonomial().Equal(NewMonomial(0, 0)))
	assert.Equal(t, uint(3), NewMonomial(1, 2, 3, 0, 0).Vars())
	assert.True(t, NewMonomial(0, 0, 0).IsUnit())
}

func Test_Monomial_Degrees(t *testing.T) {
	m := NewMonomial(1, 0, 4)
	//
	assert.Equal(t, uint64(1), m.Degree(0))
	assert.Equal(t, uint64(0), m.Degree(1))
	assert.Equal(t, uint64(4), m.Degree(2))
	// Virtual zeros past the stored vector
	assert.Equal(t, uint64(0), m.Degree(17))
	assert.Equal(t, uint64(5), m.TotalDeg())
}

func Test_Monomial_Mul(t *testing.T) {
	got := NewMonomial(1, 2, 3).Mul(NewMonomial(1, 2, 3, 4))
	assert.True(t, got.Equal(NewMonomial(2, 4, 6, 4)))
}

func Test_Monomial_Div(t *testing.T) {
	got, err := NewMonomial(1, 2, 3, 4).Div(NewMonomial(0, 0, 0, 4))
	require.NoError(t, err)
	assert.True(t, got.Equal(NewMonomial(1, 2, 3)))
	// Insufficient dividend
	_, err = NewMonomial(1, 2).Div(NewMonomial(2))
	require.ErrorIs(t, err, ErrIndivisibleMonomial)
}

func Test_Monomial_Divisibility(t *testing.T) {
	assert.True(t, NewMonomial(2, 2).IsDivisibleBy(NewMonomial(1, 2)))
	assert.False(t, NewMonomial(1, 2).IsDivisibleBy(NewMonomial(2, 2)))
	// The unit monomial divides everything
	assert.True(t, NewMonomial(5, 5).IsDivisibleBy(NewMonomial()))
	assert.True(t, NewMonomial().IsDivisibleBy(NewMonomial()))
}

func Test_Monomial_WithDegree(t *testing.T) {
	m := NewMonomial(1).WithDegree(2, 3)
	assert.True(t, m.Equal(NewMonomial(1, 0, 3)))
	// Clearing the last variable shrinks the vector
	assert.True(t, m.WithDegree(2, 0).Equal(NewMonomial(1)))
}

func Test_Monomial_String(t *testing.T) {
	assert.Equal(t, "(x_0^2 * x_2)", NewMonomial(2, 0, 1).String())
	assert.Equal(t, "(x_1)", NewMonomial(0, 1).String())
	assert.Equal(t, "()", NewMonomial().String())
}

// Division-lattice laws over randomly generated monomials.
func Test_Monomial_Lattice(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)
	//
	properties.Property("m divides m*n", prop.ForAll(
		func(m, n Monomial) bool {
			return m.Mul(n).IsDivisibleBy(m)
		},
		genMonomial(), genMonomial(),
	))

	properties.Property("(m*n)/n = m", prop.ForAll(
		func(m, n Monomial) bool {
			q, err := m.Mul(n).Div(n)
			//
			return err == nil && q.Equal(m)
		},
		genMonomial(), genMonomial(),
	))

	properties.Property("lcm commutes", prop.ForAll(
		func(m, n Monomial) bool {
			return Lcm(m, n).Equal(Lcm(n, m))
		},
		genMonomial(), genMonomial(),
	))

	properties.Property("lcm associates", prop.ForAll(
		func(m, n, p Monomial) bool {
			return Lcm(Lcm(m, n), p).Equal(Lcm(m, Lcm(n, p)))
		},
		genMonomial(), genMonomial(), genMonomial(),
	))

	properties.Property("lcm(m, 1) = m", prop.ForAll(
		func(m Monomial) bool {
			return Lcm(m, NewMonomial()).Equal(m)
		},
		genMonomial(),
	))

	properties.Property("lcm is divisible by both arguments", prop.ForAll(
		func(m, n Monomial) bool {
			l := Lcm(m, n)
			//
			return l.IsDivisibleBy(m) && l.IsDivisibleBy(n)
		},
		genMonomial(), genMonomial(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func genMonomial() gopter.Gen {
	return gen.SliceOfN(4, gen.UInt64Range(0, 6)).Map(func(degrees []uint64) Monomial {
		return NewMonomial(degrees...)
	})
}
