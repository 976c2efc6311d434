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

	"github.com/stretchr/testify/assert"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
)

func Test_Set_Insert(t *testing.T) {
	var set Set[field.Rational, Lex]
	//
	assert.True(t, set.Insert(mkPoly(term(1, 1))))
	// Duplicates are ignored
	assert.False(t, set.Insert(mkPoly(term(1, 1))))
	// The zero polynomial is never a member
	assert.False(t, set.Insert(mkPoly()))
	//
	assert.True(t, set.Insert(mkPoly(term(1, 2))))
	assert.Equal(t, uint(2), set.Len())
}

func Test_Set_Ordering(t *testing.T) {
	a := mkPoly(term(1, 1))
	b := mkPoly(term(1, 2))
	c := mkPoly(term(2, 2))
	//
	set := NewSet(c, a, b)
	// Iteration is deterministic in the induced order, regardless of
	// insertion order
	other := NewSet(b, c, a)
	//
	for i := uint(0); i < set.Len(); i++ {
		assert.True(t, set.Nth(i).Equal(other.Nth(i)))
	}
}

func Test_Set_Remove(t *testing.T) {
	a := mkPoly(term(1, 1))
	b := mkPoly(term(1, 2))
	//
	set := NewSet(a, b)
	//
	assert.True(t, set.Remove(a))
	assert.False(t, set.Remove(a))
	assert.False(t, set.Contains(a))
	assert.True(t, set.Contains(b))
	assert.Equal(t, uint(1), set.Len())
}

func Test_Set_PopFirst(t *testing.T) {
	a := mkPoly(term(1, 1))
	b := mkPoly(term(1, 2))
	//
	set := NewSet(a, b)
	first := set.PopFirst()
	//
	assert.Equal(t, uint(1), set.Len())
	assert.False(t, set.Contains(first))
}

func Test_Set_Clone(t *testing.T) {
	a := mkPoly(term(1, 1))
	//
	set := NewSet(a)
	clone := set.Clone()
	clone.Insert(mkPoly(term(1, 2)))
	//
	assert.Equal(t, uint(1), set.Len())
	assert.Equal(t, uint(2), clone.Len())
}
