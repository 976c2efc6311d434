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
	"iter"
	"sort"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
)

// Set is a duplicate-free collection of non-zero polynomials, held sorted
// under the induced order on polynomials.  Iteration is therefore
// deterministic.  The zero value is an empty set.
type Set[F field.Element[F], O Ordering] struct {
	polys []Polynomial[F, O]
}

// NewSet constructs a set from the given polynomials, dropping zero
// polynomials and duplicates.
func NewSet[F field.Element[F], O Ordering](polys ...Polynomial[F, O]) Set[F, O] {
	var set Set[F, O]
	//
	for _, p := range polys {
		set.Insert(p)
	}
	//
	return set
}

// Len returns the number of polynomials in this set.
func (s Set[F, O]) Len() uint {
	return uint(len(s.polys))
}

// IsEmpty reports whether this set holds no polynomials.
func (s Set[F, O]) IsEmpty() bool {
	return len(s.polys) == 0
}

// Nth returns the ith polynomial in the induced order.
func (s Set[F, O]) Nth(i uint) Polynomial[F, O] {
	return s.polys[i]
}

// find locates the insertion point of a polynomial, returning the index and
// whether an equal polynomial is already present.
func (s *Set[F, O]) find(p Polynomial[F, O]) (uint, bool) {
	i := sort.Search(len(s.polys), func(i int) bool {
		return s.polys[i].Cmp(p) >= 0
	})
	//
	ok := i < len(s.polys) && s.polys[i].Cmp(p) == 0
	//
	return uint(i), ok
}

// Contains reports whether an equal polynomial is in the set.
func (s *Set[F, O]) Contains(p Polynomial[F, O]) bool {
	_, ok := s.find(p)
	//
	return ok
}

// Insert adds a polynomial to the set, ignoring zero polynomials and
// duplicates.  Reports whether the set grew.
func (s *Set[F, O]) Insert(p Polynomial[F, O]) bool {
	if p.IsZero() {
		return false
	}
	//
	i, ok := s.find(p)
	//
	if ok {
		return false
	}
	//
	s.polys = append(s.polys, Polynomial[F, O]{})
	copy(s.polys[i+1:], s.polys[i:])
	s.polys[i] = p
	//
	return true
}

// InsertAll adds every polynomial of another set to this one.
func (s *Set[F, O]) InsertAll(other Set[F, O]) {
	for _, p := range other.polys {
		s.Insert(p)
	}
}

// Remove deletes an equal polynomial from the set, reporting whether one was
// present.
func (s *Set[F, O]) Remove(p Polynomial[F, O]) bool {
	i, ok := s.find(p)
	//
	if !ok {
		return false
	}
	//
	s.polys = append(s.polys[:i], s.polys[i+1:]...)
	//
	return true
}

// PopFirst removes and returns the first polynomial in the induced order.
// The set must be non-empty.
func (s *Set[F, O]) PopFirst() Polynomial[F, O] {
	p := s.polys[0]
	s.polys = s.polys[1:]
	//
	return p
}

// Clone returns an independent copy of this set.
func (s Set[F, O]) Clone() Set[F, O] {
	polys := make([]Polynomial[F, O], len(s.polys))
	copy(polys, s.polys)
	//
	return Set[F, O]{polys}
}

// All iterates the polynomials in the induced order.
func (s Set[F, O]) All() iter.Seq[Polynomial[F, O]] {
	return func(yield func(Polynomial[F, O]) bool) {
		for _, p := range s.polys {
			if !yield(p) {
				return
			}
		}
	}
}
