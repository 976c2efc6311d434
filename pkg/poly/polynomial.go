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
	"iter"
	"sort"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
)

// ErrIncompatibleTerms signals an attempt to combine two single terms whose
// monomials differ.
var ErrIncompatibleTerms = errors.New("poly: incompatible terms")

// Term pairs a monomial with a coefficient.
type Term[F field.Element[F]] struct {
	Monomial    Monomial
	Coefficient F
}

// NewTerm constructs a term from a monomial and a coefficient.
func NewTerm[F field.Element[F]](m Monomial, c F) Term[F] {
	return Term[F]{m, c}
}

// Mul returns the product of two terms.
func (t Term[F]) Mul(other Term[F]) Term[F] {
	return Term[F]{t.Monomial.Mul(other.Monomial), t.Coefficient.Mul(other.Coefficient)}
}

// Add combines two terms over the same monomial.  Returns
// ErrIncompatibleTerms when the monomials differ.
func (t Term[F]) Add(other Term[F]) (Term[F], error) {
	if !t.Monomial.Equal(other.Monomial) {
		return Term[F]{}, fmt.Errorf("%s + %s: %w", t.Monomial, other.Monomial, ErrIncompatibleTerms)
	}
	//
	return Term[F]{t.Monomial, t.Coefficient.Add(other.Coefficient)}, nil
}

// Polynomial is an ordered collection of terms with non-zero coefficients,
// keyed by monomial under the ordering O.  Terms are held sorted from
// largest to smallest, so the leading term is the first.  No two terms share
// a monomial, and no term carries a zero coefficient; every operation
// re-establishes both invariants before returning.  The zero value is the
// zero polynomial.
type Polynomial[F field.Element[F], O Ordering] struct {
	terms []Term[F]
}

// NewPolynomial constructs a polynomial from a list of terms.  Terms over
// the same monomial are combined, and zero coefficients are eliminated.
func NewPolynomial[F field.Element[F], O Ordering](terms ...Term[F]) Polynomial[F, O] {
	var p Polynomial[F, O]
	//
	for _, t := range terms {
		p.addTerm(t)
	}
	//
	return p
}

// Constant constructs the polynomial holding a bare field element.
func Constant[F field.Element[F], O Ordering](c F) Polynomial[F, O] {
	return NewPolynomial[F, O](Term[F]{Monomial{}, c})
}

// FromMonomial constructs the polynomial holding a single monomial with
// coefficient one.
func FromMonomial[F field.Element[F], O Ordering](m Monomial) Polynomial[F, O] {
	return NewPolynomial[F, O](Term[F]{m, field.One[F]()})
}

// Len returns the number of terms in this polynomial.
func (p Polynomial[F, O]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term of this polynomial, counting from the largest.
func (p Polynomial[F, O]) Term(i uint) Term[F] {
	return p.terms[i]
}

// Leading returns the largest term under the ordering.  The polynomial must
// be non-zero.
func (p Polynomial[F, O]) Leading() Term[F] {
	if len(p.terms) == 0 {
		panic("leading term of zero polynomial")
	}
	//
	return p.terms[0]
}

// IsZero reports whether this polynomial has no terms.
func (p Polynomial[F, O]) IsZero() bool {
	return len(p.terms) == 0
}

// Terms iterates the terms from largest to smallest.
func (p Polynomial[F, O]) Terms() iter.Seq[Term[F]] {
	return func(yield func(Term[F]) bool) {
		for _, t := range p.terms {
			if !yield(t) {
				return
			}
		}
	}
}

// ReverseTerms iterates the terms from smallest to largest.
func (p Polynomial[F, O]) ReverseTerms() iter.Seq[Term[F]] {
	return func(yield func(Term[F]) bool) {
		for i := len(p.terms) - 1; i >= 0; i-- {
			if !yield(p.terms[i]) {
				return
			}
		}
	}
}

// find locates the insertion point of a monomial in the descending term
// slice, returning the index and whether the monomial is already present.
func (p *Polynomial[F, O]) find(m Monomial) (uint, bool) {
	var ord O
	// First index whose term does not exceed m.
	i := sort.Search(len(p.terms), func(i int) bool {
		return ord.Cmp(p.terms[i].Monomial, m) <= 0
	})
	//
	ok := i < len(p.terms) && ord.Cmp(p.terms[i].Monomial, m) == 0
	//
	return uint(i), ok
}

// addTerm is the single merge primitive all addition and subtraction routes
// through.  It locates the term sharing the monomial, combines coefficients,
// and erases the entry when the coefficient becomes zero.
func (p *Polynomial[F, O]) addTerm(t Term[F]) {
	if t.Coefficient.IsZero() {
		return
	}
	//
	i, ok := p.find(t.Monomial)
	//
	if !ok {
		p.terms = append(p.terms, Term[F]{})
		copy(p.terms[i+1:], p.terms[i:])
		p.terms[i] = t
		//
		return
	}
	//
	sum := p.terms[i].Coefficient.Add(t.Coefficient)
	//
	if sum.IsZero() {
		p.terms = append(p.terms[:i], p.terms[i+1:]...)
	} else {
		p.terms[i].Coefficient = sum
	}
}

// Clone returns an independent copy of this polynomial.
func (p Polynomial[F, O]) Clone() Polynomial[F, O] {
	terms := make([]Term[F], len(p.terms))
	copy(terms, p.terms)
	//
	return Polynomial[F, O]{terms}
}

// AddInPlace adds another polynomial onto this one.
func (p *Polynomial[F, O]) AddInPlace(other Polynomial[F, O]) {
	for _, t := range other.terms {
		p.addTerm(t)
	}
}

// SubInPlace subtracts another polynomial from this one.
func (p *Polynomial[F, O]) SubInPlace(other Polynomial[F, O]) {
	for _, t := range other.terms {
		p.addTerm(Term[F]{t.Monomial, t.Coefficient.Neg()})
	}
}

// Add returns the sum of two polynomials.
func (p Polynomial[F, O]) Add(other Polynomial[F, O]) Polynomial[F, O] {
	res := p.Clone()
	res.AddInPlace(other)
	//
	return res
}

// Sub returns the difference of two polynomials.
func (p Polynomial[F, O]) Sub(other Polynomial[F, O]) Polynomial[F, O] {
	res := p.Clone()
	res.SubInPlace(other)
	//
	return res
}

// Neg returns the negation of this polynomial.
func (p Polynomial[F, O]) Neg() Polynomial[F, O] {
	res := p.Clone()
	//
	for i := range res.terms {
		res.terms[i].Coefficient = res.terms[i].Coefficient.Neg()
	}
	//
	return res
}

// Mul returns the product of two polynomials, as the convolution over all
// term pairs routed through the merge primitive.
func (p Polynomial[F, O]) Mul(other Polynomial[F, O]) Polynomial[F, O] {
	var res Polynomial[F, O]
	//
	for _, lhs := range p.terms {
		for _, rhs := range other.terms {
			res.addTerm(lhs.Mul(rhs))
		}
	}
	//
	return res
}

// MulTerm returns the product of this polynomial and a single term.
func (p Polynomial[F, O]) MulTerm(t Term[F]) Polynomial[F, O] {
	var res Polynomial[F, O]
	//
	for _, lhs := range p.terms {
		res.addTerm(lhs.Mul(t))
	}
	//
	return res
}

// MulScalar returns the product of this polynomial and a field element.
func (p Polynomial[F, O]) MulScalar(c F) Polynomial[F, O] {
	return p.MulTerm(Term[F]{Monomial{}, c})
}

// Equal compares the two ordered term sequences literally.
func (p Polynomial[F, O]) Equal(other Polynomial[F, O]) bool {
	if len(p.terms) != len(other.terms) {
		return false
	}
	//
	for i, t := range p.terms {
		if !t.Monomial.Equal(other.terms[i].Monomial) {
			return false
		}
		//
		if t.Coefficient.Cmp(other.terms[i].Coefficient) != 0 {
			return false
		}
	}
	//
	return true
}

// Cmp is the induced total order on polynomials: lexicographic on the
// ordered term sequences, monomials first, then coefficients, with a shorter
// prefix ordered before a longer one.
func (p Polynomial[F, O]) Cmp(other Polynomial[F, O]) int {
	var ord O
	//
	n := min(len(p.terms), len(other.terms))
	//
	for i := 0; i < n; i++ {
		if c := ord.Cmp(p.terms[i].Monomial, other.terms[i].Monomial); c != 0 {
			return c
		}
		//
		if c := p.terms[i].Coefficient.Cmp(other.terms[i].Coefficient); c != 0 {
			return c
		}
	}
	//
	switch {
	case len(p.terms) < len(other.terms):
		return -1
	case len(p.terms) > len(other.terms):
		return 1
	default:
		return 0
	}
}

// Convert rebuilds a polynomial under another ordering by re-inserting each
// term.
func Convert[O2 Ordering, F field.Element[F], O1 Ordering](p Polynomial[F, O1]) Polynomial[F, O2] {
	var res Polynomial[F, O2]
	//
	for _, t := range p.terms {
		res.addTerm(t)
	}
	//
	return res
}

// String renders the terms from largest to smallest with a single sign
// between them.  A coefficient of magnitude one is elided except on the
// constant term, and the zero polynomial renders as 0.
func (p Polynomial[F, O]) String() string {
	if p.IsZero() {
		return "0"
	}
	//
	var (
		buf  bytes.Buffer
		zero = field.Zero[F]()
	)
	//
	for i, t := range p.terms {
		var (
			negative = t.Coefficient.Cmp(zero) < 0
			coeff    = t.Coefficient
		)
		//
		if negative {
			coeff = coeff.Neg()
		}
		// The sign replaces the coefficient's own sign.
		switch {
		case i == 0 && negative:
			buf.WriteString("-")
		case i != 0 && negative:
			buf.WriteString(" - ")
		case i != 0:
			buf.WriteString(" + ")
		}
		//
		if t.Monomial.IsUnit() {
			buf.WriteString(coeff.String())
		} else {
			if !coeff.IsOne() {
				buf.WriteString(coeff.String())
			}
			//
			buf.WriteString(t.Monomial.String())
		}
	}
	//
	return buf.String()
}
