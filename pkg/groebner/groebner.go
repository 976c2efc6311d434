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

// Package groebner implements Buchberger's completion procedure over ordered
// multivariate polynomials: S-polynomials, elementary reductions, reduction
// to normal form over a set, inter-reduction and basis normalization.
package groebner

import (
	log "github.com/sirupsen/logrus"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
	"github.com/Phibonoci/Groebner-Basis/pkg/poly"
)

// SPolynomial constructs the canonical combination of two non-zero
// polynomials whose leading terms cancel:
//
//	L = lcm(lm(p1), lm(p2));  S = (L/lm(p1))·p1·lc(p2) - (L/lm(p2))·p2·lc(p1)
//
// The monomial multipliers and the scalar leading coefficients act
// separately, so the leading terms vanish by construction.
func SPolynomial[F field.Element[F], O poly.Ordering](first, second poly.Polynomial[F, O]) poly.Polynomial[F, O] {
	var (
		l1 = first.Leading()
		l2 = second.Leading()
		l  = poly.Lcm(l1.Monomial, l2.Monomial)
	)
	// Both divisions are total since l is a common multiple.
	m1, _ := l.Div(l1.Monomial)
	m2, _ := l.Div(l2.Monomial)
	//
	lhs := first.MulTerm(poly.NewTerm(m1, l2.Coefficient))
	rhs := second.MulTerm(poly.NewTerm(m2, l1.Coefficient))
	//
	return lhs.Sub(rhs)
}

// ElementaryReduction cancels one reducible term of f by a monomial multiple
// of g: the first term of f (largest first) divisible by the leading
// monomial of g is eliminated.  Reports whether a reduction was performed.
func ElementaryReduction[F field.Element[F], O poly.Ordering](f *poly.Polynomial[F, O], g poly.Polynomial[F, O]) bool {
	lead := g.Leading()
	//
	for i := uint(0); i < f.Len(); i++ {
		t := f.Term(i)
		//
		if !t.Monomial.IsDivisibleBy(lead.Monomial) {
			continue
		}
		// Total: divisibility established above.
		m, _ := t.Monomial.Div(lead.Monomial)
		quotient := poly.NewTerm(m, field.Div(t.Coefficient, lead.Coefficient))
		//
		f.SubInPlace(g.MulTerm(quotient))
		//
		return true
	}
	//
	return false
}

// ReductionChain iterates the elementary reduction of f by g until it no
// longer applies, returning the number of reductions performed.
func ReductionChain[F field.Element[F], O poly.Ordering](f *poly.Polynomial[F, O], g poly.Polynomial[F, O]) uint {
	count := uint(0)
	//
	for ElementaryReduction(f, g) {
		count++
	}
	//
	return count
}

// ReduceOnce performs a single sweep over the set, running the reduction
// chain of f by each member in turn.  Further sweeps may expose new
// reducible terms.
func ReduceOnce[F field.Element[F], O poly.Ordering](f *poly.Polynomial[F, O], set poly.Set[F, O]) uint {
	count := uint(0)
	//
	for g := range set.All() {
		count += ReductionChain(f, g)
	}
	//
	return count
}

// reduceFully sweeps until a sweep performs no reduction, leaving f in a
// normal form modulo the set.
func reduceFully[F field.Element[F], O poly.Ordering](f *poly.Polynomial[F, O], set poly.Set[F, O]) uint {
	count := uint(0)
	//
	for {
		n := ReduceOnce(f, set)
		//
		if n == 0 {
			return count
		}
		//
		count += n
	}
}

// Reduce returns a normal form of f modulo the set, i.e. the result of
// chaining reduction sweeps until none applies.
func Reduce[F field.Element[F], O poly.Ordering](f poly.Polynomial[F, O], set poly.Set[F, O]) poly.Polynomial[F, O] {
	res := f.Clone()
	reduceFully(&res, set)
	//
	return res
}

// LeadingsCoprime reports whether the leading monomials of two polynomials
// are coprime, i.e. their product equals their lcm.  By Buchberger's first
// criterion the S-polynomial of such a pair reduces to zero and the pair may
// be skipped.
func LeadingsCoprime[F field.Element[F], O poly.Ordering](first, second poly.Polynomial[F, O]) bool {
	var (
		l1 = first.Leading().Monomial
		l2 = second.Leading().Monomial
	)
	//
	return l1.Mul(l2).Equal(poly.Lcm(l1, l2))
}

// CheckPair reduces the S-polynomial of a pair over the set.  Returns the
// remainder and true when it is non-zero; otherwise (coprime leading
// monomials, or full reduction) returns false.
func CheckPair[F field.Element[F], O poly.Ordering](first, second poly.Polynomial[F, O],
	set poly.Set[F, O]) (poly.Polynomial[F, O], bool) {
	//
	if LeadingsCoprime(first, second) {
		return poly.Polynomial[F, O]{}, false
	}
	//
	s := SPolynomial(first, second)
	reduceFully(&s, set)
	//
	if s.IsZero() {
		return poly.Polynomial[F, O]{}, false
	}
	//
	return s, true
}

// FindPairs scans the ordered pairs of distinct members of the set, taking
// the second strictly before the first to avoid double-counting, and
// collects every non-zero remainder produced by CheckPair.
func FindPairs[F field.Element[F], O poly.Ordering](set poly.Set[F, O]) poly.Set[F, O] {
	var found poly.Set[F, O]
	//
	for i := uint(0); i < set.Len(); i++ {
		for j := uint(0); j < i; j++ {
			if s, ok := CheckPair(set.Nth(i), set.Nth(j), set); ok {
				found.Insert(s)
			}
		}
	}
	//
	return found
}

// interReduceOnce extracts the members one at a time, reducing each against
// the not-yet-processed remainder and against the already-processed side,
// dropping those which reduce to zero.
func interReduceOnce[F field.Element[F], O poly.Ordering](set *poly.Set[F, O]) uint {
	var (
		count   uint
		reduced poly.Set[F, O]
	)
	//
	for !set.IsEmpty() {
		f := set.PopFirst()
		count += ReduceOnce(&f, *set)
		count += ReduceOnce(&f, reduced)
		//
		reduced.Insert(f)
	}
	//
	*set = reduced
	//
	return count
}

// InterReduce iterates whole inter-reduction passes over the set until a
// pass performs no reduction, returning the total reduction count.
func InterReduce[F field.Element[F], O poly.Ordering](set *poly.Set[F, O]) uint {
	count := uint(0)
	//
	for {
		n := interReduceOnce(set)
		//
		if n == 0 {
			return count
		}
		//
		count += n
	}
}

// Normalize divides every member by its leading coefficient, so each has
// leading coefficient one.
func Normalize[F field.Element[F], O poly.Ordering](set *poly.Set[F, O]) {
	var normalized poly.Set[F, O]
	//
	for f := range set.All() {
		normalized.Insert(f.MulScalar(f.Leading().Coefficient.Inverse()))
	}
	//
	*set = normalized
}

// optimize inter-reduces and then normalizes the set.
func optimize[F field.Element[F], O poly.Ordering](set *poly.Set[F, O]) {
	InterReduce(set)
	Normalize(set)
}

// Buchberger computes a Gröbner basis of the ideal generated by the set:
// collect the reduced S-polynomial remainders of all pairs, merge them in,
// inter-reduce and normalize, and repeat until no pair produces a non-zero
// remainder.  Termination is guaranteed by Buchberger's theorem.  The input
// set is not modified.
func Buchberger[F field.Element[F], O poly.Ordering](set poly.Set[F, O]) poly.Set[F, O] {
	set = set.Clone()
	//
	additions := FindPairs(set)
	optimize(&set)
	//
	for round := 1; !additions.IsEmpty(); round++ {
		log.Debugf("completion round %d: basis size %d, %d new remainders", round, set.Len(), additions.Len())
		//
		set.InsertAll(additions)
		additions = FindPairs(set)
		optimize(&set)
	}
	//
	return set
}

// IsGroebnerBasis reports whether the S-polynomial of every pair of distinct
// members reduces to zero over the set.
func IsGroebnerBasis[F field.Element[F], O poly.Ordering](set poly.Set[F, O]) bool {
	for i := uint(0); i < set.Len(); i++ {
		for j := uint(0); j < i; j++ {
			s := SPolynomial(set.Nth(i), set.Nth(j))
			//
			if !Reduce(s, set).IsZero() {
				return false
			}
		}
	}
	//
	return true
}
