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
	"errors"
	"fmt"
	"strconv"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
	"github.com/Phibonoci/Groebner-Basis/pkg/util/checked"
)

// ErrSyntax signals malformed polynomial text.
var ErrSyntax = errors.New("poly: syntax error")

// ParsePolynomial parses the textual form of a polynomial with integer
// coefficients, such as "2*x_0^2*x_1 - x_2 + 4".  Terms are separated by a
// sign; each term is a '*'-separated product of decimal numbers and
// variables.  A variable is written x_i or xi, optionally raised via ^e.
// The underscore and an exponent of one may be omitted.  Repeated factors
// multiply out, and terms over the same monomial are combined.
func ParsePolynomial[F field.Element[F], O Ordering](input string) (Polynomial[F, O], error) {
	var (
		res Polynomial[F, O]
		s   = scanner{input: input}
	)
	//
	s.skipSpace()
	//
	if s.done() {
		return res, fmt.Errorf("empty input: %w", ErrSyntax)
	}
	// Optional sign on the first term
	negative, _ := s.sign()
	//
	for {
		coeff, monomial, err := s.term()
		if err != nil {
			return Polynomial[F, O]{}, err
		}
		//
		c := field.Uint64[F](coeff)
		//
		if negative {
			c = c.Neg()
		}
		//
		res.addTerm(NewTerm(monomial, c))
		//
		s.skipSpace()
		//
		if s.done() {
			return res, nil
		}
		// Every further term must be introduced by a sign
		neg, ok := s.sign()
		//
		if !ok {
			return Polynomial[F, O]{}, fmt.Errorf("expected sign at column %d: %w", s.pos, ErrSyntax)
		}
		//
		negative = neg
	}
}

// scanner is a cursor over the polynomial text.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	return s.input[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.done() && (s.peek() == ' ' || s.peek() == '\t') {
		s.pos++
	}
}

// sign consumes a '+' or '-', reporting whether one was present and whether
// it was negative.
func (s *scanner) sign() (negative bool, ok bool) {
	if s.done() {
		return false, false
	}
	//
	switch s.peek() {
	case '+':
		s.pos++
	case '-':
		s.pos++
		negative = true
	default:
		return false, false
	}
	//
	s.skipSpace()
	//
	return negative, true
}

// number consumes a run of decimal digits.
func (s *scanner) number() (uint64, error) {
	start := s.pos
	//
	for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
	}
	//
	if start == s.pos {
		return 0, fmt.Errorf("expected number at column %d: %w", s.pos, ErrSyntax)
	}
	//
	val, err := strconv.ParseUint(s.input[start:s.pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number at column %d: %w", start, ErrSyntax)
	}
	//
	return val, nil
}

// variable consumes x_i or xi, optionally raised via ^e, as a single-variable
// monomial.
func (s *scanner) variable() (Monomial, error) {
	// 'x'
	s.pos++
	//
	if !s.done() && s.peek() == '_' {
		s.pos++
	}
	//
	index, err := s.number()
	if err != nil {
		return Monomial{}, fmt.Errorf("expected variable index at column %d: %w", s.pos, ErrSyntax)
	}
	//
	exponent := uint64(1)
	//
	if !s.done() && s.peek() == '^' {
		s.pos++
		//
		if exponent, err = s.number(); err != nil {
			return Monomial{}, fmt.Errorf("expected exponent at column %d: %w", s.pos, ErrSyntax)
		}
	}
	//
	return Monomial{}.WithDegree(uint(index), exponent), nil
}

// term consumes a '*'-separated product of numbers and variables, returning
// the accumulated coefficient and monomial.  Every '*' must be followed by a
// further factor.
func (s *scanner) term() (uint64, Monomial, error) {
	var (
		coeff    = checked.New[uint64](1)
		monomial Monomial
	)
	//
	for {
		s.skipSpace()
		//
		if s.done() {
			return 0, Monomial{}, fmt.Errorf("missing factor at column %d: %w", s.pos, ErrSyntax)
		}
		//
		switch c := s.peek(); {
		case c >= '0' && c <= '9':
			val, err := s.number()
			if err != nil {
				return 0, Monomial{}, err
			}
			//
			coeff = coeff.Mul(checked.New(val))
		case c == 'x':
			m, err := s.variable()
			if err != nil {
				return 0, Monomial{}, err
			}
			//
			monomial = monomial.Mul(m)
		default:
			return 0, Monomial{}, fmt.Errorf("unexpected %q at column %d: %w", c, s.pos, ErrSyntax)
		}
		//
		s.skipSpace()
		// Further factors are chained by '*'
		if s.done() || s.peek() != '*' {
			return coeff.Value(), monomial, nil
		}
		//
		s.pos++
	}
}
