//----------------------------------------------------------------------
// This file is part of picalc.
// Copyright (C) 2011-2026 Bernd Fix  >Y<
//
// picalc is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// picalc is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Package factored implements FactoredInt: an integer represented as a
// signed product of prime powers. Divisibility, GCD, and exact division
// against another FactoredInt are linear merges over the factor lists,
// orders of magnitude cheaper than the same operations on the fully
// materialized bignum at the precisions the binary-splitting recursion
// reaches -- which is the entire reason package bsplit carries a
// FactoredInt sidecar alongside every bignum.Int it produces.
package factored

import (
	"github.com/bfix/picalc/bignum"
	"github.com/bfix/picalc/picaerr"
	"github.com/bfix/picalc/sieve"
)

// term is one (prime, exponent) pair.
type term struct {
	prime uint64
	exp   uint32
}

// Int is a signed integer represented as (-1)^neg * prod(prime_i^exp_i),
// with primes held strictly ascending and all exponents positive. The
// empty factor list represents +1.
type Int struct {
	neg   bool
	terms []term
}

// One returns the factored representation of 1.
func One() *Int {
	return &Int{}
}

// New factors n via the sieve into a positive FactoredInt.
func New(s *sieve.Sieve, n uint64) *Int {
	raw := s.Factor(n)
	terms := make([]term, len(raw))
	for i, t := range raw {
		terms[i] = term{prime: t.Prime, exp: t.Exp}
	}
	return &Int{terms: terms}
}

// NewWithPow factors n and multiplies every exponent by k, i.e. it computes
// the factorization of n^k without materializing n^k itself.
func NewWithPow(s *sieve.Sieve, n uint64, k uint32) *Int {
	f := New(s, n)
	for i := range f.terms {
		f.terms[i].exp *= k
	}
	return f
}

// Negate flips the sign in place and returns the receiver, for the
// Chudnovsky leaf's P(a,b) = -(6a-1)(6a-5)(2a-1).
func (a *Int) Negate() *Int {
	a.neg = !a.neg
	return a
}

// Clone returns an independent copy.
func (a *Int) Clone() *Int {
	terms := make([]term, len(a.terms))
	copy(terms, a.terms)
	return &Int{neg: a.neg, terms: terms}
}

// Mul returns a*b: sign is the XOR of the operand signs, and on the
// merge walk matching primes have their exponents summed.
func (a *Int) Mul(b *Int) *Int {
	out := &Int{neg: a.neg != b.neg, terms: make([]term, 0, len(a.terms)+len(b.terms))}
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		switch {
		case a.terms[i].prime == b.terms[j].prime:
			out.terms = append(out.terms, term{prime: a.terms[i].prime, exp: a.terms[i].exp + b.terms[j].exp})
			i++
			j++
		case a.terms[i].prime < b.terms[j].prime:
			out.terms = append(out.terms, a.terms[i])
			i++
		default:
			out.terms = append(out.terms, b.terms[j])
			j++
		}
	}
	out.terms = append(out.terms, a.terms[i:]...)
	out.terms = append(out.terms, b.terms[j:]...)
	return out
}

// DivExact returns a/b. b must divide a exactly; violating that is a
// programmer bug and is fatal, per the core's error propagation policy.
func (a *Int) DivExact(b *Int) *Int {
	out := &Int{neg: a.neg != b.neg, terms: make([]term, len(a.terms))}
	copy(out.terms, a.terms)

	i, j := 0, 0
	for i < len(out.terms) && j < len(b.terms) {
		switch {
		case out.terms[i].prime == b.terms[j].prime:
			if b.terms[j].exp > out.terms[i].exp {
				picaerr.Fatalf(picaerr.ErrDivisorMismatch, "factored divExact: prime %d exponent underflow", out.terms[i].prime)
			}
			out.terms[i].exp -= b.terms[j].exp
			i++
			j++
		case out.terms[i].prime < b.terms[j].prime:
			i++
		default:
			picaerr.Fatalf(picaerr.ErrDivisorMismatch, "factored divExact: divisor prime %d does not divide dividend", b.terms[j].prime)
		}
	}
	if j < len(b.terms) {
		picaerr.Fatalf(picaerr.ErrDivisorMismatch, "factored divExact: divisor has unmatched prime %d", b.terms[j].prime)
	}
	return dropZeros(out)
}

// GCD returns the (always positive) greatest common divisor of a and b.
func (a *Int) GCD(b *Int) *Int {
	out := &Int{terms: make([]term, 0, min(len(a.terms), len(b.terms)))}
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		switch {
		case a.terms[i].prime == b.terms[j].prime:
			e := a.terms[i].exp
			if b.terms[j].exp < e {
				e = b.terms[j].exp
			}
			if e > 0 {
				out.terms = append(out.terms, term{prime: a.terms[i].prime, exp: e})
			}
			i++
			j++
		case a.terms[i].prime < b.terms[j].prime:
			i++
		default:
			j++
		}
	}
	return out
}

// ToBigInt materializes the integer value as a bignum.Int. Leaf ranges
// of <=32 factors are folded by repeated small-integer multiplication;
// larger ranges split in half and combine with a single bignum multiply,
// keeping both operands of that multiply comparably sized -- the shape
// bignum.Int.Mul's FFT path wants.
func (a *Int) ToBigInt() *bignum.Int {
	v := splitMul(a.terms, 0, len(a.terms))
	if a.neg {
		v = v.Neg()
	}
	return v
}

const leafCutoff = 32

func splitMul(terms []term, lo, hi int) *bignum.Int {
	if hi-lo <= leafCutoff {
		result := bignum.NewInt(1)
		for _, t := range terms[lo:hi] {
			p := bignum.NewUint64(t.prime)
			for k := uint32(0); k < t.exp; k++ {
				result = result.Mul(p)
			}
		}
		return result
	}
	mid := (lo + hi) / 2
	left := splitMul(terms, lo, mid)
	right := splitMul(terms, mid, hi)
	return left.Mul(right)
}

func dropZeros(a *Int) *Int {
	out := a.terms[:0]
	for _, t := range a.terms {
		if t.exp != 0 {
			out = append(out, t)
		}
	}
	a.terms = out
	return a
}
