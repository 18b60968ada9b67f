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

// Package sieve implements the modified linear prime-factor sieve used to
// factor every base appearing in a Chudnovsky binary-splitting leaf in
// O(log n) table lookups. Unlike a classic sieve of Eratosthenes (see
// MichaelTJones-sieve in this lineage's reference pool, which only
// answers primality/trial-division queries), each slot here chains
// straight to the fully reduced factorization of its value, so Factor
// never falls back to trial division.
package sieve

import (
	"github.com/bfix/picalc/picaerr"
)

// entry is one slot of the factor table: for the odd value v at index
// v/2, base is the smallest prime dividing v, exponent is the largest k
// with base^k | v, and next is the index of (v / base^exponent)/2, or 0
// if that quotient is 1.
type entry struct {
	base     uint64
	exponent uint32
	next     uint64
}

// Sieve is a read-only, precomputed factoring table for every integer
// in [1, Bound()]. It is safe for unsynchronized concurrent reads by
// any number of goroutines once Build has returned.
type Sieve struct {
	bound uint64
	table []entry
}

// Bound returns the largest integer this sieve can factor.
func (s *Sieve) Bound() uint64 {
	return s.bound
}

// Term is one (prime, exponent) pair of a factorization, primes
// strictly ascending across a Factor() result.
type Term struct {
	Prime uint64
	Exp   uint32
}

// Build constructs a sieve able to factor any integer in [1, m].
func Build(m uint64) *Sieve {
	if m < 2 {
		m = 2
	}
	s := &Sieve{
		bound: m,
		table: make([]entry, m/2+1),
	}
	s.table[0] = entry{base: 2, exponent: 1, next: 0}

	sqrtM := isqrt(m)
	for i := uint64(3); i <= m; i += 2 {
		idx := i / 2
		if s.table[idx].base != 0 {
			continue // already marked as a multiple of a smaller prime
		}
		// i is prime.
		s.table[idx] = entry{base: i, exponent: 1, next: 0}
		if i > sqrtM {
			continue
		}
		// Chain higher powers of i and its first multiples directly to
		// their reduced quotient, walking j = i*i, i*i+2i, i*i+4i, ...
		// k is the index of j/i and advances with j, also past skipped slots.
		for j, k := i*i, idx; j <= m; j, k = j+2*i, k+1 {
			jIdx := j / 2
			if s.table[jIdx].base != 0 {
				continue
			}
			if s.table[k].base == i {
				s.table[jIdx] = entry{base: i, exponent: s.table[k].exponent + 1, next: s.table[k].next}
			} else {
				s.table[jIdx] = entry{base: i, exponent: 1, next: k}
			}
		}
	}
	return s
}

// Factor returns the prime factorization of n as strictly-ascending
// (prime, exponent) terms. n must satisfy 1 <= n <= s.Bound(); n == 0
// or n out of range is a programmer bug and is fatal, per the core's
// error propagation policy.
func (s *Sieve) Factor(n uint64) []Term {
	if n == 0 {
		picaerr.Fatalf(picaerr.ErrSieveRange, "factor(0) is undefined")
	}
	if n > s.bound {
		picaerr.Fatalf(picaerr.ErrSieveRange, "factor(%d) exceeds sieve bound %d", n, s.bound)
	}
	if n == 1 {
		return nil
	}

	var terms []Term

	// Strip factors of two by counting trailing zero bits.
	pow2 := trailingZeros(n)
	if pow2 > 0 {
		terms = append(terms, Term{Prime: 2, Exp: pow2})
	}
	n >>= pow2

	v := n / 2
	for v > 0 {
		e := s.table[v]
		terms = append(terms, Term{Prime: e.base, Exp: e.exponent})
		v = e.next
	}
	return terms
}

func trailingZeros(n uint64) uint32 {
	var k uint32
	for n&1 == 0 {
		n >>= 1
		k++
	}
	return k
}

func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	r := uint64(1)
	for r*r <= n {
		r++
	}
	return r - 1
}
