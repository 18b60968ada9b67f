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

package bsplit

import (
	"github.com/bfix/picalc/bignum"
	"github.com/bfix/picalc/factored"
	"github.com/bfix/picalc/forkjoin"
	"github.com/bfix/picalc/sieve"
)

// Chudnovsky series constants (spec §3).
const (
	seriesA           = 545140134
	seriesB           = 13591409
	qConstSquare      = 640320
	qConstReduced     = 640320 / 24 // = 26680, exact
	qConstSquarePower = 2
)

// MinSieveBound is the smallest sieve bound Leaf can run against: every
// leaf factors the fixed constant qConstSquare (640320) regardless of
// which term a it is evaluating, so a sieve built for a bound narrower
// than that constant would panic on the very first call.
const MinSieveBound = qConstSquare

// Leaf computes the (P, Q, R) triple over the single-term interval
// [a, a+1):
//
//	P = -(6a-1)(6a-5)(2a-1)
//	Q = (640320^3/24) * a^3
//	R = P * (A*a + B)
//
// R's factored sidecar is aliased (by value-copy) to P's, since R = P *
// (a scalar) shares P's full factorization.
func Leaf(a uint64, s *sieve.Sieve) Triple {
	pFac := factored.New(s, 6*a-1).
		Mul(factored.New(s, 6*a-5)).
		Mul(factored.New(s, 2*a-1)).
		Negate()
	pNum := pFac.ToBigInt()

	qFac := factored.NewWithPow(s, a, 3).
		Mul(factored.NewWithPow(s, qConstSquare, qConstSquarePower)).
		Mul(factored.New(s, qConstReduced))
	qNum := qFac.ToBigInt()

	coeff := bignum.NewUint64(a).MulSmall(seriesA).AddSmall(seriesB)
	rNum := pNum.Mul(coeff)

	return Triple{
		P: NumFac{Num: pNum, Fac: pFac},
		Q: NumFac{Num: qNum, Fac: qFac},
		R: NumFac{Num: rNum, Fac: pFac.Clone()},
	}
}

// Combine merges two child triples, over [a,m) and [m,b) respectively,
// into the parent triple over [a,b):
//
//	P = P1 * P2
//	Q = Q1 * Q2
//	R = Q2*R1 + P1*R2
//
// before returning, it divides P, Q, and R by g = gcd(Q1.fac, R1.fac),
// the largest factor statically known to be common to both addends of
// R (spec §4.3's "combine optimization"): this keeps the bignums
// entering the next level smaller than the naive product would be,
// without changing the rational value represented.
func Combine(left, right Triple) Triple {
	pFac := left.P.Fac.Mul(right.P.Fac)
	pNum := left.P.Num.Mul(right.P.Num)

	qFac := left.Q.Fac.Mul(right.Q.Fac)
	qNum := left.Q.Num.Mul(right.Q.Num)

	rNum := bignum.FMA(right.Q.Num, left.R.Num, left.P.Num, right.R.Num)

	gcdFac := left.Q.Fac.GCD(left.R.Fac)
	gcdNum := gcdFac.ToBigInt()

	pNum = pNum.DivExact(gcdNum)
	pFac = pFac.DivExact(gcdFac)
	qNum = qNum.DivExact(gcdNum)
	qFac = qFac.DivExact(gcdFac)
	rNum = rNum.DivExact(gcdNum)

	// The largest factorization provably dividing the new R without
	// claiming more than is statically known: P1 divides Q2*R1 + P1*R2's
	// second addend outright, and any factor common with R2 divides
	// that addend too.
	rFac := left.P.Fac.GCD(right.R.Fac)

	return Triple{
		P: NumFac{Num: pNum, Fac: pFac},
		Q: NumFac{Num: qNum, Fac: qFac},
		R: NumFac{Num: rNum, Fac: rFac},
	}
}

// Split computes the (P, Q, R) triple over [a, b) (1 <= a < b),
// forking while the recursion depth is within sched's depth cap and
// running sequentially past it. The split point is floor((a+b)/2), so
// on odd-width intervals the left child gets the smaller half, per
// spec §4.3.
func Split(a, b uint64, s *sieve.Sieve, sched *forkjoin.Scheduler) Triple {
	return split(a, b, s, sched, 0)
}

func split(a, b uint64, s *sieve.Sieve, sched *forkjoin.Scheduler, depth int) Triple {
	if b-a == 1 {
		return Leaf(a, s)
	}
	mid := a + (b-a)/2
	var left, right Triple
	sched.Fork(depth, b-a,
		func() { left = split(a, mid, s, sched, depth+1) },
		func() { right = split(mid, b, s, sched, depth+1) },
	)
	return Combine(left, right)
}
