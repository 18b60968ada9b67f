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

// Package bsplit implements the Chudnovsky binary-splitting recursion:
// computing (P, Q, R) over an interval of term indices by combining two
// child triples with a fused multiply-add-mul, shrinking the bignums at
// every level with a factored-integer GCD divide-out (package factored).
package bsplit

import (
	"github.com/bfix/picalc/bignum"
	"github.com/bfix/picalc/factored"
)

// NumFac pairs a materialized bignum with a FactoredInt sidecar that is
// guaranteed to divide it -- a cheap, always-available source of
// divisors for the next level's GCD reduction.
type NumFac struct {
	Num *bignum.Int
	Fac *factored.Int
}

// Triple is the (P, Q, R) result of the recursion over some interval
// [a, b). It owns its NumFacs; combine consumes two triples and
// produces a new one, never retaining references into its children so
// they can be released immediately after use.
type Triple struct {
	P, Q, R NumFac
}
