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

// Package reduce turns a binary-splitting (P, Q, R) triple (package
// bsplit) into a decimal-or-arbitrary-radix digit string for pi, per
// spec §4.5:
//
//	num = 426880 * Q
//	den = 13591409 * Q + R
//	pi  = (num / den) * sqrt(10005)
//
// R's own P factor has already been folded in by bsplit.Leaf/Combine, so
// only Q and R are needed here.
package reduce

import (
	"math/big"

	"github.com/bfix/picalc/bignum"
)

const (
	numCoeff = 426880
	denCoeff = 13591409
	sqrtArg  = 10005
)

// Digits computes pi to the given working precision (in bits, per spec
// §4.2) from a binary-splitting result's Q and R, and renders its
// fractional part as a base-radix digit string of count digits, without
// a radix point or integer part. The integer part (3) is dropped in
// every radix; the CLI writes "3." in front of the digits.
//
// radix must be in [2, 36]; count must be >= 1.
func Digits(q, r *bignum.Int, prec uint, radix int, count int) []byte {
	num := bignum.NewFloatFromInt(q, prec).Mul(constFloat(numCoeff, prec))
	den := bignum.NewFloatFromInt(q, prec).Mul(constFloat(denCoeff, prec)).
		Add(bignum.NewFloatFromInt(r, prec))
	ratio := num.Quo(den)
	root := bignum.CheckedSqrtUint(sqrtArg, prec)
	pi := ratio.Mul(root)

	return extractDigits(pi.Raw(), radix, count)
}

func constFloat(v uint64, prec uint) *bignum.Float {
	return bignum.NewFloatFromInt(bignum.NewUint64(v), prec)
}

// extractDigits drops the integer part of x and converts the fractional
// part into count base-radix digits, via the classical repeated
// multiply-take-integer-part-subtract algorithm. For radix 4 and up,
// pi's integer part is the single digit 3; in radix 2 and 3 it spans two
// digits ("11", "10") and is dropped just the same. math/big has no
// base-N digit extraction for arbitrary bases on *big.Float, so this
// walks the value one digit at a time with big.Float's own Int, Mul and
// Sub.
func extractDigits(x *big.Float, radix int, count int) []byte {
	prec := x.Prec()
	base := new(big.Float).SetPrec(prec).SetInt64(int64(radix))

	frac := new(big.Float).SetPrec(prec).Set(x)
	whole := new(big.Int)
	frac.Int(whole) // truncates toward zero; pi's integer part is 3
	frac.Sub(frac, new(big.Float).SetPrec(prec).SetInt(whole))

	out := make([]byte, count)
	for i := 0; i < count; i++ {
		frac.Mul(frac, base)
		digit := new(big.Int)
		frac.Int(digit)
		frac.Sub(frac, new(big.Float).SetPrec(prec).SetInt(digit))
		out[i] = digitByte(int(digit.Int64()))
	}
	return out
}

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func digitByte(d int) byte {
	return alphabet[d]
}
