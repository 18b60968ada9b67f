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

// Package pi is the top-level orchestrator: it resolves a Config into
// concrete precision/iteration/sieve parameters, runs the
// binary-splitting recursion, and reduces the result to a digit string.
package pi

import (
	"context"
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/bfix/picalc/bsplit"
	"github.com/bfix/picalc/forkjoin"
	"github.com/bfix/picalc/picaerr"
	"github.com/bfix/picalc/reduce"
	"github.com/bfix/picalc/sieve"
)

// bitsPerDigit is log2(10), the bits of working precision one decimal
// digit of output costs.
const bitsPerDigit = 3.321928094887362

// digitsPerTerm is the number of correct decimal digits each
// Chudnovsky series term contributes (spec §3).
const digitsPerTerm = 14.181647462725478

// precisionGuard is extra working-precision bits carried past what the
// requested digit count strictly needs, to absorb rounding in the final
// reduction (spec §4.2).
const precisionGuard = 16

// termGuard is the number of extra series terms computed past the
// minimum the digit count requires, for the same reason.
const termGuard = 16

// Config holds one computePi invocation's parameters. Digits and Base
// are the only fields the caller generally must set; Threads and
// MaxParallelDepth of 0 mean "resolve automatically" (spec §7).
type Config struct {
	Digits           uint64
	Threads          int
	MaxParallelDepth int
	Base             int
}

// resolved is a Config after defaulting and precision/iteration/sieve
// derivation, and is never exported: Compute builds one only after
// Validate has passed, so Result always carries parameters consistent
// with a validated Config.
type resolved struct {
	digits           uint64
	threads          int
	maxParallelDepth int
	base             int
	precBits         uint
	terms            uint64
	sieveBound       uint64
}

// Result is the outcome of a Compute call: the rendered digit string
// (without the leading "3." prefix -- spec §4.6 leaves formatting to
// the caller) and the parameters actually used.
type Result struct {
	Digits           []byte
	PrecisionBits    uint
	Terms            uint64
	Threads          int
	MaxParallelDepth int
}

// Validate checks Config fields the caller controls directly; it does
// not resolve threads/depth defaults (that happens inside Compute).
func (c Config) Validate() error {
	if c.Digits < 1 {
		return picaerr.Config("digits must be >= 1, got %d", c.Digits)
	}
	if c.Base != 0 && (c.Base < 2 || c.Base > 36) {
		return picaerr.Config("base must be in [2, 36], got %d", c.Base)
	}
	return nil
}

func (c Config) resolve() resolved {
	base := c.Base
	if base == 0 {
		base = 10
	}

	precBits := uint(float64(c.Digits)*bitsPerDigit) + precisionGuard
	terms := uint64(float64(c.Digits)/digitsPerTerm) + termGuard

	threads := c.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	maxParallelDepth := c.MaxParallelDepth
	if maxParallelDepth <= 0 {
		maxParallelDepth = int(math.Ceil(math.Log2(float64(threads)))) + 1
	}

	sieveBound := 6 * terms
	if sieveBound < bsplit.MinSieveBound {
		sieveBound = bsplit.MinSieveBound
	}

	return resolved{
		digits:           c.Digits,
		threads:          threads,
		maxParallelDepth: maxParallelDepth,
		base:             base,
		precBits:         precBits,
		terms:            terms,
		sieveBound:       sieveBound,
	}
}

// Compute runs the full pipeline: sieve construction, the binary
// -splitting recursion (bounded by the resolved thread count and fork
// depth), and the final reduction to a digit string. log receives one
// stage-tagged entry per phase (spec §7's ambient logging requirement);
// passing zap.NewNop() is valid for callers that don't want output.
//
// ctx is checked once before the (uninterruptible) splitting phase
// begins; picalc's binary splitting has no natural cancellation points
// once started, matching the teacher's own dispatcher, which does not
// support mid-batch cancellation either.
func Compute(ctx context.Context, cfg Config, log *zap.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := cfg.resolve()
	log = log.With(
		zap.Uint64("digits", r.digits),
		zap.Uint("precisionBits", r.precBits),
		zap.Uint64("terms", r.terms),
		zap.Int("threads", r.threads),
		zap.Int("maxParallelDepth", r.maxParallelDepth),
	)
	log.Debug("resolved configuration")

	s := sieve.Build(r.sieveBound)
	log.Debug("sieve built", zap.Uint64("bound", r.sieveBound))

	sched := forkjoin.New(r.threads, r.maxParallelDepth, forkjoin.DefaultLeafCutoff)
	triple := bsplit.Split(1, r.terms, s, sched)
	log.Debug("binary splitting complete")

	digitCount := int(math.Round(float64(r.digits) / math.Log10(float64(r.base))))
	if digitCount < 1 {
		digitCount = 1
	}
	digits := reduce.Digits(triple.Q.Num, triple.R.Num, r.precBits, r.base, digitCount)
	log.Debug("reduction complete", zap.Int("digitCount", len(digits)))

	return &Result{
		Digits:           digits,
		PrecisionBits:    r.precBits,
		Terms:            r.terms,
		Threads:          r.threads,
		MaxParallelDepth: r.maxParallelDepth,
	}, nil
}
