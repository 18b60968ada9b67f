//----------------------------------------------------------------------
// This file is part of picalc.
// Copyright (C) 2011-2024 Bernd Fix  >Y<
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

// Package picaerr classifies the error kinds a Chudnovsky π computation
// can raise: configuration errors are returned to the caller, everything
// else is an invariant violation and is fatal.
package picaerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() comparisons. Only ErrConfig is ever
// returned from a public API call; the others are wrapped into a panic
// by Fatalf and exist so tests and recover() handlers can classify it.
var (
	// ErrConfig marks a configuration error (bad digits/base/depth):
	// recoverable by the driver.
	ErrConfig = errors.New("configuration error")

	// ErrSieveRange marks an out-of-range sieve access: a programmer bug.
	ErrSieveRange = errors.New("sieve access out of range")

	// ErrDivisorMismatch marks a violated exact-division precondition.
	ErrDivisorMismatch = errors.New("divisor does not divide dividend")

	// ErrProvider marks a fatal failure from the BigNum provider.
	ErrProvider = errors.New("bignum provider failure")
)

// Error wraps a sentinel with call-site context, mirroring the shape the
// rest of this lineage's code already uses for error reporting.
type Error struct {
	Err error  // base error (for errors.Is() and errors.As())
	Ctx string // error context
}

// Unwrap exposes the base error for errors.Is()/errors.As().
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readable error description.
func (e *Error) Error() string {
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error instance.
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}

// Config builds a recoverable configuration error.
func Config(format string, args ...interface{}) *Error {
	return New(ErrConfig, format, args...)
}

// fatal is a panic payload carrying one of our *Error values so a
// top-level recover() can tell an invariant violation apart from an
// unrelated runtime panic.
type fatal struct{ err *Error }

// Fatalf raises an invariant violation: the core never recovers from
// these itself (spec: "the core never recovers arithmetic errors; it
// treats them as invariant violations"). Callers at the process
// boundary (cmd/picalc) recover it and exit non-zero.
func Fatalf(sentinel error, format string, args ...interface{}) {
	panic(fatal{err: New(sentinel, format, args...)})
}

// Recover converts a panic raised by Fatalf into an error, leaving any
// other panic value to propagate unchanged. Intended for use in a
// deferred function at the process boundary only.
func Recover(rec interface{}) error {
	if rec == nil {
		return nil
	}
	if f, ok := rec.(fatal); ok {
		return f.err
	}
	panic(rec)
}
