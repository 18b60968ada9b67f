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

// Package picalog wires a single structured logger through the
// computation, replacing ad-hoc fmt/println output with zap fields that
// can be filtered and scraped like any other service log.
package picalog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console-encoded logger at the given level. debug=true
// selects development mode (caller info, DPanic on programmer errors);
// otherwise a terse production-style encoder is used.
func New(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	log, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than fail construction;
		// logging is never load-bearing for correctness.
		return zap.NewNop()
	}
	return log
}

// Stage returns a child logger tagged with the current pipeline stage,
// mirroring the teacher's practice of prefixing log lines with a
// bracketed component tag (e.g. "[Director]").
func Stage(log *zap.Logger, stage string) *zap.Logger {
	return log.With(zap.String("stage", stage))
}
