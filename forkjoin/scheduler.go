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

// Package forkjoin provides the bounded-parallelism fork/join primitive
// the binary-splitting recursion (package bsplit) uses to parallelize
// itself. It generalizes the teacher's channel-based worker pool
// (concurrent.Dispatcher in this lineage's reference pool, which fans a
// fixed task/result channel pair out to N long-lived workers) into a
// recursive spawn/serial-fallback primitive: instead of a task queue, a
// combine step spawns its right subtree as a goroutine and runs its left
// subtree on the calling goroutine, joining both before combining.
//
// No explicit work-stealing deque is implemented. The Go runtime
// scheduler already steals runnable goroutines across Ps; gating
// concurrent goroutine creation with a bounded semaphore and letting the
// runtime place the resulting goroutines gets the same load balancing
// the teacher's worker pool gets from its fixed goroutines, without
// reimplementing a deque.
package forkjoin

import (
	"golang.org/x/sync/errgroup"
)

// Scheduler bounds in-flight recursion branches to a configured thread
// count and caps the fork depth, below which (or once the remaining
// interval is too small to be worth the spawn) the recursion runs
// sequentially on the calling goroutine.
type Scheduler struct {
	maxDepth   int
	leafCutoff uint64
	slots      chan struct{}
}

// DefaultLeafCutoff is the minimum interval width worth spawning a
// goroutine for; below it, fork-join overhead would dominate the actual
// work (spec §9, "Dynamic parallelism cutoff").
const DefaultLeafCutoff = 8

// New builds a scheduler allowing up to threads concurrent goroutines
// (beyond the caller's own) and capping spawns at maxDepth recursion
// levels. threads and maxDepth must already be resolved to concrete
// positive values -- see pi.Config.resolve for the "0 = auto" policy.
func New(threads, maxDepth int, leafCutoff uint64) *Scheduler {
	if threads < 1 {
		threads = 1
	}
	if leafCutoff == 0 {
		leafCutoff = DefaultLeafCutoff
	}
	return &Scheduler{
		maxDepth:   maxDepth,
		leafCutoff: leafCutoff,
		slots:      make(chan struct{}, threads),
	}
}

// MaxDepth returns the configured fork-depth cap.
func (s *Scheduler) MaxDepth() int {
	return s.maxDepth
}

// Fork runs left and right, possibly concurrently, and returns only
// after both have completed -- there is a happens-before edge from each
// child's completion to whatever the caller does next, matching the
// ownership-transfer model in the spec's concurrency section.
//
// depth is the current recursion depth (0 at the root) and width is the
// size of the interval being split; Fork only spawns a goroutine when
// depth is within the cap, the interval is wide enough to be worth it,
// and a pool slot is free -- otherwise both run sequentially on the
// calling goroutine, which is always correct and never blocks waiting
// for capacity.
func (s *Scheduler) Fork(depth int, width uint64, left, right func()) {
	if depth > s.maxDepth || width < s.leafCutoff {
		left()
		right()
		return
	}
	select {
	case s.slots <- struct{}{}:
	default:
		// Pool saturated: run both on the calling goroutine rather than
		// block waiting for a slot a sibling might be holding.
		left()
		right()
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		defer func() { <-s.slots }()
		right()
		return nil
	})
	left()
	_ = g.Wait() // child never returns a non-nil error; a fatal panic in it aborts the process, per spec
}
