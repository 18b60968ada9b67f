package forkjoin

import (
	"sync/atomic"
	"testing"
)

func TestForkRunsBothSides(t *testing.T) {
	s := New(4, 8, 1)
	var l, r int32
	s.Fork(0, 100, func() { atomic.AddInt32(&l, 1) }, func() { atomic.AddInt32(&r, 1) })
	if l != 1 || r != 1 {
		t.Fatalf("left=%d right=%d, want 1,1", l, r)
	}
}

func TestForkSequentialBelowCutoff(t *testing.T) {
	s := New(4, 8, 100)
	var order []int
	s.Fork(0, 4, // width below leafCutoff=100
		func() { order = append(order, 1) },
		func() { order = append(order, 2) })
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected strictly sequential left-then-right, got %v", order)
	}
}

func TestForkSequentialBelowMaxDepth(t *testing.T) {
	s := New(4, 0, 1) // maxDepth 0: only depth<=0 parallel
	var order []int
	s.Fork(5, 1000,
		func() { order = append(order, 1) },
		func() { order = append(order, 2) })
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected sequential past max depth, got %v", order)
	}
}

func TestForkDeepRecursionTerminates(t *testing.T) {
	s := New(4, 6, 1)
	var total int64
	var rec func(depth int, n int)
	rec = func(depth int, n int) {
		if n <= 1 {
			atomic.AddInt64(&total, 1)
			return
		}
		mid := n / 2
		s.Fork(depth, uint64(n),
			func() { rec(depth+1, mid) },
			func() { rec(depth+1, n-mid) })
	}
	rec(0, 5000)
	if total != 5000 {
		t.Fatalf("total leaves = %d, want 5000", total)
	}
}
