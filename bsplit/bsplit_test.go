package bsplit

import (
	"testing"

	"github.com/bfix/picalc/forkjoin"
	"github.com/bfix/picalc/sieve"
)

func TestGCDReductionPreservesRatio(t *testing.T) {
	s := sieve.Build(MinSieveBound)

	var splitRaw func(a, b uint64) Triple
	splitRaw = func(a, b uint64) Triple {
		if b-a == 1 {
			return Leaf(a, s)
		}
		mid := a + (b-a)/2
		l, r := splitRaw(a, mid), splitRaw(mid, b)
		// raw R, no reduction
		rNum := r.Q.Num.Mul(l.R.Num).Add(l.P.Num.Mul(r.R.Num))
		p := Triple{
			P: NumFac{Num: l.P.Num.Mul(r.P.Num), Fac: l.P.Fac.Mul(r.P.Fac)},
			Q: NumFac{Num: l.Q.Num.Mul(r.Q.Num), Fac: l.Q.Fac.Mul(r.Q.Fac)},
			R: NumFac{Num: rNum, Fac: l.P.Fac.GCD(r.R.Fac)},
		}
		return p
	}

	sched := forkjoin.New(1, 0, 1000000) // effectively sequential
	for _, n := range []uint64{2, 3, 4, 6, 9, 16, 33} {
		reduced := Split(1, n, s, sched)
		raw := splitRaw(1, n)

		// Same ratio Q/R: cross-multiply to avoid division.
		lhs := reduced.Q.Num.Mul(raw.R.Num)
		rhs := raw.Q.Num.Mul(reduced.R.Num)
		if lhs.Cmp(rhs) != 0 {
			t.Fatalf("N=%d: reduced and raw triples disagree on Q/R ratio", n)
		}
	}
}

func TestSplitDeterministicAcrossThreadCounts(t *testing.T) {
	s := sieve.Build(MinSieveBound)
	const n = 200
	var results []Triple
	for _, threads := range []int{1, 2, 4, 8} {
		sched := forkjoin.New(threads, 4, 4)
		results = append(results, Split(1, n, s, sched))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Q.Num.Cmp(results[0].Q.Num) != 0 {
			t.Fatalf("Q differs across thread counts at index %d", i)
		}
		if results[i].R.Num.Cmp(results[0].R.Num) != 0 {
			t.Fatalf("R differs across thread counts at index %d", i)
		}
		if results[i].P.Num.Cmp(results[0].P.Num) != 0 {
			t.Fatalf("P differs across thread counts at index %d", i)
		}
	}
}

func TestSplitDeterministicAcrossMaxDepth(t *testing.T) {
	s := sieve.Build(MinSieveBound)
	const n = 200
	var results []Triple
	for _, depth := range []int{0, 1, 3, 8} {
		sched := forkjoin.New(4, depth, 4)
		results = append(results, Split(1, n, s, sched))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Q.Num.Cmp(results[0].Q.Num) != 0 || results[i].R.Num.Cmp(results[0].R.Num) != 0 {
			t.Fatalf("result differs across max-parallel-depth at index %d", i)
		}
	}
}
