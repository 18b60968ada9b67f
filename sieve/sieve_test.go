package sieve

import "testing"

func product(terms []Term) uint64 {
	v := uint64(1)
	for _, t := range terms {
		for i := uint32(0); i < t.Exp; i++ {
			v *= t.Prime
		}
	}
	return v
}

func TestFactorRoundTrip(t *testing.T) {
	const bound = 200000
	s := Build(bound)
	for n := uint64(1); n <= bound; n++ {
		got := product(s.Factor(n))
		if got != n {
			t.Fatalf("factor(%d) round-trips to %d", n, got)
		}
	}
}

func TestFactorAscendingPrimes(t *testing.T) {
	s := Build(100000)
	for n := uint64(2); n <= 100000; n++ {
		terms := s.Factor(n)
		for i := 1; i < len(terms); i++ {
			if terms[i-1].Prime >= terms[i].Prime {
				t.Fatalf("factor(%d) not strictly ascending: %v", n, terms)
			}
			if terms[i].Exp == 0 {
				t.Fatalf("factor(%d) has zero exponent: %v", n, terms)
			}
		}
	}
}

func TestFactorOne(t *testing.T) {
	s := Build(1000)
	if terms := s.Factor(1); len(terms) != 0 {
		t.Fatalf("factor(1) should be empty, got %v", terms)
	}
}

func TestFactorKnownPrime(t *testing.T) {
	s := Build(1000000)
	terms := s.Factor(999983)
	if len(terms) != 1 || terms[0].Prime != 999983 || terms[0].Exp != 1 {
		t.Fatalf("factor(999983) = %v, want [(999983,1)]", terms)
	}
}

func TestFactorOutOfRangeFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-range sieve access")
		}
	}()
	s := Build(100)
	s.Factor(10000)
}
