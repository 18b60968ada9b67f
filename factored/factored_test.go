package factored

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/bfix/picalc/sieve"
)

func TestToBigIntRoundTrip(t *testing.T) {
	s := sieve.Build(10000)
	for n := uint64(1); n < 10000; n += 37 {
		got := New(s, n).ToBigInt().Big()
		if got.Cmp(big.NewInt(int64(n))) != 0 {
			t.Fatalf("factor(%d).ToBigInt() = %v", n, got)
		}
	}
}

func TestMulMatchesBigIntProduct(t *testing.T) {
	s := sieve.Build(5000)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := uint64(r.Intn(4999) + 1)
		b := uint64(r.Intn(4999) + 1)
		fa, fb := New(s, a), New(s, b)
		got := fa.Mul(fb).ToBigInt().Big()
		want := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
		if got.Cmp(want) != 0 {
			t.Fatalf("mul(%d,%d) = %v, want %v", a, b, got, want)
		}
	}
}

func TestDivExact(t *testing.T) {
	s := sieve.Build(5000)
	a := New(s, 4620) // 2^2*3*5*7*11
	b := New(s, 60)   // 2^2*3*5
	got := a.DivExact(b).ToBigInt().Big()
	if got.Cmp(big.NewInt(77)) != 0 { // 4620/60 = 77 = 7*11
		t.Fatalf("divExact(4620,60) = %v, want 77", got)
	}
}

func TestDivExactFatalOnNonDivisor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: divisor does not divide dividend")
		}
	}()
	s := sieve.Build(5000)
	New(s, 10).DivExact(New(s, 4))
}

func TestGCDMatchesBigIntGCD(t *testing.T) {
	s := sieve.Build(5000)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := uint64(r.Intn(4999) + 1)
		b := uint64(r.Intn(4999) + 1)
		got := New(s, a).GCD(New(s, b)).ToBigInt().Big()
		want := new(big.Int).GCD(nil, nil, big.NewInt(int64(a)), big.NewInt(int64(b)))
		if got.Cmp(want) != 0 {
			t.Fatalf("gcd(%d,%d) = %v, want %v", a, b, got, want)
		}
	}
}

func TestAscendingPrimesPreserved(t *testing.T) {
	s := sieve.Build(5000)
	a, b := New(s, 2520), New(s, 360)
	for _, f := range []*Int{a.Mul(b), a.GCD(b), a.Clone().DivExact(b.GCD(a))} {
		for i := 1; i < len(f.terms); i++ {
			if f.terms[i-1].prime >= f.terms[i].prime {
				t.Fatalf("not strictly ascending: %v", f.terms)
			}
		}
		for _, tm := range f.terms {
			if tm.exp == 0 {
				t.Fatalf("zero exponent present: %v", f.terms)
			}
		}
	}
}
