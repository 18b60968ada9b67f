package reduce

import (
	"math/big"
	"testing"

	"github.com/bfix/picalc/bsplit"
	"github.com/bfix/picalc/forkjoin"
	"github.com/bfix/picalc/sieve"
)

func TestExtractDigitsKnownValue(t *testing.T) {
	x, _, err := big.ParseFloat("3.14159265358979", 10, 200, big.ToNearestEven)
	if err != nil {
		t.Fatalf("ParseFloat: %v", err)
	}
	got := string(extractDigits(x, 10, 14))
	want := "14159265358979"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractDigitsZeroFraction(t *testing.T) {
	x := new(big.Float).SetPrec(64).SetInt64(3)
	got := string(extractDigits(x, 16, 5))
	if got != "00000" {
		t.Fatalf("got %q, want %q", got, "00000")
	}
}

func TestDigitsMatchesKnownPi(t *testing.T) {
	const n = 20 // terms; ~14.18 correct decimal digits each
	const prec = 400

	s := sieve.Build(bsplit.MinSieveBound)
	sched := forkjoin.New(1, 0, 1<<30)
	triple := bsplit.Split(1, n, s, sched)

	got := string(Digits(triple.Q.Num, triple.R.Num, prec, 10, 20))
	want := "14159265358979323846"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
