package bignum

import (
	"math/big"
	"math/rand"
	"testing"
)

func randInt(seed int64, bytes int) *Int {
	buf := make([]byte, bytes)
	rand.New(rand.NewSource(seed)).Read(buf)
	return FromBig(new(big.Int).SetBytes(buf))
}

func TestMulAgreesAcrossThreshold(t *testing.T) {
	a := randInt(1, 2000/8)
	b := randInt(2, 2100/8)
	want := new(big.Int).Mul(a.Big(), b.Big())

	restore := SetBitThreshold(1 << 30) // force schoolbook/Karatsuba path
	got1 := a.Mul(b)
	restore()

	restore = SetBitThreshold(1) // force bigfft path
	got2 := a.Mul(b)
	restore()

	if got1.Cmp(FromBig(want)) != 0 {
		t.Fatalf("native-path mul mismatch")
	}
	if got2.Cmp(FromBig(want)) != 0 {
		t.Fatalf("bigfft-path mul mismatch")
	}
}

func TestDivExact(t *testing.T) {
	a := NewInt(221) // 13*17
	b := NewInt(13)
	got := a.DivExact(b)
	if got.Cmp(NewInt(17)) != 0 {
		t.Fatalf("DivExact(221,13) = %v, want 17", got.Big())
	}
}

func TestDivExactPanicsOnRemainder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-exact division")
		}
	}()
	NewInt(10).DivExact(NewInt(3))
}

func TestFMA(t *testing.T) {
	a, b, c, d := NewInt(2), NewInt(3), NewInt(4), NewInt(5)
	got := FMA(a, b, c, d) // 2*3 + 4*5 = 26
	if got.Cmp(NewInt(26)) != 0 {
		t.Fatalf("FMA = %v, want 26", got.Big())
	}
}

func TestSqrtUintPositive(t *testing.T) {
	s := SqrtUint(2, 256)
	sq := s.Mul(s)
	two := NewFloatFromInt(NewInt(2), 256)
	diff := new(big.Float).SetPrec(256).Sub(sq.Raw(), two.Raw())
	diff.Abs(diff)
	tol := new(big.Float).SetPrec(256).SetMantExp(big.NewFloat(1), -240)
	if diff.Cmp(tol) > 0 {
		t.Fatalf("sqrt(2)^2 too far from 2: diff=%v", diff)
	}
}
