package edwards

import (
	"math/big"
	"testing"
)

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	if !IsOnCurve(g.X, g.Y) {
		t.Fatal("generator does not satisfy the curve equation")
	}
}

func TestScalarMulIdentities(t *testing.T) {
	g := Generator()

	if got := Mul(g, big.NewInt(0)); !got.IsNeutral() {
		t.Errorf("0*G = %v, want O", got)
	}
	if got := Mul(g, big.NewInt(1)); !Equals(got, g) {
		t.Errorf("1*G = %v, want G", got)
	}
	if got := Mul(g, R); !got.IsNeutral() {
		t.Errorf("R*G = %v, want O", got)
	}
}

func TestNegateAndDouble(t *testing.T) {
	g := Generator()
	negG := Negate(g)
	if got := Add(g, negG); !got.IsNeutral() {
		t.Errorf("G + (-G) = %v, want O", got)
	}
	doubled := Add(g, g)
	two := Mul(g, big.NewInt(2))
	if !Equals(doubled, two) {
		t.Errorf("G+G = %v, 2*G = %v, want equal", doubled, two)
	}
}

func TestScalarReductionModR(t *testing.T) {
	g := Generator()
	k := big.NewInt(12345)
	kPlusR := new(big.Int).Add(k, R)
	if got, want := Mul(g, kPlusR), Mul(g, k); !Equals(got, want) {
		t.Errorf("(k+R)*G = %v, k*G = %v, want equal", got, want)
	}
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	g := Generator()
	k := big.NewInt(17)
	l := big.NewInt(29)

	kG := Mul(g, k)
	lG := Mul(g, l)
	sumFirst := Mul(g, new(big.Int).Add(k, l))
	sumAfter := Add(kG, lG)
	if !Equals(sumFirst, sumAfter) {
		t.Errorf("(k+l)*G = %v, k*G + l*G = %v, want equal", sumFirst, sumAfter)
	}

	kPlus1 := Mul(g, new(big.Int).Add(k, big.NewInt(1)))
	kGPlusG := Add(kG, g)
	if !Equals(kPlus1, kGPlusG) {
		t.Errorf("(k+1)*G = %v, k*G + G = %v, want equal", kPlus1, kGPlusG)
	}
}

func TestScalarMulCommutesUnderComposition(t *testing.T) {
	g := Generator()
	k := big.NewInt(11)
	l := big.NewInt(13)

	klG := Mul(Mul(g, l), k)
	lkG := Mul(Mul(g, k), l)
	prod := Mul(g, new(big.Int).Mul(k, l))
	if !Equals(klG, lkG) || !Equals(klG, prod) {
		t.Errorf("k*(l*G), l*(k*G), (k*l)*G disagree: %v %v %v", klG, lkG, prod)
	}
}

func TestAdditionAssociative(t *testing.T) {
	g := Generator()
	a := Mul(g, big.NewInt(3))
	b := Mul(g, big.NewInt(5))
	c := Mul(g, big.NewInt(7))

	left := Add(Add(a, b), c)
	right := Add(a, Add(b, c))
	if !Equals(left, right) {
		t.Errorf("(A+B)+C = %v, A+(B+C) = %v, want equal", left, right)
	}
}

func TestDecompressRoundTrip(t *testing.T) {
	g := Generator()
	p := Mul(g, big.NewInt(42))
	parity := p.X.Bit(0)
	got, ok := Decompress(p.Y, parity)
	if !ok {
		t.Fatal("Decompress failed on a valid r-torsion point")
	}
	if !Equals(got, p) {
		t.Errorf("Decompress(P.y, parity(P.x)) = %v, want %v", got, p)
	}
}

func TestDecompressRejectsPointOutsideSubgroup(t *testing.T) {
	// y = 4 has the same x² as the generator's y = -4, so it decompresses
	// to an on-curve point: -G plus the order-2 point (0, -1). That point
	// has order 2R, so the r-torsion check must reject it.
	bogus := big.NewInt(4)
	_, ok := Decompress(bogus, 0)
	if ok {
		t.Error("Decompress accepted y = 4, a point outside the prime-order subgroup")
	}
}
