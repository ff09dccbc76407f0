// Package field implements modular arithmetic over F_p, p = 2^256 - 189,
// the base field of the NUMS-256 curve used by package edwards. Every
// exported function takes and returns values already reduced into
// [0, p), and treats its arguments as read-only.
package field

import "math/big"

// P is the field modulus, 2^256 - 189.
var P = mustP()

func mustP() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	p.Sub(p, big.NewInt(189))
	return p
}

// Reduce returns v mod p, normalized into [0, p).
func Reduce(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, P)
	return r
}

// Add returns (a + b) mod p.
func Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, P)
}

// Sub returns (a - b) mod p.
func Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, P)
}

// Mul returns (a * b) mod p.
func Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, P)
}

// Neg returns (-a) mod p.
func Neg(a *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, P)
}

// ModPow returns (a^e) mod p for e >= 0.
func ModPow(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, P)
}

// Inverse returns the multiplicative inverse of a mod p via the extended
// Euclidean algorithm (big.Int.ModInverse). It returns nil if a is not
// invertible mod p, which only occurs for a ≡ 0 since p is prime.
func Inverse(a *big.Int) *big.Int {
	r := new(big.Int).ModInverse(a, P)
	return r
}

// Div returns (a * b^-1) mod p. It returns nil if b has no inverse.
func Div(a, b *big.Int) *big.Int {
	bInv := Inverse(b)
	if bInv == nil {
		return nil
	}
	return Mul(a, bInv)
}

// pPlus1Over4 is the exponent used by the p ≡ 3 (mod 4) square-root
// shortcut: sqrt(v) = v^((p+1)/4) mod p.
var pPlus1Over4 = func() *big.Int {
	e := new(big.Int).Add(P, big.NewInt(1))
	return e.Rsh(e, 2)
}()

// Sqrt computes a square root of v mod p with the requested least-
// significant bit, using the p ≡ 3 (mod 4) shortcut candidate
// v^((p+1)/4). It returns nil if v has no square root mod p (the
// candidate, squared, does not reproduce v) — callers must treat a nil
// result as InvalidPoint, never as the neutral element.
func Sqrt(v *big.Int, wantLSB uint) *big.Int {
	cand := ModPow(v, pPlus1Over4)
	check := Mul(cand, cand)
	if check.Cmp(Reduce(v)) != 0 {
		return nil
	}
	if cand.Bit(0) != wantLSB {
		cand = Neg(cand)
	}
	return cand
}

// Equal reports whether a and b denote the same residue mod p.
func Equal(a, b *big.Int) bool {
	return Reduce(a).Cmp(Reduce(b)) == 0
}
