// Package edwards implements affine point arithmetic on NUMS-256, a
// twisted Edwards curve x² + y² ≡ 1 + d·x²·y² (mod p) over the field
// implemented by package field, with d = 15343.
//
// Point is a free-standing value type: it does not nest inside a curve
// object, and every Point returned by a constructor in this package is
// either the neutral element or a member of the prime-order subgroup
// of order R. Callers that hold a Point built any other way (for
// instance, by zero-valuing the struct, or filling in X and Y directly
// from a parsed file) get no such guarantee and must run it through
// Validate before using it in a group operation.
package edwards

import (
	"math/big"

	"github.com/westerntoad/ed256toolkit/field"
)

// D is the twisted Edwards curve parameter.
var D = big.NewInt(15343)

// R is the prime order of the subgroup generated by G:
// r = 2^254 - 87175310462106073678594642380840586067.
var R = mustR()

func mustR() *big.Int {
	r := new(big.Int).Lsh(big.NewInt(1), 254)
	sub, ok := new(big.Int).SetString("87175310462106073678594642380840586067", 10)
	if !ok {
		panic("edwards: bad R constant")
	}
	return r.Sub(r, sub)
}

// Point is an affine point (X, Y) on NUMS-256, or the neutral element O.
type Point struct {
	X, Y *big.Int
}

// Neutral is the identity element O = (0, 1).
func Neutral() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1)}
}

// IsNeutral reports whether p is the identity element.
func (p Point) IsNeutral() bool {
	return field.Equal(p.X, big.NewInt(0)) && field.Equal(p.Y, big.NewInt(1))
}

// IsOnCurve reports whether (x, y) satisfies the NUMS-256 curve equation.
func IsOnCurve(x, y *big.Int) bool {
	x2 := field.Mul(x, x)
	y2 := field.Mul(y, y)
	lhs := field.Add(x2, y2)
	rhs := field.Add(big.NewInt(1), field.Mul(D, field.Mul(x2, y2)))
	return field.Equal(lhs, rhs)
}

// Generator returns the distinguished base point G: the point whose y
// coordinate is (-4) mod p, with the even choice of x.
func Generator() Point {
	y := field.Reduce(big.NewInt(-4))
	g, ok := Decompress(y, 0)
	if !ok {
		panic("edwards: generator does not decompress")
	}
	return g
}

// Decompress reconstructs a point from its y coordinate and the
// requested parity of x, solving x² = (1 - y²)/(1 - d·y²) mod p. It
// returns (Point{}, false) if no square root exists, or if Validate
// rejects the candidate — the r-torsion check is mandatory and guards
// against small-subgroup attacks. Callers MUST treat a false return as
// InvalidPoint, never substitute the neutral element.
func Decompress(y *big.Int, xLSB uint) (Point, bool) {
	y2 := field.Mul(y, y)
	num := field.Sub(big.NewInt(1), y2)
	den := field.Sub(big.NewInt(1), field.Mul(D, y2))
	xx := field.Div(num, den)
	if xx == nil {
		return Point{}, false
	}
	x := field.Sqrt(xx, xLSB)
	if x == nil {
		return Point{}, false
	}
	candidate := Point{X: x, Y: field.Reduce(y)}
	if !Validate(candidate) {
		return Point{}, false
	}
	return candidate, true
}

// Validate reports whether p is a legitimate group element: either the
// neutral element O, or an on-curve point whose order divides R.
// Decompress already enforces this for any point it builds, so callers
// only need Validate directly when a Point reaches them some other
// way — most importantly, coordinates read back from an untrusted
// file or wire record and assembled into a Point by hand. Any such
// Point MUST be passed through Validate (or rebuilt via Decompress)
// before it is used in a group operation; never trust raw coordinates.
func Validate(p Point) bool {
	if p.X == nil || p.Y == nil {
		return false
	}
	if p.IsNeutral() {
		return true
	}
	if !IsOnCurve(p.X, p.Y) {
		return false
	}
	return inPrimeSubgroup(p)
}

// inPrimeSubgroup reports whether R*p equals the neutral element. Mul
// reduces its scalar mod R, so R*p is computed as (R-1)*p + p.
func inPrimeSubgroup(p Point) bool {
	rMinus1 := new(big.Int).Sub(R, big.NewInt(1))
	return Add(Mul(p, rMinus1), p).IsNeutral()
}

// Add computes P + Q via complete twisted Edwards addition, treating
// the neutral element specially since it has no affine inverse for D.
func Add(p, q Point) Point {
	if p.IsNeutral() {
		return q
	}
	if q.IsNeutral() {
		return p
	}
	x1, y1 := p.X, p.Y
	x2, y2 := q.X, q.Y
	dCross := field.Mul(D, field.Mul(field.Mul(x1, x2), field.Mul(y1, y2)))
	xNum := field.Add(field.Mul(x1, y2), field.Mul(y1, x2))
	xDen := field.Add(big.NewInt(1), dCross)
	yNum := field.Sub(field.Mul(y1, y2), field.Mul(x1, x2))
	yDen := field.Sub(big.NewInt(1), dCross)
	x3 := field.Div(xNum, xDen)
	y3 := field.Div(yNum, yDen)
	return Point{X: x3, Y: y3}
}

// Negate returns -P = (-x mod p, y).
func Negate(p Point) Point {
	if p.IsNeutral() {
		return p
	}
	return Point{X: field.Neg(p.X), Y: field.Reduce(p.Y)}
}

// Equals reports component-wise equality of two points.
func Equals(p, q Point) bool {
	if p.IsNeutral() || q.IsNeutral() {
		return p.IsNeutral() == q.IsNeutral()
	}
	return field.Equal(p.X, q.X) && field.Equal(p.Y, q.Y)
}

// Mul computes m*P by left-to-right double-and-add, after reducing m
// mod R. The iteration count is fixed at R's bit length regardless of
// m's reduced value, per the spec's fixed-iteration-count requirement;
// this is not a constant-time implementation (the branch taken per bit
// is data-dependent), only a constant-iteration-count one.
func Mul(p Point, m *big.Int) Point {
	k := new(big.Int).Mod(m, R)
	acc := Neutral()
	bits := R.BitLen()
	for i := bits - 1; i >= 0; i-- {
		acc = Add(acc, acc)
		if k.Bit(i) == 1 {
			acc = Add(acc, p)
		}
	}
	return acc
}
