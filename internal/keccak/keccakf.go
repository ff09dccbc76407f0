// Package keccak implements the Keccak-f[1600] permutation: 24 rounds of
// Theta, Rho, Pi, Chi, Iota over a 5x5 matrix of 64-bit lanes.
//
// This is a pure function on a fixed-size state; it performs no I/O and
// cannot fail.
package keccak

// State is the 5x5 lane matrix of a Keccak-f[1600] state, indexed so that
// bit (x, y, z) lives at State[y][x] >> z & 1.
type State [5][5]uint64

const rounds = 24

// roundConstants is the standard Keccak round-constant table, one value
// per round, XORed into lane (0,0) during Iota.
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets[y][x] is the rotation constant table T from the spec: row 1
// (y=0) is {0,1,62,28,27}, row 2 (y=1) is {36,44,6,55,20}, and so on.
var rhoOffsets = [5][5]uint{
	{0, 1, 62, 28, 27},
	{36, 44, 6, 55, 20},
	{3, 10, 43, 25, 39},
	{41, 45, 15, 21, 8},
	{18, 2, 61, 56, 14},
}

func rotl64(x uint64, n uint) uint64 {
	n &= 63
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// theta XORs into each lane the parity of the two neighboring columns.
func theta(a *State) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[0][x] ^ a[1][x] ^ a[2][x] ^ a[3][x] ^ a[4][x]
	}
	var d [5]uint64
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[y][x] ^= d[x]
		}
	}
}

// rhoPi first rotates each lane by its rho offset into a scratch state, then applies
// the pi permutation A'[y][x] = A[x][(x+3y) mod 5] to the rotated lanes.
func rhoPi(a *State) {
	var rotated State
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			rotated[y][x] = rotl64(a[y][x], rhoOffsets[y][x])
		}
	}
	var b State
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b[y][x] = rotated[x][(x+3*y)%5]
		}
	}
	*a = b
}

// chi processes each row with a row-local snapshot so that reads observe
// pre-update values.
func chi(a *State) {
	for y := 0; y < 5; y++ {
		var row [5]uint64
		row = a[y]
		for x := 0; x < 5; x++ {
			a[y][x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// iota xors the round constant into lane (0,0).
func iota(a *State, round int) {
	a[0][0] ^= roundConstants[round]
}

// Permute applies the 24-round Keccak-f[1600] permutation in place.
func Permute(a *State) {
	for r := 0; r < rounds; r++ {
		theta(a)
		rhoPi(a)
		chi(a)
		iota(a, r)
	}
}
