// Package protocol composes the sponge and edwards primitives into
// passphrase key derivation, symmetric AEAD, ECIES-style public-key
// encryption, and Schnorr signatures. Keyed hashing and MAC, the other
// two user-facing services, are not here: the CLI builds them directly
// on package sha3.
package protocol

import (
	"math/big"

	"github.com/westerntoad/ed256toolkit/edwards"
	"github.com/westerntoad/ed256toolkit/sha3"
)

// KeyPair is a derived private scalar and its canonicalized public
// point. The private scalar is never persisted; only the passphrase it
// was derived from is the user's long-term secret.
type KeyPair struct {
	Scalar *big.Int
	Public edwards.Point
}

// privateScalarByteLen is ceil(bits(R)/8)*2, the number of SHAKE-128
// output bytes absorbed into the private scalar per the key-derivation
// rule: squeezing twice the minimum byte length biases the reduction
// mod R by a negligible amount rather than a merely small one.
func privateScalarByteLen() int {
	bitsR := edwards.R.BitLen()
	bytesR := (bitsR + 7) / 8
	return bytesR * 2
}

// PrivateScalar derives the private scalar for a passphrase: absorb the
// passphrase bytes into SHAKE-128, squeeze 2*ceil(bits(R)/8) bytes,
// interpret big-endian, reduce mod R.
func PrivateScalar(passphrase []byte) *big.Int {
	out := sha3.Shake(128, passphrase, privateScalarByteLen()*8)
	s := new(big.Int).SetBytes(out)
	return s.Mod(s, edwards.R)
}

// Keygen derives a KeyPair from a passphrase. It canonicalizes the
// public key so that the x-coordinate's parity bit is always 0: if
// V.x is odd, s is replaced by R-s and V by -V. This lets the
// persisted public-key file omit the parity bit, and lets the signer
// recompute s from the passphrase alone on every future call without
// storing which branch was taken.
func Keygen(passphrase []byte) KeyPair {
	s := PrivateScalar(passphrase)
	v := edwards.Mul(edwards.Generator(), s)
	if v.X.Bit(0) == 1 {
		s = new(big.Int).Sub(edwards.R, s)
		s.Mod(s, edwards.R)
		v = edwards.Negate(v)
	}
	return KeyPair{Scalar: s, Public: v}
}
