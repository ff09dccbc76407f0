package protocol

import (
	"math/big"

	"github.com/westerntoad/ed256toolkit/edwards"
	"github.com/westerntoad/ed256toolkit/sha3"
)

// Signature is a Schnorr signature (h, z), both reduced mod R.
type Signature struct {
	H, Z *big.Int
}

// challengeHash computes SHA3-256(commitmentY || message) reduced mod R.
func challengeHash(commitmentY *big.Int, message []byte) *big.Int {
	input := append(append([]byte{}, commitmentY.Bytes()...), message...)
	digest := sha3.Sum3(256, input)
	h := new(big.Int).SetBytes(digest)
	return h.Mod(h, edwards.R)
}

// Sign produces a Schnorr signature over message under the private key
// derived from passphrase (the canonicalized scalar of Keygen, so that
// it matches the persisted public key): sample an ephemeral scalar k,
// commit to U = k*G, hash U.y || message to get the challenge h, and
// respond with z = (k - h*s) mod R.
func Sign(passphrase, message []byte) (Signature, error) {
	s := Keygen(passphrase).Scalar
	k, err := randomScalar()
	if err != nil {
		return Signature{}, err
	}
	u := edwards.Mul(edwards.Generator(), k)
	h := challengeHash(u.Y, message)

	hs := new(big.Int).Mul(h, s)
	z := new(big.Int).Sub(k, hs)
	z.Mod(z, edwards.R)

	return Signature{H: h, Z: z}, nil
}

// Verify checks a Schnorr signature over message against public key v,
// rejecting v as ErrInvalidPoint unless it is O or a member of the
// prime-order subgroup. It then recomputes the commitment as
// U' = z*G + h*V and accepts iff the recomputed challenge hash h'
// equals the signature's h.
func Verify(message []byte, sig Signature, v edwards.Point) error {
	if !edwards.Validate(v) {
		return ErrInvalidPoint
	}
	zg := edwards.Mul(edwards.Generator(), sig.Z)
	hv := edwards.Mul(v, sig.H)
	uPrime := edwards.Add(zg, hv)

	hPrime := challengeHash(uPrime.Y, message)
	if hPrime.Cmp(sig.H) != 0 {
		return ErrInvalidSignature
	}
	return nil
}
