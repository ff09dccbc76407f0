// Package symstream provides a salsa20-keyed byte stream used by test
// infrastructure to generate large, reproducible pseudo-random inputs
// (the bulk-input hashing test in package sha3) without pulling the
// production encrypt/decrypt path into the dependency. It derives its
// key from package sponge directly rather than from package sha3, so
// that sha3's own tests can import it.
//
// It is not used by package protocol: the symmetric and ECIES modes
// derive their keystreams from SHAKE, per the spec's key schedule.
package symstream

import (
	"golang.org/x/crypto/salsa20"

	"github.com/westerntoad/ed256toolkit/sponge"
)

// Stretch derives a 32-byte salsa20 key and an 8-byte nonce from an
// arbitrary-length seed via SHAKE-256.
func Stretch(seed []byte) (key [32]byte, nonce [8]byte) {
	sp := sponge.New(256, sponge.DomainSHAKE)
	sp.Absorb(seed)
	out := sp.Squeeze(40)
	copy(key[:], out[:32])
	copy(nonce[:], out[32:40])
	return key, nonce
}

// Generate fills out with n bytes of the salsa20 keystream seeded
// deterministically from seed.
func Generate(seed []byte, n int) []byte {
	key, nonce := Stretch(seed)
	out := make([]byte, n)
	salsa20.XORKeyStream(out, out, nonce[:], &key)
	return out
}
