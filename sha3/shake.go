// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file defines the ShakeHash interface, and provides
// functions for creating SHAKE instances, as well as utility
// functions for hashing bytes to arbitrary-length output.
import (
	"io"

	"github.com/westerntoad/ed256toolkit/sponge"
)

// ShakeHash defines the interface to hash functions that
// support arbitrary-length output.
type ShakeHash interface {
	// Write absorbs more data into the hash's state. It panics if input is
	// written to it after output has been read from it.
	io.Writer

	// Read reads more output from the hash; reading affects the hash's
	// state. (ShakeHash.Read is thus very different from Hash.Sum)
	// It never returns an error.
	io.Reader

	// Pad finalizes the absorb phase: it xors the hash's own SHAKE
	// domain-separation byte in, applies multi-bitrate padding, and
	// permutes. The dsbyte argument is not used; a different domain
	// byte cannot be selected through this method.
	Pad(dsbyte byte)

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset resets the ShakeHash to its initial state.
	Reset()
}

// shakeState adapts a *sponge.Sponge to ShakeHash.
type shakeState struct {
	sp     *sponge.Sponge
	suffix int
}

func (s *shakeState) Write(p []byte) (int, error) {
	s.sp.Absorb(p)
	return len(p), nil
}

func (s *shakeState) Read(p []byte) (int, error) {
	out := s.sp.Squeeze(len(p))
	copy(p, out)
	return len(p), nil
}

func (s *shakeState) Pad(dsbyte byte) { s.sp.PadAndFinalize() }

func (s *shakeState) Clone() ShakeHash {
	dup := *s.sp
	return &shakeState{sp: &dup, suffix: s.suffix}
}

func (s *shakeState) Reset() { s.sp.Init(s.suffix, sponge.DomainSHAKE) }

var _ ShakeHash = (*shakeState)(nil)

// NewShake128 creates a new SHAKE128 variable-output-length ShakeHash.
// Its generic security strength is 128 bits against all attacks if at
// least 32 bytes of its output are used.
func NewShake128() ShakeHash {
	return &shakeState{sp: sponge.New(128, sponge.DomainSHAKE), suffix: 128}
}

// NewShake256 creates a new SHAKE256 variable-output-length ShakeHash.
// Its generic security strength is 256 bits against all attacks if
// at least 64 bytes of its output are used.
func NewShake256() ShakeHash {
	return &shakeState{sp: sponge.New(256, sponge.DomainSHAKE), suffix: 256}
}

// ShakeSum128 writes an arbitrary-length digest of data into hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	h.Write(data)
	h.Read(hash)
}

// ShakeSum256 writes an arbitrary-length digest of data into hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	h.Write(data)
	h.Read(hash)
}

// Shake computes shake(suffix, msg, lBits): init(suffix); absorb(msg);
// pad(SHAKE); squeeze(lBits/8). lBits must be a positive multiple of 8;
// violating that is a contract violation (panic).
func Shake(suffix int, msg []byte, lBits int) []byte {
	if lBits <= 0 || lBits%8 != 0 {
		panic("sha3: shake output length must be a positive multiple of 8 bits")
	}
	var h ShakeHash
	switch suffix {
	case 128:
		h = NewShake128()
	case 256:
		h = NewShake256()
	default:
		panic("sha3: unsupported shake suffix")
	}
	h.Write(msg)
	out := make([]byte, lBits/8)
	h.Read(out)
	return out
}
