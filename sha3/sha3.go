// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA-3 fixed-output-length hash functions and
// the SHAKE variable-output-length hash functions defined by FIPS-202, as a
// thin facade over the Keccak sponge in package sponge: it only selects
// rate, capacity, and the domain-separation pad byte per named variant.
package sha3

import (
	"hash"

	"github.com/westerntoad/ed256toolkit/sponge"
)

// digest adapts a *sponge.Sponge to the standard library's hash.Hash
// interface for the four fixed-output SHA3 variants.
type digest struct {
	sp         *sponge.Sponge
	suffix     int
	outputSize int
}

func newDigest(suffix int) *digest {
	return &digest{
		sp:         sponge.New(suffix, sponge.DomainSHA3),
		suffix:     suffix,
		outputSize: suffix / 8,
	}
}

// Write absorbs p into the hash state.
func (d *digest) Write(p []byte) (int, error) {
	d.sp.Absorb(p)
	return len(p), nil
}

// Reset reinitializes the digest to an empty absorbing state.
func (d *digest) Reset() { d.sp.Init(d.suffix, sponge.DomainSHA3) }

// Size returns the output size of the hash function in bytes.
func (d *digest) Size() int { return d.outputSize }

// BlockSize returns the sponge's rate, the number of bytes that can be
// absorbed per call to the underlying permutation.
func (d *digest) BlockSize() int { return d.sp.Rate() }

// Sum appends the digest of the bytes written so far to in and returns
// the result. It squeezes from a copy of the sponge so the receiver can
// keep absorbing after Sum, mirroring hash.Hash's contract.
func (d *digest) Sum(in []byte) []byte {
	dup := *d.sp
	return append(in, dup.Digest(d.outputSize)...)
}

var _ hash.Hash = (*digest)(nil)

// New224 creates a new SHA3-224 hash.Hash.
func New224() hash.Hash { return newDigest(224) }

// New256 creates a new SHA3-256 hash.Hash.
func New256() hash.Hash { return newDigest(256) }

// New384 creates a new SHA3-384 hash.Hash.
func New384() hash.Hash { return newDigest(384) }

// New512 creates a new SHA3-512 hash.Hash.
func New512() hash.Hash { return newDigest(512) }

// newBySuffix dispatches to the constructor for suffix, panicking (a
// ContractViolation) if suffix isn't one of the four SHA3 variants.
func newBySuffix(suffix int) hash.Hash {
	switch suffix {
	case 224:
		return New224()
	case 256:
		return New256()
	case 384:
		return New384()
	case 512:
		return New512()
	default:
		panic("sha3: unsupported suffix")
	}
}

// Sum3 computes SHA3-suffix(msg): init(suffix); absorb(msg); digest().
// suffix must be one of 224, 256, 384, 512.
func Sum3(suffix int, msg []byte) []byte {
	h := newBySuffix(suffix)
	h.Write(msg)
	return h.Sum(nil)
}
