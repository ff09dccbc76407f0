// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 is the fixed-output (SHA3-224/256/384/512) and
// variable-output (SHAKE128/256) facade over package sponge. It owns
// no permutation or absorb/squeeze logic of its own: every exported
// constructor here is a thin wrapper that picks a suffix and a
// domain-separation byte and hands the rest to a sponge.Sponge.
//
// This package is one of two primitive layers the rest of this
// toolkit is built from — field and edwards are the other, carrying
// the F_p and NUMS-256 group arithmetic. Neither layer knows about
// the other; the protocol package is where symmetric encryption,
// ECIES, and Schnorr signatures are composed out of both. Keyed
// hashing and MACs are done by the CLI directly on this package.
//
//
// Choosing a function
//
// Sum3 (SHA3-224/256/384/512) is a drop-in replacement for the SHA-2
// family at the same output length, with the same security strength
// against all attacks. Shake (SHAKE128/256) instead produces output of
// any requested length; reach for it when the protocol calls for a
// key-derivation step, a keystream, or more than 64 bytes of digest —
// package protocol's ECIES and symmetric-AEAD key schedules are built
// entirely on Shake, never on the fixed-output functions.
//
// A keyed MAC is not a distinct primitive here: absorb the key, then
// the message, into a Shake sponge and squeeze at least 32 bytes.
// The CLI's mac command does exactly this with a passphrase from argv.
// package protocol's ECIES and symmetric tags are instead SHA3-256
// (Sum3) over the key material followed by the ciphertext.
//
//
// Security strengths of functions
//
//           output  collision-resistance  preimage-resistance   recommendation
// SHA3-224     28B              112 bits             224 bits   legacy
// SHA3-256     32B              128 bits             256 bits   until 2030
// SHA3-384     48B              192 bits             384 bits
// SHA3-512     64B              256 bits             512 bits
//
//           output  collision-resistance  preimage-resistance   recommendation
// SHAKE128  >= 32B              128 bits             128 bits   until 2030
// SHAKE256  >= 64B              256 bits             256 bits
//
// (Requesting more than 32B or 64B of output from SHAKE128 or SHAKE256
// respectively does not raise their collision-resistance above 128 or
// 256 bits; the extra output is for key-derivation and keystream uses,
// not extra hash strength.)
//
//
// Relationship to package sponge
//
// sponge.New(suffix, dsbyte) picks the rate/capacity split from the
// suffix (capacity = 2*suffix bits) and the padding's domain-separation
// byte from dsbyte (sponge.DomainSHA3 or sponge.DomainSHAKE). This
// package's constructors are exactly that call plus a type that
// implements hash.Hash or ShakeHash on top of it — Write feeds
// sponge.Absorb, Sum/Read feed sponge.Squeeze after a single internal
// sponge.PadAndFinalize. Anything that needs to interleave several
// absorbed fields before committing to a single finalize (a MAC over
// a length-prefixed header, for instance) can skip this package
// entirely and drive a *sponge.Sponge directly; nothing in this
// toolkit currently needs to — package protocol's ECIES and
// symmetric constructions all concatenate their fields before a single
// call into Shake or Sum3, so the one-shot facade below is sufficient.
package sha3
