package protocol

import "errors"

// Sentinel errors for the four user-facing error kinds a protocol
// operation can surface. ContractViolation (malformed suffix, absorb
// after finalize, and the like) is not among these: those are
// programming errors and panic instead, matching package sponge.
//
// Callers should compare with errors.Is; wrapped context is added with
// github.com/pkg/errors so a %+v format still prints a stack trace.
var (
	// ErrInvalidEncoding covers malformed hex, a public-key or
	// ciphertext file with the wrong number of lines, or an odd-length
	// hex payload.
	ErrInvalidEncoding = errors.New("protocol: invalid encoding")

	// ErrInvalidPoint covers a decompression failure: no square root,
	// or the candidate point is not in the prime-order subgroup. Never
	// substitute the neutral element for a point that fails this check.
	ErrInvalidPoint = errors.New("protocol: invalid point")

	// ErrInvalidTag covers a symmetric or ECIES MAC mismatch. Surfaced
	// without releasing any recovered plaintext.
	ErrInvalidTag = errors.New("protocol: invalid authentication tag")

	// ErrInvalidSignature covers h != h' on Schnorr verification.
	ErrInvalidSignature = errors.New("protocol: invalid signature")
)
