// Package sponge implements the Keccak sponge construction: absorb/squeeze
// over a rate/capacity split of the Keccak-f[1600] state, with multi-rate
// padding and domain separation. It is the layer the sha3 package's
// one-shot facade is built on; callers that need incremental control (a
// MAC over several fields, a stream of derived key material) use it
// directly.
//
// A Sponge is a mutable handle: Init, Absorb, PadAndFinalize and Squeeze
// mutate shared state and are not safe for concurrent use. Callers that
// need parallel hashing allocate distinct handles.
package sponge

import (
	"encoding/binary"

	"github.com/westerntoad/ed256toolkit/internal/keccak"
)

// direction tracks which phase of the sponge lifecycle a handle is in.
type direction int

const (
	uninitialized direction = iota
	absorbing
	squeezing
)

const (
	// DomainSHA3 is the FIPS 202 domain-separation byte for SHA-3.
	DomainSHA3 byte = 0x06
	// DomainSHAKE is the FIPS 202 domain-separation byte for SHAKE.
	DomainSHAKE byte = 0x1f
)

// Sponge is an owned, stateful handle over a Keccak-f[1600] permutation.
// The zero value is not usable; construct one with New or Init.
type Sponge struct {
	a         keccak.State
	rateBytes int
	pos       int
	dsbyte    byte
	dir       direction
}

// supportedSuffixes enumerates the capacities (in bits, halved) that
// Init accepts; any other suffix is a contract violation.
var supportedSuffixes = map[int]bool{128: true, 224: true, 256: true, 384: true, 512: true}

// New constructs and initializes a Sponge for the given suffix (one of
// 128, 224, 256, 384, 512) and domain-separation byte (DomainSHA3 or
// DomainSHAKE). It panics if suffix is unsupported, matching the
// ContractViolation error kind: this is a programming error, not a
// runtime condition callers can recover from.
func New(suffix int, dsbyte byte) *Sponge {
	s := &Sponge{}
	s.Init(suffix, dsbyte)
	return s
}

// Init (re)initializes the sponge: capacity = 2*suffix bits, rate =
// 1600 - capacity, state zeroed, position reset to zero. Transitions to
// the absorbing phase.
func (s *Sponge) Init(suffix int, dsbyte byte) {
	if !supportedSuffixes[suffix] {
		panic("sponge: unsupported suffix")
	}
	capacityBits := 2 * suffix
	rateBits := 1600 - capacityBits
	s.a = keccak.State{}
	s.rateBytes = rateBits / 8
	s.pos = 0
	s.dsbyte = dsbyte
	s.dir = absorbing
}

// Rate returns the rate of the sponge in bytes.
func (s *Sponge) Rate() int { return s.rateBytes }

// xorBlockInto XORs buf (which must be <= rateBytes) into the state starting
// at byte offset off, using the little-endian lane-major layout.
func xorBlockInto(a *keccak.State, off int, buf []byte) {
	i := 0
	for i < len(buf) {
		laneIdx := (off + i) / 8
		byteInLane := (off + i) % 8
		lane := &a[laneIdx/5][laneIdx%5]
		n := 8 - byteInLane
		if n > len(buf)-i {
			n = len(buf) - i
		}
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], *lane)
		for j := 0; j < n; j++ {
			tmp[byteInLane+j] ^= buf[i+j]
		}
		*lane = binary.LittleEndian.Uint64(tmp[:])
		i += n
	}
}

// copyBlockFrom copies n bytes of the state's rate block (byte offset 0)
// in little-endian lane-major order into out.
func copyBlockFrom(a *keccak.State, n int) []byte {
	out := make([]byte, n)
	i := 0
	for i < n {
		laneIdx := i / 8
		byteInLane := i % 8
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], a[laneIdx/5][laneIdx%5])
		m := 8 - byteInLane
		if m > n-i {
			m = n - i
		}
		copy(out[i:i+m], tmp[byteInLane:byteInLane+m])
		i += m
	}
	return out
}

// Absorb XORs len(p) input bytes into the state at successive positions
// starting at the current cursor, applying the permutation each time the
// cursor reaches a full rate block. It is a contract violation to call
// Absorb once the sponge has been finalized.
func (s *Sponge) Absorb(p []byte) {
	if s.dir != absorbing {
		panic("sponge: absorb after finalize")
	}
	for len(p) > 0 {
		space := s.rateBytes - s.pos
		n := space
		if n > len(p) {
			n = len(p)
		}
		xorBlockInto(&s.a, s.pos, p[:n])
		s.pos += n
		p = p[n:]
		if s.pos == s.rateBytes {
			keccak.Permute(&s.a)
			s.pos = 0
		}
	}
}

// PadAndFinalize XORs the domain-separation byte at the current cursor,
// XORs 0x80 at the last byte of the rate block, and permutes. It closes
// the absorbing phase; further Absorb calls are a contract violation.
func (s *Sponge) PadAndFinalize() {
	if s.dir != absorbing {
		panic("sponge: finalize called twice")
	}
	xorBlockInto(&s.a, s.pos, []byte{s.dsbyte})
	xorBlockInto(&s.a, s.rateBytes-1, []byte{0x80})
	keccak.Permute(&s.a)
	s.pos = 0
	s.dir = squeezing
}

// Squeeze produces n bytes, finalizing the absorb phase first if it
// hasn't happened yet. It is restartable across multiple calls; the
// cursor within the current rate block is tracked between calls.
func (s *Sponge) Squeeze(n int) []byte {
	if s.dir == absorbing {
		s.PadAndFinalize()
	}
	out := make([]byte, 0, n)
	block := copyBlockFrom(&s.a, s.rateBytes)
	for len(out) < n {
		take := s.rateBytes - s.pos
		if take > n-len(out) {
			take = n - len(out)
		}
		out = append(out, block[s.pos:s.pos+take]...)
		s.pos += take
		if s.pos == s.rateBytes {
			keccak.Permute(&s.a)
			s.pos = 0
			block = copyBlockFrom(&s.a, s.rateBytes)
		}
	}
	return out
}

// Digest finalizes and squeezes outputSize bytes in one call; it is
// equivalent to PadAndFinalize followed by Squeeze(outputSize), provided
// for the fixed-output SHA-3 facade where output never exceeds the rate.
func (s *Sponge) Digest(outputSize int) []byte {
	return s.Squeeze(outputSize)
}
