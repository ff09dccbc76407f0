package protocol

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"

	"github.com/pkg/errors"

	"github.com/westerntoad/ed256toolkit/edwards"
	"github.com/westerntoad/ed256toolkit/sha3"
)

// Ciphertext is the ECIES-style record (Z.x, Z.y, c, t): the ephemeral
// public point Z, the masked payload c (|c| = |plaintext|), and a
// 32-byte SHA3-256 authentication tag t.
type Ciphertext struct {
	Z Point
	C []byte
	T [32]byte
}

// Point is a serializable pair of field coordinates, used at the
// protocol boundary where edwards.Point would otherwise leak the
// r-torsion-checked invariant into a plain data record.
type Point struct {
	X, Y *big.Int
}

// randomScalar draws ceil(bits(R)/8) random bytes from crypto/rand and
// reduces them mod R. The reduction bias is negligible at this bit length, so
// no rejection sampling is performed.
func randomScalar() (*big.Int, error) {
	byteLen := (edwards.R.BitLen() + 7) / 8
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "protocol: reading randomness")
	}
	k := new(big.Int).SetBytes(buf)
	return k.Mod(k, edwards.R), nil
}

// deriveKeys absorbs the shared point's y coordinate into SHAKE-256 and
// squeezes two 32-byte keys: ka (MAC key) then ke (stream key), per the
// ECIES key-schedule.
func deriveKeys(sharedY *big.Int) (ka, ke []byte) {
	h := sha3.NewShake256()
	h.Write(sharedY.Bytes())
	out := make([]byte, 64)
	h.Read(out)
	return out[:32], out[32:]
}

// maskStream derives the |n|-byte SHAKE-128 keystream used to mask the
// payload, keyed on ke.
func maskStream(ke []byte, n int) []byte {
	if n == 0 {
		return nil
	}
	return sha3.Shake(128, ke, n*8)
}

// Encrypt implements the ECIES-style hybrid encryption of M under the
// recipient's public key V: V is rejected as ErrInvalidPoint unless it
// is O or a member of the prime-order subgroup, an ephemeral scalar k
// is sampled, W = k*V and Z = k*G are computed, ka/ke are derived from
// W.y, the payload is masked with a SHAKE-128 keystream under ke, and
// the tag is SHA3-256(ka || c).
func Encrypt(plaintext []byte, v edwards.Point) (Ciphertext, error) {
	if !edwards.Validate(v) {
		return Ciphertext{}, errors.Wrap(ErrInvalidPoint, "protocol: recipient public key")
	}
	k, err := randomScalar()
	if err != nil {
		return Ciphertext{}, err
	}
	w := edwards.Mul(v, k)
	z := edwards.Mul(edwards.Generator(), k)

	ka, ke := deriveKeys(w.Y)
	stream := maskStream(ke, len(plaintext))
	c := make([]byte, len(plaintext))
	for i := range plaintext {
		c[i] = plaintext[i] ^ stream[i]
	}

	tagInput := append(append([]byte{}, ka...), c...)
	tag := sha3.Sum3(256, tagInput)
	var t [32]byte
	copy(t[:], tag)

	return Ciphertext{Z: Point{X: z.X, Y: z.Y}, C: c, T: t}, nil
}

// Decrypt inverts Encrypt. Z is reconstructed from its (y, x-parity)
// encoding — the stored Z.x is used only for its parity bit, never
// trusted directly — and rejected if decompression fails the
// r-torsion check. The tag is verified in constant time BEFORE any
// plaintext is released: on mismatch, Decrypt returns ErrInvalidTag
// and a nil plaintext slice, never a partially-recovered one.
func Decrypt(ct Ciphertext, passphrase []byte) ([]byte, error) {
	s := PrivateScalar(passphrase)

	z, ok := edwards.Decompress(ct.Z.Y, ct.Z.X.Bit(0))
	if !ok {
		return nil, errors.Wrap(ErrInvalidPoint, "protocol: decompressing ephemeral point")
	}

	w := edwards.Mul(z, s)
	ka, ke := deriveKeys(w.Y)

	tagInput := append(append([]byte{}, ka...), ct.C...)
	wantTag := sha3.Sum3(256, tagInput)
	if subtle.ConstantTimeCompare(wantTag, ct.T[:]) != 1 {
		return nil, ErrInvalidTag
	}

	stream := maskStream(ke, len(ct.C))
	m := make([]byte, len(ct.C))
	for i := range ct.C {
		m[i] = ct.C[i] ^ stream[i]
	}
	return m, nil
}
