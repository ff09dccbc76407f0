package protocol

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/pkg/errors"

	"github.com/westerntoad/ed256toolkit/sha3"
)

const (
	symNonceLen = 16
	symTagLen   = 32
)

// EncryptSymmetric implements the internal symmetric mode: a fresh
// 16-byte nonce is drawn from a cryptographic RNG, the payload is
// masked with a SHAKE128(passphrase || nonce, ...) keystream, and the
// whole record is authenticated with
// SHA3-256(nonce || SHAKE128(passphrase, 128) || masked-payload). The
// wire format is masked-payload || nonce || tag.
func EncryptSymmetric(passphrase, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, symNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "protocol: reading nonce")
	}

	keystream := symmetricKeystream(passphrase, nonce, len(plaintext))
	masked := make([]byte, len(plaintext))
	for i := range plaintext {
		masked[i] = plaintext[i] ^ keystream[i]
	}

	tag := symmetricTag(passphrase, nonce, masked)

	out := make([]byte, 0, len(masked)+symNonceLen+symTagLen)
	out = append(out, masked...)
	out = append(out, nonce...)
	out = append(out, tag...)
	return out, nil
}

// DecryptSymmetric inverts EncryptSymmetric. The tag is checked in
// constant time before the keystream is ever applied: on mismatch,
// DecryptSymmetric returns ErrInvalidTag and no plaintext.
func DecryptSymmetric(passphrase, record []byte) ([]byte, error) {
	if len(record) < symNonceLen+symTagLen {
		return nil, errors.Wrap(ErrInvalidEncoding, "protocol: symmetric record too short")
	}
	payloadLen := len(record) - symNonceLen - symTagLen
	masked := record[:payloadLen]
	nonce := record[payloadLen : payloadLen+symNonceLen]
	tag := record[payloadLen+symNonceLen:]

	want := symmetricTag(passphrase, nonce, masked)
	if subtle.ConstantTimeCompare(want, tag) != 1 {
		return nil, ErrInvalidTag
	}

	keystream := symmetricKeystream(passphrase, nonce, payloadLen)
	plaintext := make([]byte, payloadLen)
	for i := range masked {
		plaintext[i] = masked[i] ^ keystream[i]
	}
	return plaintext, nil
}

// symmetricKeystream derives the n-byte SHAKE-128 keystream keyed on
// passphrase and nonce; SHAKE's output-length contract forbids a zero
// request, so an empty payload short-circuits to an empty keystream.
func symmetricKeystream(passphrase, nonce []byte, n int) []byte {
	if n == 0 {
		return nil
	}
	return sha3.Shake(128, append(append([]byte{}, passphrase...), nonce...), n*8)
}

// symmetricTag computes SHA3-256(nonce || SHAKE128(passphrase, 128) || masked).
func symmetricTag(passphrase, nonce, masked []byte) []byte {
	passKey := sha3.Shake(128, passphrase, 128)
	input := make([]byte, 0, len(nonce)+len(passKey)+len(masked))
	input = append(input, nonce...)
	input = append(input, passKey...)
	input = append(input, masked...)
	return sha3.Sum3(256, input)
}
