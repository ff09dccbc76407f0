package protocol

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westerntoad/ed256toolkit/edwards"
)

func TestKeygenCanonicalizesParity(t *testing.T) {
	kp := Keygen([]byte("correct horse battery staple"))
	assert.Equal(t, uint(0), kp.Public.X.Bit(0), "keygen must canonicalize public key to even x-parity")
	assert.True(t, edwards.IsOnCurve(kp.Public.X, kp.Public.Y))
}

func TestKeygenIsDeterministicInPassphrase(t *testing.T) {
	a := Keygen([]byte("same passphrase"))
	b := Keygen([]byte("same passphrase"))
	assert.True(t, edwards.Equals(a.Public, b.Public))
	assert.Equal(t, 0, a.Scalar.Cmp(b.Scalar))
}

func TestEncryptRejectsOffCurvePublicKey(t *testing.T) {
	bogus := edwards.Point{X: big.NewInt(1), Y: big.NewInt(1)}
	_, err := Encrypt([]byte("hello"), bogus)
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestVerifyRejectsOffCurvePublicKey(t *testing.T) {
	bogus := edwards.Point{X: big.NewInt(1), Y: big.NewInt(1)}
	message := []byte("pay the bearer one thousand lanes")
	sig, err := Sign([]byte("signing key"), message)
	require.NoError(t, err)

	assert.ErrorIs(t, Verify(message, sig, bogus), ErrInvalidPoint)
}

func TestECIESRoundTrip(t *testing.T) {
	kp := Keygen([]byte("trustno1"))
	plaintext := []byte("the ciphertext carries no secrets of its own")

	ct, err := Encrypt(plaintext, kp.Public)
	require.NoError(t, err)

	got, err := Decrypt(ct, []byte("trustno1"))
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestECIESRejectsTamperedTag(t *testing.T) {
	kp := Keygen([]byte("trustno1"))
	ct, err := Encrypt([]byte("hello, world"), kp.Public)
	require.NoError(t, err)

	ct.T[0] ^= 0xff
	got, err := Decrypt(ct, []byte("trustno1"))
	assert.ErrorIs(t, err, ErrInvalidTag)
	assert.Nil(t, got)
}

func TestECIESRejectsTamperedCiphertext(t *testing.T) {
	kp := Keygen([]byte("trustno1"))
	ct, err := Encrypt([]byte("hello, world"), kp.Public)
	require.NoError(t, err)

	ct.C[0] ^= 0x01
	got, err := Decrypt(ct, []byte("trustno1"))
	assert.ErrorIs(t, err, ErrInvalidTag)
	assert.Nil(t, got)
}

func TestSchnorrRoundTrip(t *testing.T) {
	kp := Keygen([]byte("signing key"))
	message := []byte("pay the bearer one thousand lanes")

	sig, err := Sign([]byte("signing key"), message)
	require.NoError(t, err)

	assert.NoError(t, Verify(message, sig, kp.Public))
}

func TestSchnorrRejectsTamperedMessage(t *testing.T) {
	kp := Keygen([]byte("signing key"))
	message := []byte("pay the bearer one thousand lanes")
	sig, err := Sign([]byte("signing key"), message)
	require.NoError(t, err)

	tampered := append([]byte{}, message...)
	tampered[0] ^= 0x01
	assert.ErrorIs(t, Verify(tampered, sig, kp.Public), ErrInvalidSignature)
}

func TestSchnorrRejectsTamperedSignature(t *testing.T) {
	kp := Keygen([]byte("signing key"))
	message := []byte("pay the bearer one thousand lanes")
	sig, err := Sign([]byte("signing key"), message)
	require.NoError(t, err)

	sig.Z = new(big.Int).Add(sig.Z, big.NewInt(1))
	assert.ErrorIs(t, Verify(message, sig, kp.Public), ErrInvalidSignature)
}

func TestSymmetricRoundTrip(t *testing.T) {
	record, err := EncryptSymmetric([]byte("passphrase"), []byte("a short secret"))
	require.NoError(t, err)

	got, err := DecryptSymmetric([]byte("passphrase"), record)
	require.NoError(t, err)
	assert.Equal(t, []byte("a short secret"), got)
}

func TestSymmetricRejectsTamperedPayload(t *testing.T) {
	record, err := EncryptSymmetric([]byte("passphrase"), []byte("a short secret"))
	require.NoError(t, err)

	record[0] ^= 0x01
	got, err := DecryptSymmetric([]byte("passphrase"), record)
	assert.ErrorIs(t, err, ErrInvalidTag)
	assert.Nil(t, got)
}
