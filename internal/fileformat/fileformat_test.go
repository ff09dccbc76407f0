package fileformat

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/westerntoad/ed256toolkit/edwards"
	"github.com/westerntoad/ed256toolkit/protocol"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	v := edwards.Generator()
	path := filepath.Join(t.TempDir(), "pub.txt")

	if err := WritePublicKey(path, v); err != nil {
		t.Fatalf("WritePublicKey: %v", err)
	}
	got, err := ReadPublicKey(path)
	if err != nil {
		t.Fatalf("ReadPublicKey: %v", err)
	}
	if got.X.Cmp(v.X) != 0 || got.Y.Cmp(v.Y) != 0 {
		t.Errorf("round-tripped key = %v, want %v", got, v)
	}
}

func TestReadPublicKeyRejectsWrongLineCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("deadbeef\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPublicKey(path); err == nil {
		t.Error("expected an error for a one-line public key file")
	}
}

func TestReadPublicKeyRejectsOffCurvePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offcurve.txt")
	if err := WritePublicKey(path, edwards.Point{X: big.NewInt(1), Y: big.NewInt(1)}); err != nil {
		t.Fatalf("WritePublicKey: %v", err)
	}
	if _, err := ReadPublicKey(path); !errors.Is(err, protocol.ErrInvalidPoint) {
		t.Errorf("ReadPublicKey of an off-curve point: got err %v, want ErrInvalidPoint", err)
	}
}

func TestCiphertextRoundTrip(t *testing.T) {
	ct := protocol.Ciphertext{
		Z: protocol.Point{X: big.NewInt(11), Y: big.NewInt(22)},
		C: []byte{0xde, 0xad, 0xbe, 0xef},
		T: [32]byte{1, 2, 3},
	}
	path := filepath.Join(t.TempDir(), "ct.txt")

	if err := WriteCiphertext(path, ct); err != nil {
		t.Fatalf("WriteCiphertext: %v", err)
	}
	got, err := ReadCiphertext(path)
	if err != nil {
		t.Fatalf("ReadCiphertext: %v", err)
	}
	if got.Z.X.Cmp(ct.Z.X) != 0 || got.Z.Y.Cmp(ct.Z.Y) != 0 {
		t.Errorf("round-tripped Z = %v, want %v", got.Z, ct.Z)
	}
	if string(got.C) != string(ct.C) || got.T != ct.T {
		t.Errorf("round-tripped (C, T) did not match")
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	sig := protocol.Signature{H: big.NewInt(123), Z: big.NewInt(456)}
	path := filepath.Join(t.TempDir(), "sig.txt")

	if err := WriteSignature(path, sig); err != nil {
		t.Fatalf("WriteSignature: %v", err)
	}
	got, err := ReadSignature(path)
	if err != nil {
		t.Fatalf("ReadSignature: %v", err)
	}
	if got.H.Cmp(sig.H) != 0 || got.Z.Cmp(sig.Z) != 0 {
		t.Errorf("round-tripped signature = %v, want %v", got, sig)
	}
}
