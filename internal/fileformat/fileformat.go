// Package fileformat implements the plain ASCII-hex file formats used
// at the CLI boundary: public keys, ECIES ciphertexts, and Schnorr
// signatures. None of this is part of the cryptographic core; it is
// the thin external-I/O layer the core exposes its types through.
package fileformat

import (
	"bufio"
	"encoding/hex"
	"math/big"
	"os"

	"github.com/pkg/errors"

	"github.com/westerntoad/ed256toolkit/edwards"
	"github.com/westerntoad/ed256toolkit/protocol"
)

// WritePublicKey writes v as two ASCII-hex lines, x then y.
func WritePublicKey(path string, v edwards.Point) error {
	return writeLines(path, hex.EncodeToString(v.X.Bytes()), hex.EncodeToString(v.Y.Bytes()))
}

// ReadPublicKey parses a public-key file of exactly two hex lines and
// rejects the result as ErrInvalidPoint unless it is a legitimate
// group element (edwards.Validate) — a file is untrusted input, so a
// malformed, off-curve, or small-order coordinate pair is never handed
// to a caller as if it were a real public key.
func ReadPublicKey(path string) (edwards.Point, error) {
	lines, err := readLines(path, 2)
	if err != nil {
		return edwards.Point{}, err
	}
	x, err := decodeHexInt(lines[0])
	if err != nil {
		return edwards.Point{}, err
	}
	y, err := decodeHexInt(lines[1])
	if err != nil {
		return edwards.Point{}, err
	}
	v := edwards.Point{X: x, Y: y}
	if !edwards.Validate(v) {
		return edwards.Point{}, errors.Wrapf(protocol.ErrInvalidPoint, "fileformat: %s is not a valid group element", path)
	}
	return v, nil
}

// WriteCiphertext writes ct as four ASCII-hex lines: Z.x, Z.y, c, t.
func WriteCiphertext(path string, ct protocol.Ciphertext) error {
	return writeLines(path,
		hex.EncodeToString(ct.Z.X.Bytes()),
		hex.EncodeToString(ct.Z.Y.Bytes()),
		hex.EncodeToString(ct.C),
		hex.EncodeToString(ct.T[:]),
	)
}

// ReadCiphertext parses a ciphertext file of exactly four hex lines.
func ReadCiphertext(path string) (protocol.Ciphertext, error) {
	lines, err := readLines(path, 4)
	if err != nil {
		return protocol.Ciphertext{}, err
	}
	zx, err := decodeHexInt(lines[0])
	if err != nil {
		return protocol.Ciphertext{}, err
	}
	zy, err := decodeHexInt(lines[1])
	if err != nil {
		return protocol.Ciphertext{}, err
	}
	c, err := hex.DecodeString(lines[2])
	if err != nil {
		return protocol.Ciphertext{}, errors.Wrap(protocol.ErrInvalidEncoding, "fileformat: decoding ciphertext payload")
	}
	t, err := hex.DecodeString(lines[3])
	if err != nil || len(t) != 32 {
		return protocol.Ciphertext{}, errors.Wrap(protocol.ErrInvalidEncoding, "fileformat: decoding ciphertext tag")
	}
	var tag [32]byte
	copy(tag[:], t)
	return protocol.Ciphertext{Z: protocol.Point{X: zx, Y: zy}, C: c, T: tag}, nil
}

// WriteSignature writes sig as two ASCII-hex lines: h, z.
func WriteSignature(path string, sig protocol.Signature) error {
	return writeLines(path, hex.EncodeToString(sig.H.Bytes()), hex.EncodeToString(sig.Z.Bytes()))
}

// ReadSignature parses a signature file of exactly two hex lines.
func ReadSignature(path string) (protocol.Signature, error) {
	lines, err := readLines(path, 2)
	if err != nil {
		return protocol.Signature{}, err
	}
	h, err := decodeHexInt(lines[0])
	if err != nil {
		return protocol.Signature{}, err
	}
	z, err := decodeHexInt(lines[1])
	if err != nil {
		return protocol.Signature{}, err
	}
	return protocol.Signature{H: h, Z: z}, nil
}

func decodeHexInt(s string) (*big.Int, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(protocol.ErrInvalidEncoding, "fileformat: malformed hex coordinate")
	}
	return new(big.Int).SetBytes(b), nil
}

func writeLines(path string, lines ...string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "fileformat: creating %s", path)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return errors.Wrapf(err, "fileformat: writing %s", path)
		}
	}
	return w.Flush()
}

func readLines(path string, want int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fileformat: opening %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "fileformat: reading %s", path)
	}
	if len(lines) != want {
		return nil, errors.Wrapf(protocol.ErrInvalidEncoding, "fileformat: %s has %d lines, want %d", path, len(lines), want)
	}
	return lines, nil
}
