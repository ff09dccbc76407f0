// Package rsp parses NIST CAVP-style ".rsp" known-answer-test vector
// files: blocks of "Key = Value" lines separated by blank lines, with
// a tolerated sprinkling of "[...]" header and "#..." comment lines.
package rsp

import (
	"bufio"
	"encoding/hex"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var lineRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\s*=\s*(.*\S)?\s*$`)

// Vector is one KAT entry: its declared bit length, the decoded input
// (from a "Msg" line), and the decoded expected output (from an "MD"
// or "Output" line — CAVP uses either name depending on the variant).
type Vector struct {
	LenBits int
	Msg     []byte
	Output  []byte
}

// Parse reads vectors out of r, skipping "[...]" headers and "#"
// comments and tolerating any ordering of Len/Msg/MD/Output lines
// within a block; a new Vector starts whenever a "Len" line is seen.
func Parse(r io.Reader) ([]Vector, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var vectors []Vector
	var cur *Vector

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, value := strings.ToLower(m[1]), m[2]

		switch key {
		case "len", "outputlen":
			if key == "len" {
				if cur != nil {
					vectors = append(vectors, *cur)
				}
				cur = &Vector{}
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, errors.Wrapf(err, "rsp: parsing %s line %q", key, line)
			}
			if cur == nil {
				cur = &Vector{}
			}
			cur.LenBits = n
		case "msg":
			b, err := decodeHexTolerant(value)
			if err != nil {
				return nil, errors.Wrapf(err, "rsp: decoding Msg line %q", line)
			}
			if cur == nil {
				cur = &Vector{}
			}
			cur.Msg = b
		case "md", "output":
			b, err := decodeHexTolerant(value)
			if err != nil {
				return nil, errors.Wrapf(err, "rsp: decoding %s line %q", key, line)
			}
			if cur == nil {
				cur = &Vector{}
			}
			cur.Output = b
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "rsp: scanning input")
	}
	if cur != nil {
		vectors = append(vectors, *cur)
	}
	return vectors, nil
}

// decodeHexTolerant decodes hex, treating an empty string (the
// zero-length-message case) as a zero-length, non-nil result rather
// than an error.
func decodeHexTolerant(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	return hex.DecodeString(s)
}
