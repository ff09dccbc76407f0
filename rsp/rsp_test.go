package rsp

import (
	"strings"
	"testing"
)

const sampleRsp = `# CAVS 19.0
# SHA3-256 ShortMsgKAT
[L = 32]

Len = 0
Msg = 00
MD = a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a

Len = 8
Msg = cc
MD = 677035391cd3701293d385f037ba32796252bb7ce180b00b582dd9b20aaad7f0

`

func TestParseSkipsHeadersAndComments(t *testing.T) {
	vectors, err := Parse(strings.NewReader(sampleRsp))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	if vectors[0].LenBits != 0 {
		t.Errorf("vectors[0].LenBits = %d, want 0", vectors[0].LenBits)
	}
	if vectors[1].LenBits != 8 {
		t.Errorf("vectors[1].LenBits = %d, want 8", vectors[1].LenBits)
	}
	if len(vectors[1].Msg) != 1 || vectors[1].Msg[0] != 0xcc {
		t.Errorf("vectors[1].Msg = %x, want cc", vectors[1].Msg)
	}
}

func TestParseToleratesOutputKeyword(t *testing.T) {
	const shake = `Len = 16
Msg = abcd
Output = 1234
Outputlen = 16
`
	vectors, err := Parse(strings.NewReader(shake))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(vectors) != 1 {
		t.Fatalf("got %d vectors, want 1", len(vectors))
	}
	if len(vectors[0].Output) != 2 || vectors[0].Output[0] != 0x12 {
		t.Errorf("vectors[0].Output = %x, want 1234", vectors[0].Output)
	}
}
