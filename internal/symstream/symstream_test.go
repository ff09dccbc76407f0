package symstream

import (
	"bytes"
	"testing"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate([]byte("seed"), 256)
	b := Generate([]byte("seed"), 256)
	if !bytes.Equal(a, b) {
		t.Error("Generate is not deterministic for a fixed seed")
	}
}

func TestGenerateVariesWithSeed(t *testing.T) {
	a := Generate([]byte("seed-one"), 64)
	b := Generate([]byte("seed-two"), 64)
	if bytes.Equal(a, b) {
		t.Error("Generate produced identical output for different seeds")
	}
}

func TestGenerateIsPrefixStable(t *testing.T) {
	short := Generate([]byte("seed"), 64)
	long := Generate([]byte("seed"), 128)
	if !bytes.Equal(short, long[:64]) {
		t.Error("Generate output is not a stable prefix across lengths")
	}
}
