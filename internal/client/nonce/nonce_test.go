package nonce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySpace(t *testing.T) {
	assert.Equal(t, 54, len(KeySpace))

	// символы алфавита не должны повторяться
	seen := make(map[rune]bool, len(KeySpace))
	for _, r := range KeySpace {
		assert.False(t, seen[r], "duplicate symbol %q", r)
		seen[r] = true
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"zero length gives one symbol", 0, 1},
		{"one", 1, 2},
		{"form nonce length", Length, 13},
		{"long", 64, 65},
		{"minus one", -1, 0},
		{"negative", -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.length)
			assert.Equal(t, tt.want, len(got))
			for _, r := range got {
				assert.True(t, strings.ContainsRune(KeySpace, r), "symbol %q is out of key space", r)
			}
		})
	}
}

func TestGenerateUniqueness(t *testing.T) {
	// вероятность совпадения двух nonce из 13 символов пренебрежимо мала
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		n := Generate(Length)
		assert.False(t, seen[n], "nonce %s generated twice", n)
		seen[n] = true
	}
}
