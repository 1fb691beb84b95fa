package fixed

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveIs(s []byte, b byte) bool {
	for _, c := range s {
		if c != b {
			return false
		}
	}
	return true
}

func TestSupported(t *testing.T) {
	want := []int{
		2, 4, 8, 16, 32, 64,
		128, 192, 256, 320, 384, 448,
		512, 768, 1024, 1280, 1536, 1792,
		2048, 3072, 4096, 5120, 6144, 7168,
	}
	assert.Equal(t, want, Lengths())

	for _, n := range want {
		assert.True(t, Supported(n), "n=%d", n)
	}
	for _, n := range []int{0, 1, 3, 24, 63, 96, 640, 8192, 2560} {
		assert.False(t, Supported(n), "n=%d", n)
	}
}

func TestLargeBase(t *testing.T) {
	tests := []struct {
		n    int
		base int
	}{
		{128, Base64},
		{256, Base64},
		{448, Base64},
		{512, Base256},
		{1024, Base256},
		{1792, Base256},
		{2048, Base1024},
		{7168, Base1024},
		{64, 0},
		{8192, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.base, largeBase(tt.n), "n=%d", tt.n)
	}
}

func TestUniform(t *testing.T) {
	for _, n := range Lengths() {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			for _, b := range []byte{0x00, 0x01, 0x2A, 0x7F, 0x80, 0xFF} {
				s := bytes.Repeat([]byte{b}, n)
				require.True(t, Is(s, b))
				require.True(t, Contains(s, b))
				require.False(t, Is(s, ^b))
				require.False(t, Contains(s, ^b))
				require.Equal(t, b == 0, IsZero(s))
			}
		})
	}
}

// A single differing byte at every position must flip both answers.
func TestSinglePlant(t *testing.T) {
	for _, n := range Lengths() {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			const fill, needle = 0xFF, 0x00
			s := bytes.Repeat([]byte{fill}, n)
			for i := 0; i < n; i++ {
				s[i] = needle
				if Is(s, fill) {
					t.Fatalf("Is reported uniform with needle at %d", i)
				}
				if !Contains(s, needle) {
					t.Fatalf("Contains missed needle at %d", i)
				}
				if IsZero(s) {
					t.Fatalf("IsZero true with 0xFF bytes present (plant %d)", i)
				}
				s[i] = fill
			}
		})
	}
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range Lengths() {
		s := make([]byte, n)
		for iter := 0; iter < 20; iter++ {
			_, _ = r.Read(s)
			b := byte(r.Intn(256))
			require.Equal(t, bytes.IndexByte(s, b) >= 0, Contains(s, b), "n=%d b=%d", n, b)
			require.Equal(t, naiveIs(s, b), Is(s, b), "n=%d b=%d", n, b)
		}
	}
}

func TestPair(t *testing.T) {
	assert.True(t, Is([]byte{7, 7}, 7))
	assert.False(t, Is([]byte{7, 8}, 7))
	assert.False(t, Is([]byte{8, 7}, 7))
	assert.True(t, Contains([]byte{8, 7}, 7))
	assert.True(t, Contains([]byte{7, 8}, 7))
	assert.False(t, Contains([]byte{8, 8}, 7))
	assert.True(t, IsZero([]byte{0, 0}))
	assert.False(t, IsZero([]byte{0, 1}))
}

func TestUnsupportedPanics(t *testing.T) {
	assert.Panics(t, func() { Is(make([]byte, 24), 0) })
	assert.Panics(t, func() { Contains(make([]byte, 96), 0) })
}
