// Package fixed answers byte queries on arrays whose length belongs to one of
// the supported fixed-width classes:
//
//   - small: 2, 4 and 8 bytes, loaded as a single word
//   - multi: 16, 32 and 64 bytes, loaded as consecutive 64-bit words
//   - large: k*64, k*256 and k*1024 bytes for k in 2..7, split into k
//     sub-blocks of the base size
//
// Words are decoded with native byte order. The lane tests do not depend on
// byte order, so the result is identical on every platform.
package fixed

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/byteops/internal/swar"
)

// Large composite base block sizes.
const (
	Base64   = 64
	Base256  = 256
	Base1024 = 1024
)

// Supported reports whether n is a supported fixed length.
func Supported(n int) bool {
	switch n {
	case 2, 4, 8, 16, 32, 64:
		return true
	}
	return largeBase(n) != 0
}

// Lengths returns every supported fixed length in ascending order.
func Lengths() []int {
	out := []int{2, 4, 8, 16, 32, 64}
	for _, base := range []int{Base64, Base256, Base1024} {
		for k := 2; k <= 7; k++ {
			out = append(out, k*base)
		}
	}
	return out
}

// largeBase returns the base block size of a large composite length, or 0.
func largeBase(n int) int {
	for _, base := range []int{Base1024, Base256, Base64} {
		k := n / base
		if n%base == 0 && k >= 2 && k <= 7 {
			return base
		}
	}
	return 0
}

// Is reports whether every byte of s equals b. len(s) must be Supported.
func Is(s []byte, b byte) bool {
	switch len(s) {
	case 2:
		return (s[0]^b)|(s[1]^b) == 0
	case 4:
		return swar.Is(binary.NativeEndian.Uint32(s), b)
	case 8:
		return swar.Is(binary.NativeEndian.Uint64(s), b)
	case 16, 32, 64:
		return isMulti(s, b)
	}
	return isLarge(s, b, mustLargeBase(len(s)))
}

// Contains reports whether any byte of s equals b. len(s) must be Supported.
func Contains(s []byte, b byte) bool {
	switch len(s) {
	case 2:
		return s[0] == b || s[1] == b
	case 4:
		return swar.Contains(binary.NativeEndian.Uint32(s), b)
	case 8:
		return swar.Contains(binary.NativeEndian.Uint64(s), b)
	case 16, 32, 64:
		return containsMulti(s, b)
	}
	return containsLarge(s, b, mustLargeBase(len(s)))
}

// IsZero reports whether every byte of s is zero. len(s) must be Supported.
func IsZero(s []byte) bool {
	switch len(s) {
	case 4:
		return binary.NativeEndian.Uint32(s) == 0
	case 8:
		return binary.NativeEndian.Uint64(s) == 0
	}
	return Is(s, 0)
}

func mustLargeBase(n int) int {
	base := largeBase(n)
	if base == 0 {
		panic(fmt.Sprintf("fixed: unsupported length %d", n))
	}
	return base
}

func isMulti(s []byte, b byte) bool {
	w := swar.Splat[uint64](b)
	for i := 0; i+8 <= len(s); i += 8 {
		if binary.NativeEndian.Uint64(s[i:]) != w {
			return false
		}
	}
	return true
}

func containsMulti(s []byte, b byte) bool {
	w := swar.Splat[uint64](b)
	for i := 0; i+8 <= len(s); i += 8 {
		if swar.ContainsZero(binary.NativeEndian.Uint64(s[i:]) ^ w) {
			return true
		}
	}
	return false
}

// isLarge walks s in sub-blocks of base bytes. A 64-byte block is a multi
// array; 256 and 1024-byte blocks are themselves composites of 64 and 256.
func isLarge(s []byte, b byte, base int) bool {
	for i := 0; i < len(s); i += base {
		if !isBlock(s[i:i+base], b, base) {
			return false
		}
	}
	return true
}

func containsLarge(s []byte, b byte, base int) bool {
	for i := 0; i < len(s); i += base {
		if containsBlock(s[i:i+base], b, base) {
			return true
		}
	}
	return false
}

func isBlock(s []byte, b byte, base int) bool {
	switch base {
	case Base256:
		return isLarge(s, b, Base64)
	case Base1024:
		return isLarge(s, b, Base256)
	default:
		return isMulti(s, b)
	}
}

func containsBlock(s []byte, b byte, base int) bool {
	switch base {
	case Base256:
		return containsLarge(s, b, Base64)
	case Base1024:
		return containsLarge(s, b, Base256)
	default:
		return containsMulti(s, b)
	}
}
