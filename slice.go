package byteops

import "github.com/hupe1980/byteops/internal/simd"

// Is reports whether buf is non-empty and every byte equals b.
// An empty buf is never uniformly b.
func Is(buf []byte, b byte) bool {
	return simd.Is(buf, b)
}

// IsZero reports whether buf is non-empty and every byte is zero.
func IsZero(buf []byte) bool {
	return simd.Is(buf, 0)
}

// Contains reports whether any byte of buf equals b.
func Contains(buf []byte, b byte) bool {
	return simd.Contains(buf, b)
}

// ContainsZero reports whether any byte of buf is zero.
func ContainsZero(buf []byte) bool {
	return simd.Contains(buf, 0)
}

// Slice is a byte slice of any length viewed as a Bytes.
type Slice []byte

var _ Bytes = Slice(nil)

func (s Slice) Is(b byte) bool { return Is(s, b) }
func (s Slice) IsZero() bool { return IsZero(s) }
func (s Slice) Contains(b byte) bool { return Contains(s, b) }
func (s Slice) ContainsZero() bool { return ContainsZero(s) }
