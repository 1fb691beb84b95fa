package byteops

import (
	"unsafe"

	"github.com/hupe1980/byteops/internal/fixed"
)

// Array is the set of fixed-length byte arrays with a dedicated
// implementation: 2, 4 and 8 bytes (a single word), 16, 32 and 64 bytes
// (consecutive words), and k*64, k*256 and k*1024 bytes for k in 2..7
// (composites of smaller blocks).
type Array interface {
	~[2]byte | ~[4]byte | ~[8]byte |
		~[16]byte | ~[32]byte | ~[64]byte |
		~[128]byte | ~[192]byte | ~[256]byte | ~[320]byte | ~[384]byte | ~[448]byte |
		~[512]byte | ~[768]byte | ~[1024]byte | ~[1280]byte | ~[1536]byte | ~[1792]byte |
		~[2048]byte | ~[3072]byte | ~[4096]byte | ~[5120]byte | ~[6144]byte | ~[7168]byte
}

// IsArray reports whether every byte of *a equals b.
func IsArray[A Array](a *A, b byte) bool {
	return fixed.Is(arrayBytes(a), b)
}

// IsZeroArray reports whether every byte of *a is zero.
func IsZeroArray[A Array](a *A) bool {
	return fixed.IsZero(arrayBytes(a))
}

// ContainsArray reports whether any byte of *a equals b.
func ContainsArray[A Array](a *A, b byte) bool {
	return fixed.Contains(arrayBytes(a), b)
}

// ContainsZeroArray reports whether any byte of *a is zero.
func ContainsZeroArray[A Array](a *A) bool {
	return fixed.Contains(arrayBytes(a), 0)
}

// Splat returns an array with every element set to b.
func Splat[A Array](b byte) A {
	var a A
	s := arrayBytes(&a)
	for i := range s {
		s[i] = b
	}
	return a
}

// View returns a Bytes backed by *a. The view reads through the pointer, so
// later writes to *a are visible.
func View[A Array](a *A) Bytes {
	return arrayView[A]{a: a}
}

type arrayView[A Array] struct {
	a *A
}

func (v arrayView[A]) Is(b byte) bool { return IsArray(v.a, b) }
func (v arrayView[A]) IsZero() bool { return IsZeroArray(v.a) }
func (v arrayView[A]) Contains(b byte) bool { return ContainsArray(v.a, b) }
func (v arrayView[A]) ContainsZero() bool { return ContainsZeroArray(v.a) }

// arrayBytes reinterprets *a as a byte slice of the same storage.
func arrayBytes[A Array](a *A) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(a)), unsafe.Sizeof(*a))
}
