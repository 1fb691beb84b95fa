package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of the widest batch (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	return AllocOffset(size, 0)
}

// AllocOffset allocates a byte slice of the given size whose first byte sits
// exactly offset bytes past a 64-byte boundary. offset is taken modulo
// Alignment. Returns nil for size <= 0.
func AllocOffset(size, offset int) []byte {
	if size <= 0 {
		return nil
	}
	offset &= Alignment - 1

	// Room to shift the start up to Alignment-1 bytes, plus the offset.
	buf := make([]byte, size+2*Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	start := int((Alignment-(addr&(Alignment-1)))&(Alignment-1)) + offset

	return buf[start : start+size : start+size]
}

// Misalignment returns the distance of buf's first byte past the previous
// multiple of align. align must be a power of two. Returns 0 for an empty buf.
func Misalignment(buf []byte, align int) int {
	if len(buf) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	return int(addr & uintptr(align-1))
}
