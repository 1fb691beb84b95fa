// Package align partitions byte buffers around the natural alignment of a
// batch type so the aligned middle can be read as a slice of that type.
package align

import (
	"fmt"
	"unsafe"
)

// Partition is the (head, body, tail) decomposition of a byte buffer.
//
// Body aliases the middle of the original buffer; it must not outlive it.
type Partition[T any] struct {
	Head []byte
	Body []T
	Tail []byte
}

// Len returns the number of bytes covered by the partition.
func (p Partition[T]) Len() int {
	var zero T
	return len(p.Head) + len(p.Body)*int(unsafe.Sizeof(zero)) + len(p.Tail)
}

// Of returns the alignment used for batch type T.
//
// Batches are aligned to their own size, like hardware vector registers.
// T must be a power-of-two sized, pointer-free type whose size is a multiple
// of its Go alignment.
func Of[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Split partitions buf into an unaligned head, a body of aligned T values and
// an unaligned tail. Head and tail are each shorter than Of[T]() bytes.
func Split[T any](buf []byte) Partition[T] {
	n := len(buf)
	if n == 0 {
		return Partition[T]{}
	}

	size := Of[T]()
	if size == 0 || size&(size-1) != 0 {
		panic(fmt.Sprintf("align: batch size %d is not a power of two", size))
	}

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	rem := int(addr & uintptr(size-1))
	endRem := int((addr + uintptr(n)) & uintptr(size-1))

	d2 := max(n-endRem, 0)
	d1 := min((size-rem)&(size-1), d2)

	head, mid, tail := buf[:d1], buf[d1:d2], buf[d2:]
	if len(mid)%size != 0 {
		panic(fmt.Sprintf("align: body length %d is not a multiple of %d", len(mid), size))
	}

	p := Partition[T]{Head: head, Tail: tail}
	if len(mid) > 0 {
		p.Body = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mid))), len(mid)/size)
	}
	return p
}
