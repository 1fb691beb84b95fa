package simd

import (
	"fmt"

	"github.com/hupe1980/byteops/internal/align"
	"github.com/hupe1980/byteops/internal/swar"
)

// Kernel holds the slice scanning functions of one batch strategy.
//
// Both functions return false for an empty slice.
type Kernel struct {
	Batch    Batch
	Is       func(buf []byte, b byte) bool
	Contains func(buf []byte, b byte) bool
}

var kernels = [...]Kernel{
	BatchWord: {Batch: BatchWord, Is: isWordGeneric, Contains: containsWordGeneric},
	Batch16:   {Batch: Batch16, Is: isVec16Generic, Contains: containsVec16Generic},
	Batch32:   {Batch: Batch32, Is: isVec32Generic, Contains: containsVec32Generic},
	Batch64:   {Batch: Batch64, Is: isVec64Generic, Contains: containsVec64Generic},
}

// Kernel function pointers - set once at init, zero runtime overhead.
// The word batch is the default; platform-specific init() functions
// select a wider batch when the CPU has matching registers.
var (
	activeBatch    = BatchWord
	kernelIs       = isWordGeneric
	kernelContains = containsWordGeneric
)

func setKernels(b Batch) {
	k := KernelFor(b)
	activeBatch = b
	kernelIs = k.Is
	kernelContains = k.Contains
}

// KernelFor returns the kernel implementing batch b. It panics on an unknown Batch.
func KernelFor(b Batch) Kernel {
	if !b.Valid() {
		panic(fmt.Sprintf("simd: unknown batch %d", b))
	}
	return kernels[b]
}

// ActiveBatch returns the batch selected for this build and CPU.
func ActiveBatch() Batch {
	return activeBatch
}

// Is reports whether buf is non-empty and every byte equals b.
func Is(buf []byte, b byte) bool {
	return kernelIs(buf, b)
}

// Contains reports whether any byte of buf equals b.
func Contains(buf []byte, b byte) bool {
	return kernelContains(buf, b)
}

// ============================================================================
// Generic kernels
// ============================================================================
//
// Every kernel scans the aligned body first and only then the unaligned
// head and tail, short-circuiting as soon as the answer is known.

func isWordGeneric(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[word](buf)
	s := swar.Splat[word](b)
	for _, w := range p.Body {
		if w != s {
			return false
		}
	}
	return allEqual(p.Head, b) && allEqual(p.Tail, b)
}

func containsWordGeneric(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[word](buf)
	s := swar.Splat[word](b)
	for _, w := range p.Body {
		if swar.ContainsZero(w ^ s) {
			return true
		}
	}
	return anyEqual(p.Head, b) || anyEqual(p.Tail, b)
}

func isVec16Generic(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[vec16](buf)
	s := swar.Splat[uint64](b)
	for i := range p.Body {
		v := &p.Body[i]
		if (v[0]^s)|(v[1]^s) != 0 {
			return false
		}
	}
	return allEqual(p.Head, b) && allEqual(p.Tail, b)
}

func containsVec16Generic(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[vec16](buf)
	s := swar.Splat[uint64](b)
	for i := range p.Body {
		v := &p.Body[i]
		if swar.ZeroLanes(v[0]^s)|swar.ZeroLanes(v[1]^s) != 0 {
			return true
		}
	}
	return anyEqual(p.Head, b) || anyEqual(p.Tail, b)
}

func isVec32Generic(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[vec32](buf)
	s := swar.Splat[uint64](b)
	for i := range p.Body {
		v := &p.Body[i]
		if (v[0]^s)|(v[1]^s)|(v[2]^s)|(v[3]^s) != 0 {
			return false
		}
	}
	return allEqual(p.Head, b) && allEqual(p.Tail, b)
}

func containsVec32Generic(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[vec32](buf)
	s := swar.Splat[uint64](b)
	for i := range p.Body {
		v := &p.Body[i]
		m := swar.ZeroLanes(v[0]^s) | swar.ZeroLanes(v[1]^s) |
			swar.ZeroLanes(v[2]^s) | swar.ZeroLanes(v[3]^s)
		if m != 0 {
			return true
		}
	}
	return anyEqual(p.Head, b) || anyEqual(p.Tail, b)
}

func isVec64Generic(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[vec64](buf)
	s := swar.Splat[uint64](b)
	for i := range p.Body {
		v := &p.Body[i]
		lo := (v[0] ^ s) | (v[1] ^ s) | (v[2] ^ s) | (v[3] ^ s)
		hi := (v[4] ^ s) | (v[5] ^ s) | (v[6] ^ s) | (v[7] ^ s)
		if lo|hi != 0 {
			return false
		}
	}
	return allEqual(p.Head, b) && allEqual(p.Tail, b)
}

func containsVec64Generic(buf []byte, b byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := align.Split[vec64](buf)
	s := swar.Splat[uint64](b)
	for i := range p.Body {
		v := &p.Body[i]
		lo := swar.ZeroLanes(v[0]^s) | swar.ZeroLanes(v[1]^s) |
			swar.ZeroLanes(v[2]^s) | swar.ZeroLanes(v[3]^s)
		hi := swar.ZeroLanes(v[4]^s) | swar.ZeroLanes(v[5]^s) |
			swar.ZeroLanes(v[6]^s) | swar.ZeroLanes(v[7]^s)
		if lo|hi != 0 {
			return true
		}
	}
	return anyEqual(p.Head, b) || anyEqual(p.Tail, b)
}

// allEqual is the byte-at-a-time check for unaligned edges.
func allEqual(s []byte, b byte) bool {
	for _, c := range s {
		if c != b {
			return false
		}
	}
	return true
}

func anyEqual(s []byte, b byte) bool {
	for _, c := range s {
		if c == b {
			return true
		}
	}
	return false
}
