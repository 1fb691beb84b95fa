package simd

import (
	"strings"
	"unsafe"
)

// Batch identifies the unit a slice is scanned in.
type Batch uint8

const (
	// BatchWord scans one native machine word (uint) per step.
	BatchWord Batch = iota
	// Batch16 scans 16 bytes per step (128-bit vector width).
	Batch16
	// Batch32 scans 32 bytes per step (256-bit vector width).
	Batch32
	// Batch64 scans 64 bytes per step (512-bit vector width).
	Batch64
)

// Batch layouts. Each is aligned to its own size by the splitter.
type (
	word  = uint
	vec16 [2]uint64
	vec32 [4]uint64
	vec64 [8]uint64
)

// wordSize is the byte width of a native machine word.
const wordSize = int(unsafe.Sizeof(word(0)))

// String returns the string representation of a Batch.
func (b Batch) String() string {
	switch b {
	case BatchWord:
		return "word"
	case Batch16:
		return "vec16"
	case Batch32:
		return "vec32"
	case Batch64:
		return "vec64"
	default:
		return "unknown"
	}
}

// Size returns the number of bytes scanned per step, or 0 for an unknown Batch.
func (b Batch) Size() int {
	switch b {
	case BatchWord:
		return wordSize
	case Batch16:
		return 16
	case Batch32:
		return 32
	case Batch64:
		return 64
	default:
		return 0
	}
}

// Valid reports whether b is a known Batch.
func (b Batch) Valid() bool {
	return b <= Batch64
}

// ParseBatch parses a string into a Batch value.
func ParseBatch(s string) (Batch, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word":
		return BatchWord, true
	case "vec16":
		return Batch16, true
	case "vec32":
		return Batch32, true
	case "vec64":
		return Batch64, true
	default:
		return BatchWord, false
	}
}

// BatchFor returns the batch width matching the register width of isa.
func BatchFor(isa ISA) Batch {
	switch isa {
	case NEON, SVE2:
		return Batch16
	case AVX2:
		return Batch32
	case AVX512:
		return Batch64
	default:
		return BatchWord
	}
}
