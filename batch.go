package byteops

import (
	"fmt"

	"github.com/hupe1980/byteops/internal/simd"
)

// Batch identifies the unit slices are scanned in.
type Batch = simd.Batch

// Available batches.
const (
	BatchWord = simd.BatchWord
	Batch16   = simd.Batch16
	Batch32   = simd.Batch32
	Batch64   = simd.Batch64
)

// ParseBatch parses a batch name ("word", "vec16", "vec32" or "vec64").
func ParseBatch(s string) (Batch, error) {
	b, ok := simd.ParseBatch(s)
	if !ok {
		return BatchWord, fmt.Errorf("%w: %q", ErrUnknownBatch, s)
	}
	return b, nil
}

// ActiveBatch returns the batch selected at start-up for this build and CPU.
func ActiveBatch() Batch {
	return simd.ActiveBatch()
}

// ActiveISA returns the name of the detected instruction set, e.g. "avx2".
func ActiveISA() string {
	return simd.ActiveISA().String()
}
