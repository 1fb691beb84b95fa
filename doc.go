// Package byteops answers two questions about byte sequences fast: are all
// bytes equal to X, and does the sequence contain X. Zero gets dedicated
// entry points because it is by far the most common query.
//
// # Quick Start
//
//	buf := []byte("hello\x00world")
//	byteops.ContainsZero(buf)      // true
//	byteops.Is(buf, 'h')           // false
//
//	var block [64]byte
//	byteops.IsZeroArray(&block)    // true
//	block = byteops.Splat[[64]byte](0xFF)
//	byteops.IsArray(&block, 0xFF)  // true
//
// # Shapes
//
// Every shape implements the Bytes interface:
//
//   - Byte: a single byte (the degenerate base case)
//   - Word16, Word32, Word64, Word: one machine word viewed as byte lanes
//   - fixed arrays of the lengths in the Array constraint, through View
//   - Slice: a byte slice of any length
//
// # Empty Sequences
//
// An empty slice is never uniformly X and never contains X: both Is and
// Contains return false.
//
// # Batches
//
// Slices are split into an unaligned head, an aligned body and an unaligned
// tail. The body is scanned one batch at a time, the edges byte by byte. The
// batch width is chosen from the CPU at start-up (see ActiveBatch) and can
// be pinned per Scanner with WithBatch, or forced to the machine word at
// build time with -tags noasm. Results never depend on the batch.
//
// # Concurrency
//
// All operations are read-only and safe for concurrent use.
package byteops
