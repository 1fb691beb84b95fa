// Package simd selects and implements the batch strategies used to scan byte
// slices several bytes at a time.
//
// # Supported Platforms
//
//   - x86-64: AVX-512 (F+BW), AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the batch width. Build with
// -tags noasm to force the plain machine-word batch.
//
// # Batches
//
//   - BatchWord: one native uint per step
//   - Batch16, Batch32, Batch64: groups of uint64 lanes sized and aligned
//     like a 128, 256 or 512-bit vector register
//
// Every batch produces identical results; only throughput differs.
package simd
