//go:build amd64 && !noasm

package simd

// init selects the batch width from the ISA detected by
// capability_amd64.go.
func init() {
	switch activeISA {
	case AVX2:
		setKernels(Batch32)
	case AVX512:
		setKernels(Batch64)
	}
}
