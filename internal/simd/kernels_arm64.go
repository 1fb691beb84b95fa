//go:build arm64 && !noasm

package simd

// init selects the batch width from the ISA detected by
// capability_arm64.go.
func init() {
	switch activeISA {
	case NEON, SVE2:
		setKernels(Batch16)
	}
}
