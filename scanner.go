package byteops

import (
	"context"

	"github.com/hupe1980/byteops/internal/simd"
)

// Scanner runs slice queries with one fixed batch strategy.
//
// A Scanner is immutable and safe for concurrent use.
type Scanner struct {
	kernel simd.Kernel
}

// NewScanner creates a Scanner. Without options it uses ActiveBatch.
func NewScanner(opts ...Option) *Scanner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	o.logger.LogScannerInit(context.Background(), o.batch, o.pinned)

	return &Scanner{kernel: simd.KernelFor(o.batch)}
}

// Batch returns the batch the scanner uses.
func (s *Scanner) Batch() Batch {
	return s.kernel.Batch
}

// Is reports whether buf is non-empty and every byte equals b.
func (s *Scanner) Is(buf []byte, b byte) bool {
	return s.kernel.Is(buf, b)
}

// IsZero reports whether buf is non-empty and every byte is zero.
func (s *Scanner) IsZero(buf []byte) bool {
	return s.kernel.Is(buf, 0)
}

// Contains reports whether any byte of buf equals b.
func (s *Scanner) Contains(buf []byte, b byte) bool {
	return s.kernel.Contains(buf, b)
}

// ContainsZero reports whether any byte of buf is zero.
func (s *Scanner) ContainsZero(buf []byte) bool {
	return s.kernel.Contains(buf, 0)
}
