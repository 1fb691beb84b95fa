package byteops

// Bytes is implemented by every byte sequence shape in this package.
type Bytes interface {
	// Is reports whether every byte equals b.
	Is(b byte) bool

	// IsZero reports whether every byte is zero.
	IsZero() bool

	// Contains reports whether at least one byte equals b.
	Contains(b byte) bool

	// ContainsZero reports whether at least one byte is zero.
	ContainsZero() bool
}

// Byte is a single byte viewed as a one-element sequence.
type Byte byte

var _ Bytes = Byte(0)

func (v Byte) Is(b byte) bool { return byte(v) == b }
func (v Byte) IsZero() bool { return v == 0 }
func (v Byte) Contains(b byte) bool { return byte(v) == b }
func (v Byte) ContainsZero() bool { return v == 0 }
