package swar

import "golang.org/x/exp/constraints"

// Lo returns the word with the low bit of every byte lane set (0x0101...01).
func Lo[W constraints.Unsigned]() W {
	return ^W(0) / 0xFF
}

// Hi returns the word with the high bit of every byte lane set (0x8080...80).
func Hi[W constraints.Unsigned]() W {
	return Lo[W]() << 7
}

// Splat replicates b into every byte lane of W.
func Splat[W constraints.Unsigned](b byte) W {
	return Lo[W]() * W(b)
}

// Is reports whether every lane of w equals b.
func Is[W constraints.Unsigned](w W, b byte) bool {
	return w == Splat[W](b)
}

// IsZero reports whether every lane of w is zero.
func IsZero[W constraints.Unsigned](w W) bool {
	return w == 0
}

// Contains reports whether any lane of w equals b.
//
// Lanes equal to b become zero after the XOR with Splat(b).
func Contains[W constraints.Unsigned](w W, b byte) bool {
	return ContainsZero(w ^ Splat[W](b))
}

// ContainsZero reports whether any lane of w is zero.
func ContainsZero[W constraints.Unsigned](w W) bool {
	return ZeroLanes(w) != 0
}

// ZeroLanes returns a mask with the high bit set in lanes of w that are zero.
//
// Only the lowest flagged lane is exact: a borrow out of a zero lane may flag
// a 0x01 lane above it. Callers only test the mask against zero.
func ZeroLanes[W constraints.Unsigned](w W) W {
	return (w - Lo[W]()) & ^w & Hi[W]()
}
