// Package swar implements byte-lane queries on a single unsigned machine word.
//
// A word of W bits is treated as W/8 packed byte lanes. All operations are
// branch-free and run in a constant number of instructions regardless of W.
//
// # Zero-lane detection
//
// From Matters Computational by J. Arndt (1.20): subtract one from every lane
// and look for lanes where the borrow propagated all the way to the most
// significant bit.
//
//	(w - Lo) & ^w & Hi != 0
//
// The ^w term discards lanes whose high bit was already set, so lanes such as
// 0x80 or 0xFF are never reported as zero. The expression must be evaluated
// exactly in this form.
package swar
