// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation (the widest batch), and allocation at
// a chosen misalignment to exercise unaligned heads and tails.
package mem
