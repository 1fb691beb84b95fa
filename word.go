package byteops

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/byteops/internal/swar"
)

// Word16, Word32, Word64 and Word view one unsigned machine word as packed
// byte lanes. Each query costs a constant number of instructions.
type (
	Word16 uint16
	Word32 uint32
	Word64 uint64
	Word   uint
)

var (
	_ Bytes = Word16(0)
	_ Bytes = Word32(0)
	_ Bytes = Word64(0)
	_ Bytes = Word(0)
)

// SplatWord returns a word of type W with b in every byte lane.
//
//	SplatWord[uint32](0xAB) == 0xABABABAB
func SplatWord[W constraints.Unsigned](b byte) W {
	return swar.Splat[W](b)
}

func (w Word16) Is(b byte) bool { return swar.Is(uint16(w), b) }
func (w Word16) IsZero() bool { return w == 0 }
func (w Word16) Contains(b byte) bool { return swar.Contains(uint16(w), b) }
func (w Word16) ContainsZero() bool { return swar.ContainsZero(uint16(w)) }

func (w Word32) Is(b byte) bool { return swar.Is(uint32(w), b) }
func (w Word32) IsZero() bool { return w == 0 }
func (w Word32) Contains(b byte) bool { return swar.Contains(uint32(w), b) }
func (w Word32) ContainsZero() bool { return swar.ContainsZero(uint32(w)) }

func (w Word64) Is(b byte) bool { return swar.Is(uint64(w), b) }
func (w Word64) IsZero() bool { return w == 0 }
func (w Word64) Contains(b byte) bool { return swar.Contains(uint64(w), b) }
func (w Word64) ContainsZero() bool { return swar.ContainsZero(uint64(w)) }

func (w Word) Is(b byte) bool { return swar.Is(uint(w), b) }
func (w Word) IsZero() bool { return w == 0 }
func (w Word) Contains(b byte) bool { return swar.Contains(uint(w), b) }
func (w Word) ContainsZero() bool { return swar.ContainsZero(uint(w)) }
