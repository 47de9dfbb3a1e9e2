package huffdict

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
)

// MaxCodeSize is the maximum number of bits in a Code.  Trees deeper than
// this cannot be used for encoding.
const MaxCodeSize = 32

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint32) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// HasPrefix returns true iff the first prefix.Size bits of hc equal prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	mask := uint32(1)<<prefix.Size - 1
	if prefix.Size == 32 {
		mask = ^uint32(0)
	}
	return hc.Bits&mask == prefix.Bits
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Reversed().Bits))
}

var _ fmt.Stringer = Code{}

func reverseBits(size byte, bits uint32) uint32 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse32(bits) >> (32 - size)
}
