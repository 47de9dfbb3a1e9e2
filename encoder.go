package huffdict

import (
	"math"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encode packs the codes for the bytes of src into dst, starting at the
// absolute bit position bitOffset (byte bitOffset/8, bit bitOffset%8).  The
// bits of dst[bitOffset/8] below bitOffset%8 are preserved.
//
// On success, Encode returns len(src) and the absolute bit position in dst
// just past the last code written.  If dst fills up first, Encode returns
// the number of bytes of src fully encoded, the bit position reached, and
// ErrShortBuffer; the partially filled trailing byte, if any, has already
// been stored.  To resume, carry that byte to the start of the next
// destination and call Encode again with src[consumed:] and
// bitOffset = bits % 8.
//
// Encode returns (0, 0, nil) if src is empty and (0, 0, err) without
// touching dst if the dictionary is uninitialized, if dst is empty, if src
// contains any byte value missing from the tree, or if the tree's codes do
// not fit in MaxCodeSize bits.
//
func (d *Dictionary) Encode(dst []byte, src []byte, bitOffset uint64) (consumed int, bits uint64, err error) {
	if d.root == nil {
		return 0, 0, ErrUninitialized
	}
	if len(src) == 0 {
		return 0, 0, nil
	}
	if len(dst) == 0 {
		return 0, 0, ErrShortBuffer
	}

	capacity := bufferBits(len(dst))
	assert.Assertf(bitOffset < capacity, "bitOffset %d is outside of dst (%d bits)", bitOffset, capacity)

	table, err := NewCodeTable(d.root)
	if err != nil {
		return 0, 0, err
	}

	// Reject the whole call up front, so that no partial output is ever
	// produced for an input with an unknown byte.
	for _, ch := range src {
		if _, ok := table.Lookup(ch); !ok {
			return 0, 0, errors.Wrapf(ErrUnknownSymbol, "byte %d", ch)
		}
	}

	pos := bitOffset
	index := int(pos / 8)
	used := uint(pos % 8)
	acc := uint64(dst[index]) & (uint64(1)<<used - 1)

	for i, ch := range src {
		hc := table.codes[ch]
		if pos+uint64(hc.Size) > capacity {
			if used != 0 {
				dst[index] = byte(acc)
			}
			return i, pos, ErrShortBuffer
		}

		acc |= uint64(hc.Bits) << used
		used += uint(hc.Size)
		pos += uint64(hc.Size)

		for used >= 8 {
			dst[index] = byte(acc)
			index++
			acc >>= 8
			used -= 8
		}
	}

	if used != 0 {
		dst[index] = byte(acc)
	}
	return len(src), pos, nil
}

// bufferBits returns the number of bits in a buffer of n bytes, clamped so
// that bit positions within it cannot overflow.
func bufferBits(n int) uint64 {
	size := uint64(n)
	if size > math.MaxUint64/8 {
		size = math.MaxUint64 / 8
	}
	return size * 8
}
