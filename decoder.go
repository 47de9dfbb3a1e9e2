package huffdict

import (
	"github.com/chronos-tachyon/assert"
)

// Decode walks the tree bit by bit through src, starting at the absolute bit
// position startBit, and writes each decoded byte to dst.
//
// If endBits is 0, every bit of src is meaningful.  Otherwise only the
// endBits least significant bits of the final byte of src are.
//
// Decode returns the absolute bit position just past the last complete code
// word it decoded, and the number of bytes written to dst.  Trailing bits
// that do not complete a code word are left unconsumed; a caller feeding
// src in chunks carries them into the next call with startBit = bits % 8.
//
// If dst fills up while src still holds a complete code word, Decode returns
// its progress along with ErrShortBuffer.  On an uninitialized dictionary it
// returns (0, 0, ErrUninitialized) without touching dst.
//
func (d *Dictionary) Decode(dst []byte, src []byte, startBit uint64, endBits uint) (bits uint64, produced int, err error) {
	if d.root == nil {
		return 0, 0, ErrUninitialized
	}

	assert.Assertf(endBits < 8, "endBits %d must be less than 8", endBits)
	limit := bufferBits(len(src))
	if endBits != 0 && len(src) != 0 {
		limit = limit - 8 + uint64(endBits)
	}
	assert.Assertf(startBit <= limit, "startBit %d is past the end of src (%d bits)", startBit, limit)

	root := d.root
	pos := startBit
	for pos < limit {
		node := root
		next := pos
		if node.IsLeaf() {
			// A lone leaf has the one-bit code "0"; accept either value.
			next++
		}
		for !node.IsLeaf() {
			if next >= limit {
				return pos, produced, nil
			}
			if (src[next/8]>>(next%8))&1 != 0 {
				node = node.Left
			} else {
				node = node.Right
			}
			next++
		}

		if produced >= len(dst) {
			return pos, produced, ErrShortBuffer
		}
		dst[produced] = node.Value
		produced++
		pos = next
	}
	return pos, produced, nil
}
