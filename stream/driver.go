package stream

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffdict"
)

// carryBytes returns the most bytes an incomplete code word can span in a
// tree of the given depth, counting the bits before it in its first byte.
func carryBytes(depth int) int {
	if depth < 1 {
		depth = 1
	}
	return (7+depth-1)/8 + 1
}

// Train folds everything read from r into dict, one chunk at a time, and
// returns the number of bytes read.
func Train(dict *huffdict.Dictionary, r io.Reader, opts Options) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	var total int64
	in := make([]byte, opts.ChunkSize)
	for {
		n, err := readChunk(r, in)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		dict.CreatePart(in[:n])
		total += int64(n)
	}
}

// Compress encodes everything read from r and writes the packed bits to w.
// The final byte is zero padded.
func Compress(dict *huffdict.Dictionary, r io.Reader, w io.Writer, opts Options) (Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return stats, err
	}

	in := make([]byte, opts.ChunkSize)
	out := make([]byte, opts.ChunkSize)
	var offset uint64
	for {
		n, err := readChunk(r, in)
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.BytesIn += int64(n)

		src := in[:n]
		for len(src) != 0 {
			consumed, bits, err := dict.Encode(out, src, offset)
			if err != nil && !errors.Is(err, huffdict.ErrShortBuffer) {
				return stats, err
			}
			assert.Assertf(consumed > 0, "no progress encoding into %d bytes at bit %d", len(out), offset)
			src = src[consumed:]

			full := int(bits / 8)
			if err := writeAll(w, out[:full], &stats); err != nil {
				return stats, err
			}
			stats.Bits += bits - offset

			offset = bits % 8
			if offset != 0 {
				out[0] = out[full]
			}
		}
	}

	if offset != 0 {
		if err := writeAll(w, out[:1], &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// Decompress decodes the packed bits read from r and writes exactly limit
// decoded bytes to w.  Padding after the last code word is never decoded.
//
// It is an error for r to run out before limit bytes have been decoded.
//
func Decompress(dict *huffdict.Dictionary, r io.Reader, w io.Writer, limit uint64, opts Options) (Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return stats, err
	}
	if limit == 0 {
		return stats, nil
	}
	if !dict.IsInitialized() {
		return stats, huffdict.ErrUninitialized
	}

	maxCarry := carryBytes(dict.Depth())
	in := make([]byte, maxCarry+opts.ChunkSize)
	out := make([]byte, opts.ChunkSize)
	remaining := limit
	var carry int
	var start uint64
	for remaining != 0 {
		n, err := readChunk(r, in[carry:carry+opts.ChunkSize])
		if err == io.EOF {
			return stats, errors.Wrapf(io.ErrUnexpectedEOF, "stream: input ended with %d bytes left to decode", remaining)
		}
		if err != nil {
			return stats, err
		}
		stats.BytesIn += int64(n)

		src := in[:carry+n]
		for remaining != 0 {
			dst := out
			if uint64(len(dst)) > remaining {
				dst = dst[:remaining]
			}

			bits, produced, err := dict.Decode(dst, src, start, 0)
			if err != nil && !errors.Is(err, huffdict.ErrShortBuffer) {
				return stats, err
			}
			if err := writeAll(w, dst[:produced], &stats); err != nil {
				return stats, err
			}
			remaining -= uint64(produced)
			stats.Bits += bits - start
			start = bits

			if err == nil {
				break
			}
		}
		if remaining == 0 {
			break
		}

		// Carry the bytes holding an incomplete code word to the front.
		index := int(start / 8)
		carry = copy(in, src[index:])
		start %= 8
		assert.Assertf(carry <= maxCarry, "carried %d bytes, max %d", carry, maxCarry)
	}
	return stats, nil
}

// readChunk fills buf from r.  A short final chunk is returned without
// error; io.EOF is returned only once nothing is left.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	switch err {
	case nil:
		return n, nil
	case io.ErrUnexpectedEOF:
		return n, nil
	case io.EOF:
		return 0, io.EOF
	default:
		return n, errors.Wrap(err, "stream: read failed")
	}
}

func writeAll(w io.Writer, p []byte, stats *Stats) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.Write(p)
	stats.BytesOut += int64(n)
	if err != nil {
		return errors.Wrap(err, "stream: write failed")
	}
	return nil
}
