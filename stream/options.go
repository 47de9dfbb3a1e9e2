// Package stream drives a huffdict.Dictionary over io.Reader and io.Writer
// streams using fixed-size buffers, threading the rolling bit offset from
// one chunk to the next.
package stream

import (
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffdict/treecodec"
)

const (
	// DefaultChunkSize is the buffer size used when none is given.
	DefaultChunkSize = 1024

	// MinChunkSize is the smallest permitted buffer size.  A destination
	// of this size always has room for at least one code after the
	// carried partial byte.
	MinChunkSize = 8
)

// Options configures the chunked driver.
type Options struct {
	// ChunkSize is the size of each input read and of each output buffer.
	ChunkSize int

	// Format is the storage format for the dictionary's tree.
	Format treecodec.Format
}

// DefaultOptions returns the default Options.
func DefaultOptions() Options {
	return Options{ChunkSize: DefaultChunkSize, Format: treecodec.FormatJSON}
}

// Validate checks that these Options are usable.
func (opts Options) Validate() error {
	if opts.ChunkSize < MinChunkSize {
		return errors.Errorf("stream: chunk size %d is smaller than %d", opts.ChunkSize, MinChunkSize)
	}
	return nil
}

// Stats reports the work done by Compress or Decompress.
type Stats struct {
	BytesIn  int64
	BytesOut int64
	Bits     uint64
}
