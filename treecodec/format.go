// Package treecodec reads and writes huffdict trees.
//
// Two formats are supported.  FormatJSON stores the tree as nested objects:
//
//     {"root": {"frequency": 3,
//               "left": {"character": 97, "frequency": 2},
//               "right": {"character": 98, "frequency": 1}}}
//
// A node is a leaf iff it carries "character"; any other node must carry
// both "left" and "right".
//
// FormatBinary stores the magic "HDT1" followed by a pre-order bit stream: a
// presence bit, then for each node a 1 bit with 8 bits of value and 64 bits
// of frequency for a leaf, or a 0 bit followed by the left and right
// subtrees for an internal node.
//
package treecodec

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffdict"
)

// ErrMalformedTree is returned (possibly wrapped) when stored data does not
// describe a valid tree.
var ErrMalformedTree = errors.New("treecodec: malformed tree")

// Format selects a storage format.
type Format byte

const (
	FormatJSON Format = iota
	FormatBinary
)

var formatNames = [...]string{
	FormatJSON:   "json",
	FormatBinary: "binary",
}

// ParseFormat converts a format name ("json" or "binary") to a Format.
func ParseFormat(str string) (Format, error) {
	for index, name := range formatNames {
		if strings.EqualFold(str, name) {
			return Format(index), nil
		}
	}
	return 0, errors.Errorf("treecodec: unknown format %q", str)
}

// String returns the name of this Format.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Write stores the tree rooted at root in the given format.  A nil root
// stores an empty tree.
func Write(w io.Writer, root *huffdict.Node, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, root)
	case FormatBinary:
		return writeBinary(w, root)
	default:
		return errors.Errorf("treecodec: unknown format %d", format)
	}
}

// Read loads a tree stored in the given format.  It returns a nil root for
// an empty tree.  Any structural problem yields an error wrapping
// ErrMalformedTree and no tree.
func Read(r io.Reader, format Format) (*huffdict.Node, error) {
	var root *huffdict.Node
	var err error
	switch format {
	case FormatJSON:
		root, err = readJSON(r)
	case FormatBinary:
		root, err = readBinary(r)
	default:
		return nil, errors.Errorf("treecodec: unknown format %d", format)
	}
	if err != nil {
		return nil, err
	}
	if err := root.Validate(); err != nil {
		return nil, errors.Wrap(ErrMalformedTree, err.Error())
	}
	return root, nil
}

// ReadDictionary loads a tree and wraps it in a Dictionary.
func ReadDictionary(r io.Reader, format Format) (*huffdict.Dictionary, error) {
	root, err := Read(r, format)
	if err != nil {
		return nil, err
	}
	return huffdict.NewDictionary(root)
}

// maxDepth bounds nesting while reading, before Validate sees the tree.
const maxDepth = 256

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedTree, format, args...)
}
