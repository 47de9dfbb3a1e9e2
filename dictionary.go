package huffdict

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrUninitialized is returned by operations on a Dictionary that has
	// no tree.
	ErrUninitialized = errors.New("huffdict: dictionary is not initialized")

	// ErrUnknownSymbol is returned by Encode when the input contains a
	// byte value that the dictionary's tree does not contain.
	ErrUnknownSymbol = errors.New("huffdict: byte value not present in dictionary")

	// ErrShortBuffer is returned by Encode and Decode when the destination
	// buffer filled up before the source was exhausted.  The returned
	// progress is valid and the call can be resumed.
	ErrShortBuffer = errors.New("huffdict: destination buffer is full")

	// ErrCodeTooLong is returned when the tree is too deep for its codes
	// to fit in MaxCodeSize bits.
	ErrCodeTooLong = errors.New("huffdict: code exceeds maximum size")
)

// Dictionary holds a Huffman tree trained from observed byte frequencies.
// The zero value is an empty, uninitialized Dictionary.
//
// A Dictionary is not safe for concurrent use.
//
type Dictionary struct {
	root *Node
}

// NewDictionary returns a Dictionary that takes ownership of the tree rooted
// at root, which is typically a tree restored from storage.  A nil root
// yields an uninitialized Dictionary.  A malformed tree is rejected.
func NewDictionary(root *Node) (*Dictionary, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return &Dictionary{root: root}, nil
}

// Create discards any existing tree and builds a new one from data alone.
func (d *Dictionary) Create(data []byte) {
	freqs := CountFrequencies(data)
	d.root = buildTree(&freqs)
}

// CreatePart rebuilds the tree from the union of the frequencies already
// folded into the dictionary and the frequencies observed in data.  The
// previous tree stays in place until the new one is complete.
func (d *Dictionary) CreatePart(data []byte) {
	freqs := CountFrequencies(data)
	if d.root != nil {
		freqs.Add(d.root.Leaves(nil))
	}
	d.root = buildTree(&freqs)
}

// Size returns the total number of bytes folded into the dictionary across
// all builds, or 0 if it is uninitialized.
func (d *Dictionary) Size() uint64 {
	if d.root == nil {
		return 0
	}
	return d.root.Frequency
}

// IsInitialized returns true iff the dictionary has a tree.
func (d *Dictionary) IsInitialized() bool {
	return d.root != nil
}

// Root returns a deep copy of the dictionary's tree, or nil if the
// dictionary is uninitialized.
func (d *Dictionary) Root() *Node {
	return d.root.Clone()
}

// Leaves returns the (byte value, frequency) pair of every leaf in the tree.
func (d *Dictionary) Leaves() []LeafFrequency {
	return d.root.Leaves(nil)
}

// Depth returns the depth of the dictionary's tree, which is also the length
// of its longest code, or 0 if it is uninitialized.
func (d *Dictionary) Depth() int {
	return d.root.Depth()
}

// Clone returns a deep copy of this Dictionary.
func (d *Dictionary) Clone() *Dictionary {
	return &Dictionary{root: d.root.Clone()}
}

// Codes derives the CodeTable for the dictionary's current tree.
func (d *Dictionary) Codes() (CodeTable, error) {
	return NewCodeTable(d.root)
}

// Dump writes a programmer-readable debugging dump of the Dictionary's
// current state to the given writer.
func (d *Dictionary) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Dictionary{\n")
	fmt.Fprintf(&buf, "\tSize() = %d\n", d.Size())
	if d.root != nil {
		dumpNode(&buf, d.root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	buf.WriteString(n.String())
	buf.WriteByte('\n')
	if !n.IsLeaf() {
		dumpNode(buf, n.Left, depth+1)
		dumpNode(buf, n.Right, depth+1)
	}
}
