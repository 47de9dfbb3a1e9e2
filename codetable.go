package huffdict

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// CodeTable maps each byte value in a tree to its Code.  A CodeTable is
// derived from a tree on demand and is never updated in place.
type CodeTable struct {
	codes   [256]Code
	minSize byte
	maxSize byte
}

// NewCodeTable derives the CodeTable for the tree rooted at root.  A root
// that is itself a leaf is assigned the one-bit code "0".
//
// Returns ErrUninitialized if root is nil, or ErrCodeTooLong if any leaf is
// deeper than MaxCodeSize.
//
func NewCodeTable(root *Node) (CodeTable, error) {
	var t CodeTable
	if root == nil {
		return t, ErrUninitialized
	}

	if root.IsLeaf() {
		t.codes[root.Value] = MakeCode(1, 0)
		t.minSize, t.maxSize = 1, 1
		return t, nil
	}

	// Walk the tree with an explicit stack.  Codes are accumulated with
	// the first bit in the most significant position, then reversed so
	// that the first bit becomes the least significant.

	type stackItem struct {
		node *Node
		bits uint32
		size byte
	}

	var hasMinMax bool
	stack := make([]stackItem, 0, 32)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			t.codes[top.node.Value] = MakeReversedCode(top.size, top.bits)
			if !hasMinMax {
				hasMinMax = true
				t.minSize, t.maxSize = top.size, top.size
			} else if t.minSize > top.size {
				t.minSize = top.size
			} else if t.maxSize < top.size {
				t.maxSize = top.size
			}
			continue
		}

		if top.size >= MaxCodeSize {
			return CodeTable{}, errors.Wrapf(ErrCodeTooLong, "tree is deeper than %d", MaxCodeSize)
		}

		stack = append(stack, stackItem{top.node.Right, top.bits << 1, top.size + 1})
		stack = append(stack, stackItem{top.node.Left, top.bits<<1 | 1, top.size + 1})
	}
	return t, nil
}

// Lookup returns the Code for the given byte value.  ok is false if the
// value is not present in the tree.
func (t *CodeTable) Lookup(value byte) (hc Code, ok bool) {
	hc = t.codes[value]
	return hc, hc.Size != 0
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for value := 0; value < 256; value++ {
		hc := t.codes[value]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", value, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
