package huffdict

import (
	"fmt"

	"github.com/pkg/errors"
)

// Node is a node in a Huffman tree.  A Node is a leaf iff it has no
// children; an internal Node always has exactly two, which it owns
// exclusively.
type Node struct {
	// Left is the child selected by a 1 bit.
	Left *Node

	// Right is the child selected by a 0 bit.
	Right *Node

	// Frequency is the number of occurrences of Value for a leaf, or the
	// sum of the leaf frequencies below an internal node.
	Frequency uint64

	// Value is the byte represented by a leaf.  Unused for internal nodes.
	Value byte
}

// NewLeaf constructs a leaf Node.
func NewLeaf(value byte, freq uint64) *Node {
	return &Node{Value: value, Frequency: freq}
}

// NewInternal constructs an internal Node that takes ownership of left and
// right.  Its frequency is the sum of theirs.
func NewInternal(left *Node, right *Node) *Node {
	return &Node{Left: left, Right: right, Frequency: addFreq(left.Frequency, right.Frequency)}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dup := &Node{Frequency: n.Frequency, Value: n.Value}
	dup.Left = n.Left.Clone()
	dup.Right = n.Right.Clone()
	return dup
}

// Leaves appends one LeafFrequency per leaf below n, in depth-first
// left-to-right order, and returns the extended slice.
func (n *Node) Leaves(out []LeafFrequency) []LeafFrequency {
	if n == nil {
		return out
	}
	if n.IsLeaf() {
		return append(out, LeafFrequency{Value: n.Value, Frequency: n.Frequency})
	}
	out = n.Left.Leaves(out)
	return n.Right.Leaves(out)
}

// Depth returns the length of the longest path from n to a leaf.  A lone
// leaf has depth 0.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	left, right := n.Left.Depth(), n.Right.Depth()
	if left < right {
		left = right
	}
	return left + 1
}

// Validate checks the structural invariants of the subtree rooted at n:
// every internal node has two children and the sum of their frequencies,
// every leaf has a positive frequency, and no byte value appears twice.
func (n *Node) Validate() error {
	if n == nil {
		return nil
	}
	var seen [256]bool
	_, err := validateNode(n, &seen, 0)
	return err
}

func validateNode(n *Node, seen *[256]bool, depth int) (uint64, error) {
	if depth > maxTreeDepth {
		return 0, errors.Errorf("invalid Huffman tree: depth exceeds %d", maxTreeDepth)
	}
	if n.IsLeaf() {
		if n.Frequency == 0 {
			return 0, errors.Errorf("invalid Huffman tree: leaf %d has zero frequency", n.Value)
		}
		if seen[n.Value] {
			return 0, errors.Errorf("invalid Huffman tree: duplicate leaf %d", n.Value)
		}
		seen[n.Value] = true
		return n.Frequency, nil
	}
	if n.Left == nil || n.Right == nil {
		return 0, errors.New("invalid Huffman tree: internal node is missing a child")
	}
	leftSum, err := validateNode(n.Left, seen, depth+1)
	if err != nil {
		return 0, err
	}
	rightSum, err := validateNode(n.Right, seen, depth+1)
	if err != nil {
		return 0, err
	}
	sum := addFreq(leftSum, rightSum)
	if n.Frequency != sum {
		return 0, errors.Errorf("invalid Huffman tree: internal node frequency %d, children sum to %d", n.Frequency, sum)
	}
	return sum, nil
}

// String returns a short description of this node.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf(%d, %d)", n.Value, n.Frequency)
	}
	return fmt.Sprintf("Internal(%d)", n.Frequency)
}

var _ fmt.Stringer = (*Node)(nil)

// LeafFrequency pairs a byte value with its accumulated frequency.
type LeafFrequency struct {
	Value     byte
	Frequency uint64
}

// maxTreeDepth bounds the depth of a valid tree: with at most 256 distinct
// leaves, no leaf can be deeper than 255.
const maxTreeDepth = 255
