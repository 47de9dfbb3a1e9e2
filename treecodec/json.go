package treecodec

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffdict"
)

type jsonDocument struct {
	Root json.RawMessage `json:"root"`
}

type jsonNode struct {
	Character *uint8    `json:"character,omitempty"`
	Frequency *uint64   `json:"frequency,omitempty"`
	Left      *jsonNode `json:"left,omitempty"`
	Right     *jsonNode `json:"right,omitempty"`
}

func writeJSON(w io.Writer, root *huffdict.Node) error {
	var doc struct {
		Root *jsonNode `json:"root"`
	}
	doc.Root = toJSON(root)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "treecodec: failed to write JSON tree")
	}
	return nil
}

func toJSON(n *huffdict.Node) *jsonNode {
	if n == nil {
		return nil
	}
	freq := n.Frequency
	out := &jsonNode{Frequency: &freq}
	if n.IsLeaf() {
		value := n.Value
		out.Character = &value
		return out
	}
	out.Left = toJSON(n.Left)
	out.Right = toJSON(n.Right)
	return out
}

func readJSON(r io.Reader) (*huffdict.Node, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(ErrMalformedTree, err.Error())
	}
	if len(doc.Root) == 0 {
		return nil, malformed("missing \"root\"")
	}

	var node *jsonNode
	if err := json.Unmarshal(doc.Root, &node); err != nil {
		return nil, errors.Wrap(ErrMalformedTree, err.Error())
	}
	if node == nil {
		return nil, nil
	}
	return fromJSON(node, 0)
}

func fromJSON(n *jsonNode, depth int) (*huffdict.Node, error) {
	if depth >= maxDepth {
		return nil, malformed("tree is nested deeper than %d", maxDepth)
	}

	if n.Character != nil {
		if n.Left != nil || n.Right != nil {
			return nil, malformed("leaf %d has children", *n.Character)
		}
		if n.Frequency == nil || *n.Frequency == 0 {
			return nil, malformed("leaf %d has no frequency", *n.Character)
		}
		return huffdict.NewLeaf(*n.Character, *n.Frequency), nil
	}

	if n.Left == nil || n.Right == nil {
		return nil, malformed("internal node is missing a child")
	}
	left, err := fromJSON(n.Left, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := fromJSON(n.Right, depth+1)
	if err != nil {
		return nil, err
	}
	out := huffdict.NewInternal(left, right)
	if n.Frequency != nil && *n.Frequency != out.Frequency {
		return nil, malformed("internal node frequency %d, children sum to %d", *n.Frequency, out.Frequency)
	}
	return out, nil
}
