package huffdict

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// buildTree constructs a Huffman tree from the given frequencies, or returns
// nil if every frequency is zero.
//
// The two lowest-frequency nodes are repeatedly combined into a new internal
// node (the lower one becoming the left child) until a single root remains.
// Nodes of equal frequency are combined in the order they entered the heap,
// which for leaves is ascending byte value.  A new internal node therefore
// ranks after every node already queued with the same frequency, not before
// them, which fixes the shape of the tree and the resulting codes.
//
func buildTree(freqs *Frequencies) *Node {
	leaves := freqs.Sorted()
	if len(leaves) == 0 {
		return nil
	}

	// Step 1: build a minheap.

	h := nodeHeap{list: make([]nodeAndSeq, 0, len(leaves))}
	for _, leaf := range leaves {
		h.list = append(h.list, nodeAndSeq{NewLeaf(leaf.Value, leaf.Frequency), h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	// Step 2: pop the two lowest-frequency nodes, combine them, and push
	// the combination back until only the root is left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(a.node, b.node), h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(root.Frequency == freqs.Total(), "root frequency %d != total %d", root.Frequency, freqs.Total())
	return root
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Frequency != b.node.Frequency {
		return a.node.Frequency < b.node.Frequency
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
