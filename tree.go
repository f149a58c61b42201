package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf carries a Symbol and has no
// children; an internal node has exactly two children and its Weight is the
// sum of theirs.
type Node struct {
	Symbol Symbol
	Weight int64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	assert.Assertf((n.Left == nil) == (n.Right == nil), "internal Huffman node with a single child")
	return n.Left == nil
}

// BuildTree drains q into a Huffman tree and returns its root.
//
// While more than one node is pending, the two lightest are removed; the
// first one removed becomes the left child and the second one the right child
// of a new node, which is pushed back.  If q holds a single node, that node is
// the root.  BuildTree returns ErrNoSymbols if q is empty.
func BuildTree(q *Queue) (*Node, error) {
	if q.Len() == 0 {
		return nil, ErrNoSymbols
	}
	for q.Len() > 1 {
		first := q.ExtractMin()
		second := q.ExtractMin()
		q.Push(&Node{
			Weight: first.Weight + second.Weight,
			Left:   first,
			Right:  second,
		})
	}
	return q.ExtractMin(), nil
}

// NewTree builds the Huffman tree for a frequency table.  Leaves are queued
// in the order of entries, which decides ties between equal weights.
func NewTree(entries []Entry) (*Node, error) {
	capacity := len(entries)
	if capacity == 0 {
		capacity = 1
	}
	q, err := NewQueue(capacity)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		q.Push(&Node{Symbol: e.Symbol, Weight: e.Weight})
	}
	return BuildTree(q)
}

// Dump writes one line per leaf, in left-to-right order, listing its symbol,
// weight, code length and code.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	walkLeaves(n, func(leaf *Node, hc Code) {
		fmt.Fprintf(&buf, "%3d  %8d  %2d  %0*b\n", leaf.Symbol, leaf.Weight, hc.Size, int(hc.Size), hc.Bits)
	})
	return buf.WriteTo(w)
}
