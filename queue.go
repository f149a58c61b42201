package huff

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Queue holds the pending nodes of a Huffman tree under construction, ordered
// by weight.
//
// Nodes of equal weight leave the Queue in the order in which they entered
// it.  Different tie-break rules yield different (equally optimal) trees, so
// this rule is part of the container format.
type Queue struct {
	h       nodeHeap
	nextSeq uint64
}

// NewQueue returns an empty Queue with room for capacity nodes.  The Queue
// grows as needed.
func NewQueue(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &Queue{h: nodeHeap{list: make([]queuedNode, 0, capacity)}}, nil
}

// Len returns the number of pending nodes.
func (q *Queue) Len() int {
	return q.h.Len()
}

// Push adds a node to the Queue.
func (q *Queue) Push(node *Node) {
	heap.Push(&q.h, queuedNode{node: node, seq: q.nextSeq})
	q.nextSeq++
}

// ExtractMin removes and returns the lightest node, or nil if the Queue is
// empty.  Among nodes of equal weight, the one pushed first is returned.
func (q *Queue) ExtractMin() *Node {
	if q.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.h).(queuedNode).node
}

// Dump writes one line per pending node, in the order ExtractMin would return
// them, listing its symbol and weight.  Internal nodes show "*" in place of a
// symbol.  The Queue is not modified.
func (q *Queue) Dump(w io.Writer) (int64, error) {
	list := make([]queuedNode, len(q.h.list))
	copy(list, q.h.list)
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.node.Weight != b.node.Weight {
			return a.node.Weight < b.node.Weight
		}
		return a.seq < b.seq
	})

	var buf bytes.Buffer
	for _, item := range list {
		if item.node.IsLeaf() {
			fmt.Fprintf(&buf, "%3d  %8d\n", item.node.Symbol, item.node.Weight)
		} else {
			fmt.Fprintf(&buf, "  *  %8d\n", item.node.Weight)
		}
	}
	return buf.WriteTo(w)
}

// type queuedNode + type nodeHeap {{{

type queuedNode struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []queuedNode
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queuedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queuedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
