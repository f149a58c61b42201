package huff

import (
	"github.com/chronos-tachyon/assert"
)

// walkLeaves visits every leaf of the tree rooted at root, left before right,
// passing the path from root to leaf as a Code (left = 0, right = 1).
//
// A tree that is a single leaf has no edges, but a zero-length code cannot be
// read back from a bitstream, so that leaf is visited with the one-bit code
// "0".
func walkLeaves(root *Node, visit func(leaf *Node, hc Code)) {
	if root.IsLeaf() {
		visit(root, MakeCode(1, 0))
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes get pushed; the stack depth is the code length
	// of the next child.

	type stackItem struct {
		node *Node
		hc   Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	stackPush := func(node *Node, hc Code) {
		assert.Assertf(hc.Size < MaxCodeSize, "Huffman tree deeper than %d", MaxCodeSize)
		stack = append(stack, stackItem{node: node, hc: hc})
	}

	processChild := func(child *Node, hc Code) {
		if child.IsLeaf() {
			visit(child, hc)
			return
		}
		stackPush(child, hc)
	}

	stackPush(root, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.hc.Append(0))
		case 1:
			processChild(top.node.Right, top.hc.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

// codeTable is the symbol-indexed result of walking a tree.
type codeTable struct {
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

func deriveCodes(root *Node) codeTable {
	var t codeTable
	var hasMinMax bool
	walkLeaves(root, func(leaf *Node, hc Code) {
		t.codes[leaf.Symbol] = hc
		if !hasMinMax {
			hasMinMax = true
			t.minSize = hc.Size
			t.maxSize = hc.Size
		} else if t.minSize > hc.Size {
			t.minSize = hc.Size
		} else if t.maxSize < hc.Size {
			t.maxSize = hc.Size
		}
	})
	return t
}
