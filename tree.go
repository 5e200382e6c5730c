package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses one node in a Tree.
type NodeID int32

// NoNode is returned by some functions to clearly indicate that no node is
// being returned.
const NoNode = NodeID(-1)

// Side tells which child of its parent a node is.
type Side byte

const (
	Left Side = iota
	Right
)

// Bit returns the code character emitted when the path turns to this side.
func (side Side) Bit() byte {
	if side == Right {
		return '1'
	}
	return '0'
}

// String returns "Left" or "Right".
func (side Side) String() string {
	if side == Right {
		return "Right"
	}
	return "Left"
}

// Tree is a Huffman merge tree stored as an arena of nodes.
//
// Children are owned through the left and right links; the parent link is a
// plain back reference used only to walk from a leaf to the root.  Every node
// has either zero or two children once the tree is built.
//
type Tree struct {
	nodes []treeNode
	root  NodeID
}

type treeNode struct {
	content SymbolFrequency
	left    NodeID
	right   NodeID
	parent  NodeID
}

// NewTree returns an empty Tree with room for the given number of nodes.
func NewTree(capacity int) *Tree {
	return &Tree{nodes: make([]treeNode, 0, capacity), root: NoNode}
}

// NewLeaf adds a leaf holding the given symbol and frequency.  The new node
// has no children and no parent.
func (t *Tree) NewLeaf(content SymbolFrequency) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		content: content,
		left:    NoNode,
		right:   NoNode,
		parent:  NoNode,
	})
	return id
}

// NewInternal adds a node with no symbol of its own.  The caller is expected
// to attach both children, whose frequencies add up to freq.
func (t *Tree) NewInternal(freq int64) NodeID {
	return t.NewLeaf(SymbolFrequency{Symbol: NoSymbol, Frequency: freq})
}

// AttachLeft makes child the left child of parent.
func (t *Tree) AttachLeft(parent NodeID, child NodeID) {
	t.attach(parent, child, Left)
}

// AttachRight makes child the right child of parent.
func (t *Tree) AttachRight(parent NodeID, child NodeID) {
	t.attach(parent, child, Right)
}

func (t *Tree) attach(parent NodeID, child NodeID, side Side) {
	assert.Assertf(t.has(parent), "attach: parent %d is not in the tree", parent)
	assert.Assertf(t.has(child), "attach: child %d is not in the tree", child)
	assert.Assertf(parent != child, "attach: node %d cannot be its own child", child)
	assert.Assertf(t.nodes[child].parent == NoNode, "attach: node %d already has parent %d", child, t.nodes[child].parent)
	assert.Assertf(child != t.root, "attach: node %d is the root", child)

	p := &t.nodes[parent]
	slot := &p.left
	if side == Right {
		slot = &p.right
	}
	assert.Assertf(*slot == NoNode, "attach: node %d already has a %v child", parent, side)

	*slot = child
	t.nodes[child].parent = parent
}

// SetRoot records which node is the root of the finished tree.
func (t *Tree) SetRoot(id NodeID) {
	assert.Assertf(t.has(id), "SetRoot: node %d is not in the tree", id)
	assert.Assertf(t.nodes[id].parent == NoNode, "SetRoot: node %d has parent %d", id, t.nodes[id].parent)
	t.root = id
}

// Root returns the root node, or NoNode if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Content returns the symbol and frequency stored at a node.
func (t *Tree) Content(id NodeID) SymbolFrequency {
	return t.nodes[id].content
}

// Left returns the left child of a node, or NoNode.
func (t *Tree) Left(id NodeID) NodeID {
	return t.nodes[id].left
}

// Right returns the right child of a node, or NoNode.
func (t *Tree) Right(id NodeID) NodeID {
	return t.nodes[id].right
}

// Parent returns the parent of a node, or NoNode for a root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// IsLeaf returns true if the node has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	n := t.nodes[id]
	return n.left == NoNode && n.right == NoNode
}

// Side reports whether a node is the left or the right child of its parent.
// The node must have a parent.
func (t *Tree) Side(id NodeID) Side {
	parent := t.nodes[id].parent
	assert.Assertf(parent != NoNode, "Side: node %d has no parent", id)
	if t.nodes[parent].right == id {
		return Right
	}
	assert.Assertf(t.nodes[parent].left == id, "Side: node %d is not a child of its parent %d", id, parent)
	return Left
}

// Find searches the subtree rooted at from for the leaf holding target.
// Only the symbol is compared; internal nodes never match.
func (t *Tree) Find(from NodeID, target Symbol) (NodeID, bool) {
	if from == NoNode || target == NoSymbol {
		return NoNode, false
	}

	stack := make([]NodeID, 1, log2int(len(t.nodes))+1)
	stack[0] = from
	for len(stack) != 0 {
		last := len(stack) - 1
		id := stack[last]
		stack = stack[:last]

		n := t.nodes[id]
		if n.left == NoNode && n.right == NoNode {
			if n.content.Symbol == target {
				return id, true
			}
			continue
		}

		// Push right first so that the left subtree is searched first.
		if n.right != NoNode {
			stack = append(stack, n.right)
		}
		if n.left != NoNode {
			stack = append(stack, n.left)
		}
	}
	return NoNode, false
}

// Path returns the code for a node: one bit per level, collected from the
// node up to the root and then put into root-to-node order.
func (t *Tree) Path(id NodeID) Code {
	bits := make([]byte, 0, log2int(len(t.nodes))+1)
	for t.nodes[id].parent != NoNode {
		bits = append(bits, t.Side(id).Bit())
		id = t.nodes[id].parent
	}
	return MakeReversedCode(bits)
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for id := NodeID(0); id < NodeID(len(t.nodes)); id++ {
		n := t.nodes[id]
		if n.left == NoNode && n.right == NoNode {
			fmt.Fprintf(&buf, "\t%d = leaf %v, parent %d\n", id, n.content, n.parent)
		} else {
			fmt.Fprintf(&buf, "\t%d = node %d, children {%d, %d}, parent %d\n", id, n.content.Frequency, n.left, n.right, n.parent)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) has(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
