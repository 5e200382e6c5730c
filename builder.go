package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// GenerateEncoding computes a Huffman code for the given symbols and returns
// the code of every symbol.
//
// An empty input yields an empty Table.  A single symbol has no sibling to be
// distinguished from, so it is given the one-bit code "0".  Symbols with a
// frequency of 0 are kept and receive a code like any other symbol.
//
// Among trees of equal frequency, the one created first is merged first:
// leaves in input order, then internal nodes in the order they were made.
// Of each merged pair, the first tree becomes the left child ('0') and the
// second the right child ('1').
//
func GenerateEncoding(freqs []SymbolFrequency) (Table, error) {
	t, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	table := make(Table, len(freqs))
	if len(freqs) == 1 {
		table[freqs[0].Symbol] = Code("0")
		return table, nil
	}

	root := t.Root()
	for _, sf := range freqs {
		leaf, found := t.Find(root, sf.Symbol)
		assert.Assertf(found, "symbol %v is missing from its own Huffman tree", sf.Symbol)
		table[sf.Symbol] = t.Path(leaf)
	}
	return table, nil
}

// BuildTree runs the merge phase of the Huffman algorithm and returns the
// resulting tree.  The leaves occupy NodeIDs 0 .. len(freqs)-1 in input order.
func BuildTree(freqs []SymbolFrequency) (*Tree, error) {
	if err := validateFrequencies(freqs); err != nil {
		return nil, err
	}

	numLeaves := len(freqs)
	numNodes := 2*numLeaves - 1
	if numLeaves == 0 {
		numNodes = 0
	}

	t := NewTree(numNodes)
	if numLeaves == 0 {
		return t, nil
	}

	// Step 1: one leaf per symbol, all of them in a minheap.
	//
	// A NodeID doubles as the creation sequence number, which is what
	// breaks ties between trees of equal frequency.

	h := forestHeap{list: make([]forestItem, 0, numLeaves)}
	for _, sf := range freqs {
		id := t.NewLeaf(sf)
		h.list = append(h.list, forestItem{id: id, freq: sf.Frequency})
	}
	h.Init()

	// Step 2: pop the two lightest trees, join them under a new internal
	// node, and push that node back, until one tree is left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(forestItem)
		b := heap.Pop(&h).(forestItem)

		freqSum := addSaturating(a.freq, b.freq)
		parent := t.NewInternal(freqSum)
		t.AttachLeft(parent, a.id)
		t.AttachRight(parent, b.id)

		heap.Push(&h, forestItem{id: parent, freq: freqSum})
	}

	root := heap.Pop(&h).(forestItem)
	t.SetRoot(root.id)
	return t, nil
}

// type forestItem + type forestHeap {{{

type forestItem struct {
	id   NodeID
	freq int64
}

type forestHeap struct {
	list []forestItem
}

func (h *forestHeap) Init() {
	heap.Init(h)
}

func (h *forestHeap) Len() int {
	return len(h.list)
}

func (h *forestHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *forestHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.id < b.id
}

func (h *forestHeap) Push(x interface{}) {
	h.list = append(h.list, x.(forestItem))
}

func (h *forestHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*forestHeap)(nil)

// }}}
