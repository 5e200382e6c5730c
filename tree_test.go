package huffman

import (
	"testing"
)

// makeTestTree builds:
//
//        4
//       / \
//     'x'  3
//         / \
//       'y' 'z'
//
func makeTestTree() *Tree {
	t := NewTree(5)
	x := t.NewLeaf(SymbolFrequency{'x', 3})
	y := t.NewLeaf(SymbolFrequency{'y', 1})
	z := t.NewLeaf(SymbolFrequency{'z', 1})
	yz := t.NewInternal(2)
	t.AttachLeft(yz, y)
	t.AttachRight(yz, z)
	root := t.NewInternal(5)
	t.AttachLeft(root, x)
	t.AttachRight(root, yz)
	t.SetRoot(root)
	return t
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()
	fn()
}

func TestTree_NewLeaf(t *testing.T) {
	tree := NewTree(1)
	id := tree.NewLeaf(SymbolFrequency{'q', 9})
	if !tree.IsLeaf(id) {
		t.Errorf("expected node %d to be a leaf", id)
	}
	if p := tree.Parent(id); p != NoNode {
		t.Errorf("expected no parent, got %d", p)
	}
	if c := tree.Content(id); c != (SymbolFrequency{'q', 9}) {
		t.Errorf("wrong content: %v", c)
	}
}

func TestTree_Attach(t *testing.T) {
	tree := makeTestTree()
	root := tree.Root()

	if tree.IsLeaf(root) {
		t.Errorf("expected root %d to be internal", root)
	}
	if s := tree.Content(root).Symbol; s != NoSymbol {
		t.Errorf("expected internal node to hold NoSymbol, got %v", s)
	}

	type testRow struct {
		id     NodeID
		parent NodeID
		side   Side
	}
	testData := [...]testRow{
		{id: 0, parent: 4, side: Left},
		{id: 1, parent: 3, side: Left},
		{id: 2, parent: 3, side: Right},
		{id: 3, parent: 4, side: Right},
	}
	for _, row := range testData {
		if p := tree.Parent(row.id); p != row.parent {
			t.Errorf("node %d: expected parent %d, got %d", row.id, row.parent, p)
		}
		if s := tree.Side(row.id); s != row.side {
			t.Errorf("node %d: expected side %v, got %v", row.id, row.side, s)
		}
	}
}

func TestTree_AttachMisuse(t *testing.T) {
	expectPanic(t, "reattach", func() {
		tree := makeTestTree()
		extra := tree.NewInternal(1)
		tree.AttachLeft(extra, 1)
	})
	expectPanic(t, "occupied", func() {
		tree := makeTestTree()
		extra := tree.NewLeaf(SymbolFrequency{'w', 1})
		tree.AttachRight(3, extra)
	})
	expectPanic(t, "self", func() {
		tree := NewTree(1)
		id := tree.NewInternal(0)
		tree.AttachLeft(id, id)
	})
	expectPanic(t, "unknown", func() {
		tree := makeTestTree()
		tree.AttachLeft(4, 99)
	})
	expectPanic(t, "side of root", func() {
		tree := makeTestTree()
		tree.Side(tree.Root())
	})
}

func TestTree_Find(t *testing.T) {
	tree := makeTestTree()
	root := tree.Root()

	type testRow struct {
		from   NodeID
		symbol Symbol
		expect NodeID
		found  bool
	}
	testData := [...]testRow{
		{from: root, symbol: 'x', expect: 0, found: true},
		{from: root, symbol: 'y', expect: 1, found: true},
		{from: root, symbol: 'z', expect: 2, found: true},
		{from: root, symbol: 'w', expect: NoNode, found: false},
		{from: root, symbol: NoSymbol, expect: NoNode, found: false},
		{from: 3, symbol: 'x', expect: NoNode, found: false},
		{from: 3, symbol: 'z', expect: 2, found: true},
		{from: 0, symbol: 'x', expect: 0, found: true},
		{from: NoNode, symbol: 'x', expect: NoNode, found: false},
	}
	for _, row := range testData {
		id, found := tree.Find(row.from, row.symbol)
		if id != row.expect || found != row.found {
			t.Errorf("Find(%d, %v): expected {%d, %t}, got {%d, %t}", row.from, row.symbol, row.expect, row.found, id, found)
		}
	}
}

func TestTree_Path(t *testing.T) {
	tree := makeTestTree()

	type testRow struct {
		id     NodeID
		expect Code
	}
	testData := [...]testRow{
		{id: 0, expect: "0"},
		{id: 1, expect: "10"},
		{id: 2, expect: "11"},
		{id: 3, expect: "1"},
		{id: 4, expect: ""},
	}
	for _, row := range testData {
		if actual := tree.Path(row.id); actual != row.expect {
			t.Errorf("Path(%d): expected %s, got %s", row.id, row.expect, actual)
		}
	}
}

func TestSide_Bit(t *testing.T) {
	if b := Left.Bit(); b != '0' {
		t.Errorf("Left.Bit(): expected '0', got %q", b)
	}
	if b := Right.Bit(); b != '1' {
		t.Errorf("Right.Bit(): expected '1', got %q", b)
	}
}
