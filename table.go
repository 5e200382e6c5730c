package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// Table maps each symbol to its Huffman code.
type Table map[Symbol]Code

// Code returns the code for a symbol.
func (table Table) Code(symbol Symbol) (Code, bool) {
	hc, found := table[symbol]
	return hc, found
}

// Symbols returns the symbols in this Table in ascending order.
func (table Table) Symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	slices.Sort(out)
	return out
}

// MinSize is the bit length of the shortest code, or 0 for an empty Table.
func (table Table) MinSize() int {
	var minSize int
	first := true
	for _, hc := range table {
		if first || hc.Size() < minSize {
			minSize = hc.Size()
			first = false
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code, or 0 for an empty Table.
func (table Table) MaxSize() int {
	var maxSize int
	for _, hc := range table {
		if hc.Size() > maxSize {
			maxSize = hc.Size()
		}
	}
	return maxSize
}

// WeightedLength returns the total number of bits needed to code every
// occurrence of every symbol in freqs.  Symbols missing from the Table
// contribute nothing.
func (table Table) WeightedLength(freqs []SymbolFrequency) int64 {
	var total int64
	for _, sf := range freqs {
		total += sf.Frequency * int64(table[sf.Symbol].Size())
	}
	return total
}

// IsPrefixFree returns true if no code in the Table is a prefix of another.
func (table Table) IsPrefixFree() bool {
	codes := make([]Code, 0, len(table))
	for _, hc := range table {
		codes = append(codes, hc)
	}

	// After sorting, a prefix sorts immediately before some string that
	// extends it, so comparing neighbours is enough.
	slices.Sort(codes)
	for index := 1; index < len(codes); index++ {
		if codes[index].HasPrefix(codes[index-1]) {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the Table's current
// state to the given writer.
func (table Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
