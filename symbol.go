package huffman

import (
	"fmt"
	"strconv"
	"unicode"
)

// Symbol represents a single Unicode code point in the alphabet being coded.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// NoSymbol marks the content of an internal tree node, which stands for the
// combined weight of its children rather than for any one symbol.
const NoSymbol = Symbol(-1)

// IsValid returns true if s is a code point that can appear in a Table.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the Go-quoted rune for s, or "NoSymbol".
func (s Symbol) String() string {
	if s == NoSymbol {
		return "NoSymbol"
	}
	if !s.IsValid() {
		return "Symbol(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return strconv.QuoteRune(rune(s))
}

var _ fmt.Stringer = Symbol(0)

// SymbolFrequency pairs a Symbol with the number of times it occurs.
type SymbolFrequency struct {
	Symbol    Symbol
	Frequency int64
}

// MakeSymbolFrequency is a convenience function that constructs a
// SymbolFrequency.
func MakeSymbolFrequency(symbol Symbol, frequency int64) SymbolFrequency {
	return SymbolFrequency{Symbol: symbol, Frequency: frequency}
}

// String returns a programmer-readable form such as "'a':5".
func (sf SymbolFrequency) String() string {
	return sf.Symbol.String() + ":" + strconv.FormatInt(sf.Frequency, 10)
}

// validateFrequencies checks the input contract of BuildTree: every symbol is
// valid, appears at most once, and has a non-negative frequency.
func validateFrequencies(freqs []SymbolFrequency) error {
	seen := make(map[Symbol]int, len(freqs))
	for index, sf := range freqs {
		if !sf.Symbol.IsValid() {
			return fmt.Errorf("entry %d: %v: %w", index, sf.Symbol, ErrInvalidSymbol)
		}
		if sf.Frequency < 0 {
			return fmt.Errorf("entry %d: %v has frequency %d: %w", index, sf.Symbol, sf.Frequency, ErrNegativeFrequency)
		}
		if first, found := seen[sf.Symbol]; found {
			return fmt.Errorf("entries %d and %d: %v: %w", first, index, sf.Symbol, ErrDuplicateSymbol)
		}
		seen[sf.Symbol] = index
	}
	return nil
}
