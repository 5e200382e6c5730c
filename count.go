package huffman

import (
	"bufio"
	"cmp"
	"errors"
	"io"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"
)

// CountFrequencies counts how often each code point occurs in text, after
// converting text to Unicode Normalization Form C.  The result lists symbols
// in order of first occurrence and never contains a zero frequency.
func CountFrequencies(text string) []SymbolFrequency {
	freqs, err := CountReader(strings.NewReader(text))
	if err != nil {
		// strings.Reader never fails.
		panic(err)
	}
	return freqs
}

// CountReader is like CountFrequencies, but reads the text from r.  Invalid
// UTF-8 is counted as U+FFFD.
func CountReader(r io.Reader) ([]SymbolFrequency, error) {
	br := bufio.NewReader(norm.NFC.Reader(r))

	var c counter
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return c.list, err
		}
		c.add(Symbol(ch), 1)
	}
	return c.list, nil
}

// MergeFrequencies adds up the frequencies of the same symbol across several
// lists.  Symbols keep the order in which they first appear.
func MergeFrequencies(lists ...[]SymbolFrequency) []SymbolFrequency {
	var c counter
	for _, list := range lists {
		for _, sf := range list {
			c.add(sf.Symbol, sf.Frequency)
		}
	}
	return c.list
}

// SortByFrequency orders freqs from the most to the least frequent symbol,
// breaking ties by ascending symbol.
func SortByFrequency(freqs []SymbolFrequency) {
	slices.SortStableFunc(freqs, func(a, b SymbolFrequency) int {
		if a.Frequency != b.Frequency {
			return cmp.Compare(b.Frequency, a.Frequency)
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
}

type counter struct {
	list  []SymbolFrequency
	index map[Symbol]int
}

func (c *counter) add(symbol Symbol, n int64) {
	if c.index == nil {
		c.index = make(map[Symbol]int)
	}
	if i, found := c.index[symbol]; found {
		c.list[i].Frequency = addSaturating(c.list[i].Frequency, n)
		return
	}
	c.index[symbol] = len(c.list)
	c.list = append(c.list, SymbolFrequency{Symbol: symbol, Frequency: n})
}
