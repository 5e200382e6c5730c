// Command huffcodes prints a Huffman code table for the characters of a text.
//
// Usage:
//
//     huffcodes [-text STRING] [-sort code|symbol|freq] [FILE...]
//
// With no FILE and no -text, a built-in sample sentence is used.  Several
// files are counted together as one text.
//
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/chronos-tachyon/huffcode"
)

const sampleText = "Guten Morgen, liebe Sorgen, seid ihr auch schon wieder da? Hast du auch so gut geschlafen? Na, dann ist ja alles klar."

var (
	flagText = flag.String("text", "", "text to build the code for, instead of reading files")
	flagSort = flag.String("sort", "code", "row order: code, symbol or freq")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffcodes: ")
	flag.Parse()

	opts := options{text: *flagText, order: *flagSort, files: flag.Args()}
	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	text  string
	order string
	files []string
}

func run(ctx context.Context, opts options, w io.Writer) error {
	var freqs []huffman.SymbolFrequency
	switch {
	case len(opts.files) != 0:
		var err error
		freqs, err = countFiles(ctx, opts.files)
		if err != nil {
			return err
		}
	case opts.text != "":
		freqs = huffman.CountFrequencies(opts.text)
	default:
		freqs = huffman.CountFrequencies(sampleText)
	}

	table, err := huffman.GenerateEncoding(freqs)
	if err != nil {
		return err
	}

	if err := sortRows(freqs, table, opts.order); err != nil {
		return err
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return printAligned(w, freqs, table)
	}
	return printPlain(w, freqs, table)
}

// countFiles counts every file concurrently and merges the results in
// argument order.
func countFiles(ctx context.Context, files []string) ([]huffman.SymbolFrequency, error) {
	results := make([][]huffman.SymbolFrequency, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			freqs, err := huffman.CountReader(f)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = freqs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return huffman.MergeFrequencies(results...), nil
}

func sortRows(freqs []huffman.SymbolFrequency, table huffman.Table, order string) error {
	switch order {
	case "freq":
		huffman.SortByFrequency(freqs)
	case "symbol":
		slices.SortFunc(freqs, func(a, b huffman.SymbolFrequency) int {
			return int(a.Symbol) - int(b.Symbol)
		})
	case "code":
		slices.SortStableFunc(freqs, func(a, b huffman.SymbolFrequency) int {
			ca, cb := table[a.Symbol], table[b.Symbol]
			if ca.Size() != cb.Size() {
				return ca.Size() - cb.Size()
			}
			switch {
			case ca < cb:
				return -1
			case ca > cb:
				return 1
			}
			return 0
		})
	default:
		return fmt.Errorf("unknown -sort value %q", order)
	}
	return nil
}

func printPlain(w io.Writer, freqs []huffman.SymbolFrequency, table huffman.Table) error {
	for _, sf := range freqs {
		if _, err := fmt.Fprintf(w, "%v\t%d\t%s\n", sf.Symbol, sf.Frequency, string(table[sf.Symbol])); err != nil {
			return err
		}
	}
	return nil
}

func printAligned(w io.Writer, freqs []huffman.SymbolFrequency, table huffman.Table) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "SYMBOL\tCOUNT\tCODE\t")
	var total int64
	for _, sf := range freqs {
		total += sf.Frequency
		p.Fprintf(tw, "%v\t%d\t%s\t\n", sf.Symbol, sf.Frequency, string(table[sf.Symbol]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	bits := table.WeightedLength(freqs)
	_, err := p.Fprintf(w, "%d symbols, %d characters, %d bits\n", len(freqs), total, bits)
	return err
}
