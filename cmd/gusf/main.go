// Command gusf is the terminal entry point spec.md §1 names as an
// out-of-scope "terminal menu driver" collaborator: a thin argument-
// driven dispatcher in front of the matching/indexing engines, in the
// same shape as cmd/xtract.go (parse flags, open the input, stream
// results to stdout) but mapped onto this module's algorithms instead
// of XML record extraction.
package main

import (
	"fmt"
	"os"

	"github.com/rafalcode/gusf/internal/ahocorasick"
	"github.com/rafalcode/gusf/internal/bmset"
	"github.com/rafalcode/gusf/internal/boyermoore"
	"github.com/rafalcode/gusf/internal/config"
	"github.com/rafalcode/gusf/internal/corpus"
	"github.com/rafalcode/gusf/internal/kmp"
	"github.com/rafalcode/gusf/internal/lz"
	"github.com/rafalcode/gusf/internal/naive"
	"github.com/rafalcode/gusf/internal/repeats/bigpath"
	"github.com/rafalcode/gusf/internal/repeats/nonoverlap"
	"github.com/rafalcode/gusf/internal/repeats/primitives"
	"github.com/rafalcode/gusf/internal/repeats/supermax"
	"github.com/rafalcode/gusf/internal/repeats/tandem"
	"github.com/rafalcode/gusf/internal/repeats/vocabulary"
	"github.com/rafalcode/gusf/internal/report"
	"github.com/rafalcode/gusf/internal/sufftree"
	"github.com/rafalcode/gusf/internal/suffixarray"
	"github.com/rafalcode/gusf/internal/wordindex"
)

func main() {
	cfg := config.ParseOrExit(os.Args[1:])

	text, err := loadText(cfg)
	if err != nil {
		fail(err)
	}

	p := report.New(os.Stdout, !cfg.Color)

	switch cfg.Algorithm {
	case config.AlgoNaive:
		runNaive(p, cfg, text)
	case config.AlgoKMP:
		runKMP(p, cfg, text)
	case config.AlgoBoyerMoore:
		runBoyerMoore(p, cfg, text)
	case config.AlgoAhoCorasick:
		runAhoCorasick(p, cfg, text)
	case config.AlgoBMSet:
		runBMSet(p, cfg, text)
	case config.AlgoSuffixArray:
		runSuffixArray(p, text)
	case config.AlgoLZ:
		runLZ(p, text)
	case config.AlgoRepeats:
		runRepeats(p, text)
	default:
		fail(fmt.Errorf("unknown algorithm %q", cfg.Algorithm))
	}
}

func loadText(cfg *config.Config) ([]byte, error) {
	if cfg.Text != "" {
		return []byte(cfg.Text), nil
	}
	s, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
	os.Exit(1)
}

func patterns(cfg *config.Config) [][]byte {
	out := make([][]byte, len(cfg.Patterns))
	for i, pat := range cfg.Patterns {
		if cfg.Stem {
			pat = wordindex.Stem(pat)
		}
		out[i] = []byte(pat)
	}
	return out
}

func runNaive(p *report.Printer, cfg *config.Config, text []byte) {
	for _, pat := range patterns(cfg) {
		hits, err := naive.Search(pat, text, false)
		if err != nil {
			fail(err)
		}
		for _, pos := range hits {
			p.MatchLine(pos, "match", 1)
			fmt.Fprintln(os.Stdout, p.Highlight(text, pos-1, len(pat)))
		}
	}
}

func runKMP(p *report.Printer, cfg *config.Config, text []byte) {
	for _, pat := range patterns(cfg) {
		f, err := kmp.Build(pat, kmp.SPViaZ)
		if err != nil {
			fail(err)
		}
		hits := kmp.Search(f, pat, text, false)
		for _, pos := range hits {
			p.MatchLine(pos, "match", 1)
			fmt.Fprintln(os.Stdout, p.Highlight(text, pos-1, len(pat)))
		}
	}
}

func runBoyerMoore(p *report.Printer, cfg *config.Config, text []byte) {
	for _, pat := range patterns(cfg) {
		t, err := boyermoore.Build(pat)
		if err != nil {
			fail(err)
		}
		hits := boyermoore.OptimizedSearch(t, text, false)
		for _, pos := range hits {
			p.MatchLine(pos, "match", 1)
			fmt.Fprintln(os.Stdout, p.Highlight(text, pos-1, len(pat)))
		}
	}
}

func runAhoCorasick(p *report.Printer, cfg *config.Config, text []byte) {
	m, err := ahocorasick.Build(patterns(cfg))
	if err != nil {
		fail(err)
	}
	matches := m.Scan(text)
	p.MatchLine(0, "match", len(matches))
	for _, mt := range matches {
		fmt.Fprintln(os.Stdout, p.Highlight(text, mt.Pos-1, mt.Length))
	}
}

func runBMSet(p *report.Printer, cfg *config.Config, text []byte) {
	matches, err := bmset.Scan(patterns(cfg), text)
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "match", len(matches))
	for _, mt := range matches {
		fmt.Fprintln(os.Stdout, p.Highlight(text, mt.Pos-1, mt.Length))
	}
}

func runSuffixArray(p *report.Printer, text []byte) {
	idx, err := suffixarray.BuildQSort(text)
	if err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stdout, "built suffix array over %s\n", p.Count(idx.Len()))
}

func runLZ(p *report.Printer, text []byte) {
	tr, err := sufftree.Build(text)
	if err != nil {
		fail(err)
	}
	blocks, err := lz.Factorize(tr, len(text))
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "block", len(blocks))
}

func runRepeats(p *report.Printer, text []byte) {
	prims, err := primitives.Find(text)
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "primitive square", len(prims))

	nonov, err := nonoverlap.Find(text)
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "non-overlapping square", len(nonov))

	tr, err := sufftree.Build(text)
	if err != nil {
		fail(err)
	}

	arrays, err := tandem.FindWithTree(tr)
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "tandem array", len(arrays))

	families, err := vocabulary.Build(tr)
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "repeat family", len(families))

	pairs, err := bigpath.Find(tr)
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "maximal repeated pair", len(pairs))

	super, err := supermax.Find(tr, 1, 100)
	if err != nil {
		fail(err)
	}
	p.MatchLine(0, "supermaximal repeat", len(super))
}
