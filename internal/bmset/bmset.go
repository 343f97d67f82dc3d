// Package bmset implements the naive Boyer-Moore multi-pattern matcher of
// spec.md §4.6 (C6): one good-suffix-preprocessed Boyer-Moore scanner per
// pattern, interleaved so the combined stream matches
// internal/ahocorasick's emission order exactly (ascending right-endpoint,
// ties broken by descending pattern length). Grounded on
// original_source/strmat/bmset_naive.c.
package bmset

import (
	"github.com/rafalcode/gusf/gerr"
	"github.com/rafalcode/gusf/internal/boyermoore"
)

// Match mirrors ahocorasick.Match so the two engines are directly
// comparable (spec.md §8 "AC(T) = BM-set-naive({P_i})(T)").
type Match struct {
	Pos     int
	Length  int
	Pattern int
}

// Scan runs every pattern's good-suffix Boyer-Moore search against text
// and merges the results into the canonical order.
func Scan(patterns [][]byte, text []byte) ([]Match, error) {
	if len(patterns) == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "no patterns")
	}
	seen := make(map[int]bool, len(patterns))
	var all []Match
	for id, p := range patterns {
		if len(p) == 0 {
			return nil, gerr.New(gerr.InvalidArgument, "empty pattern")
		}
		if seen[id] {
			return nil, gerr.New(gerr.InvalidArgument, "duplicate pattern id")
		}
		seen[id] = true

		tables, err := boyermoore.Build(p)
		if err != nil {
			return nil, err
		}
		positions := boyermoore.Search(tables, text, boyermoore.GoodAndBad, false)
		for _, pos := range positions {
			all = append(all, Match{Pos: pos, Length: len(p), Pattern: id})
		}
	}
	sortMatches(all)
	return all, nil
}

func sortMatches(matches []Match) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && less(matches[j], matches[j-1]); j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

func less(a, b Match) bool {
	ae := a.Pos + a.Length
	be := b.Pos + b.Length
	if ae != be {
		return ae < be
	}
	return a.Length > b.Length
}
