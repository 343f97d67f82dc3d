// Package naive implements the brute-force scanner of spec.md §4.2 (C2),
// grounded on original_source/strmat/naive.c.
package naive

import "github.com/rafalcode/gusf/gerr"

// Search scans text for every occurrence of pattern, comparing
// byte-by-byte at each alignment. Matches are 1-based text positions in
// ascending order. initmatch=true disallows reporting a match at the very
// first alignment (text position 1), matching original_source's
// "initmatch" parameter used to avoid re-reporting the seed match when a
// scanner is resumed.
func Search(pattern, text []byte, initmatch bool) ([]int, error) {
	if len(pattern) == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "empty pattern")
	}
	m := len(pattern)
	n := len(text)
	var matches []int
	start := 0
	if initmatch {
		start = 1
	}
	for k := start; k+m <= n; k++ {
		full := true
		for j := 0; j < m; j++ {
			if text[k+j] != pattern[j] {
				full = false
				break
			}
		}
		if full {
			matches = append(matches, k+1)
		}
	}
	return matches, nil
}
