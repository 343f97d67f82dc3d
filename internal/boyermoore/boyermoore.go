// Package boyermoore implements the Boyer-Moore family of spec.md §4.4
// (C4): bad-char only, extended bad-char only, good+bad, good+extended-bad,
// and an optimised bad-char variant. Grounded on
// original_source/strmat/bm.c (bad/good tables) and
// original_source/strmat/bmopt.c (the skip-loop optimised scanner).
package boyermoore

import "github.com/rafalcode/gusf/gerr"

// Variant selects which shift rules the scanner combines.
type Variant int

const (
	// BadOnly uses only the simple bad-character rule.
	BadOnly Variant = iota
	// ExtendedBadOnly uses the extended (linked-list) bad-character rule.
	ExtendedBadOnly
	// GoodAndBad combines the strong good-suffix rule with the simple
	// bad-character rule.
	GoodAndBad
	// GoodAndExtendedBad combines the strong good-suffix rule with the
	// extended bad-character rule.
	GoodAndExtendedBad
)

// Tables holds the preprocessed shift tables for one pattern.
type Tables struct {
	pattern []byte
	m       int

	r     [256]int // simple bad-char: 1-based last occurrence index of c, 0 if absent
	rnext []int    // extended bad-char: 1-based, rnext[i] = previous occurrence of pattern[i] among pattern[1..i-1], 0 if none

	// goodSuffix is the fused L'/l' shift table used by the scanner,
	// built by the border-array construction in buildGoodSuffix (0-based,
	// size m+1): goodSuffix[i] is the number of positions to advance the
	// alignment when the matched suffix is pattern[i:] (i==0 means a
	// full match).
	goodSuffix []int
}

// Build preprocesses pattern: R and Rnext by a single left-to-right scan
// (spec.md §4.4), and the good-suffix table by the border-array
// construction in buildGoodSuffix.
func Build(pattern []byte) (*Tables, error) {
	if len(pattern) == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "empty pattern")
	}
	m := len(pattern)
	t := &Tables{pattern: pattern, m: m}

	// Simple + extended bad character, single left-to-right scan.
	var last [256]int // 0 = not seen yet (1-based index otherwise)
	t.rnext = make([]int, m+1)
	for i := 1; i <= m; i++ {
		c := pattern[i-1]
		t.rnext[i] = last[c]
		last[c] = i
	}
	t.r = last

	t.goodSuffix = buildGoodSuffix(pattern)
	return t, nil
}

// buildGoodSuffix computes the strong good-suffix shift table using the
// standard border-array construction (Charras & Lecroq), which is
// equivalent to spec.md §3's L'/l' tables fused into one shift function:
// shift[i] is how far to advance the alignment when pattern[i:] is the
// longest matched suffix (shift[0] is used after a full match).
func buildGoodSuffix(pattern []byte) []int {
	m := len(pattern)
	shift := make([]int, m+1)
	border := make([]int, m+1)

	i, j := m, m+1
	border[i] = j
	for i > 0 {
		for j <= m && pattern[i-1] != pattern[j-1] {
			if shift[j] == 0 {
				shift[j] = j - i
			}
			j = border[j]
		}
		i--
		j--
		border[i] = j
	}
	j = border[0]
	for i := 0; i <= m; i++ {
		if shift[i] == 0 {
			shift[i] = j
		}
		if i == j {
			j = border[j]
		}
	}
	return shift
}

// LPrime returns the spec.md §3 L'[i] value: the largest j<M such that
// S[i..M] matches a suffix of S[1..j] and S[i-1] != S[j-(M-i)-1] (the
// character before that occurrence; an occurrence starting at S[1] has
// none and qualifies), or 0 if none exists. Computed directly from the definition (not on the
// scanner's hot path) so it can be inspected/tested independently of the
// fused good-suffix table the scanner actually uses.
func (t *Tables) LPrime(i int) int {
	m := t.m
	if i < 2 || i > m {
		return 0
	}
	suffix := t.pattern[i-1:]
	ln := len(suffix)
	best := 0
	for j := m - 1; j >= ln; j-- {
		start := j - ln // 0-based start of the candidate occurrence
		if start < 0 {
			continue
		}
		if !bytesEqual(t.pattern[start:start+ln], suffix) {
			continue
		}
		before := start - 1
		if before < 0 || t.pattern[i-2] != t.pattern[before] {
			best = j
			break
		}
	}
	return best
}

// LPrimeSmall returns the spec.md §3 l'[i] value: the largest length of a
// prefix of the pattern that is also a suffix of S[i..M].
func (t *Tables) LPrimeSmall(i int) int {
	m := t.m
	if i < 1 || i > m+1 {
		return 0
	}
	maxLen := m - i + 1
	for l := maxLen; l >= 1; l-- {
		if bytesEqual(t.pattern[:l], t.pattern[m-l:m]) {
			return l
		}
	}
	return 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Search scans text for the pattern used to build t, combining the
// shift rules selected by v. Matches are 1-based ascending text
// positions. initmatch=true suppresses a match reported at text position 1
// and, for the bad-char-only variants, shifts by the good-suffix distance
// after a full match (by 1 when initmatch is false); the good-suffix
// variants always shift by the good-suffix distance after a full match (spec.md §9
// Open Question: the per-variant rule is preserved as stated, not
// unified).
func Search(t *Tables, text []byte, v Variant, initmatch bool) []int {
	m := t.m
	n := len(text)
	var matches []int
	if n < m {
		return matches
	}

	badShift := func(mismatchPos1 int, textChar byte) int {
		// spec.md §4.4: bshift = i - R[T[h]] (simple), clamped to >= 1
		// by the caller; i - pos (extended) using Rnext to find the
		// largest earlier occurrence of textChar at pattern index < i.
		switch v {
		case ExtendedBadOnly, GoodAndExtendedBad:
			idx := t.r[textChar]
			for idx >= mismatchPos1 {
				idx = t.rnext[idx]
			}
			return mismatchPos1 - idx
		default:
			return mismatchPos1 - t.r[textChar]
		}
	}

	k := m // 1-based alignment index: rightmost aligned text position
	for k <= n {
		i := m // pattern index, 1-based, scanning right to left
		h := k
		for i >= 1 && t.pattern[i-1] == text[h-1] {
			i--
			h--
		}
		if i == 0 {
			pos := k - m + 1
			if !(initmatch && pos == 1) {
				matches = append(matches, pos)
			}
			switch v {
			case GoodAndBad, GoodAndExtendedBad:
				k += t.goodSuffix[0]
			default:
				if initmatch {
					k += t.goodSuffix[0]
				} else {
					k++
				}
			}
			continue
		}

		bshift := badShift(i, text[h-1])
		if bshift < 1 {
			bshift = 1
		}
		gshift := 0
		switch v {
		case GoodAndBad, GoodAndExtendedBad:
			gshift = t.goodSuffix[i]
		}
		shift := bshift
		if gshift > shift {
			shift = gshift
		}
		k += shift
	}
	return matches
}

// OptimizedSearch is the optimised bad-character variant of spec.md §4.4:
// B[c] = M - R[c] reduces the inner "skip" loop to a simple advance-until-
// in-range probe, with unsigned byte indexing throughout (spec.md §9's
// re-architecture note: the original's pre-skewed signed table handling
// negative bytes is dead code in this engine, since bytes are unsigned
// here by construction). After the skip, the alignment is still verified
// backwards like the other variants.
func OptimizedSearch(t *Tables, text []byte, initmatch bool) []int {
	m := t.m
	n := len(text)
	var matches []int
	if n < m {
		return matches
	}

	var b [256]int
	for c := 0; c < 256; c++ {
		b[c] = m - t.r[c]
	}

	k := m
	for k <= n {
		// Skip loop: advance k while the text byte aligned with the
		// pattern's last character cannot be a match.
		for k <= n && b[text[k-1]] > 0 {
			k += b[text[k-1]]
		}
		if k > n {
			break
		}
		i := m
		h := k
		for i >= 1 && t.pattern[i-1] == text[h-1] {
			i--
			h--
		}
		if i == 0 {
			pos := k - m + 1
			if !(initmatch && pos == 1) {
				matches = append(matches, pos)
			}
			k++
			continue
		}
		k++
	}
	return matches
}
