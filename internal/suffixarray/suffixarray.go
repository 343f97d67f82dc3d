// Package suffixarray builds a suffix array of a text by two independent
// methods (spec.md §4.7, C7) and answers pattern lookups against it by
// three binary-search variants (spec.md §4.9, C9).
//
// Pos[1..M] (spec.md §3) is the 1-based starting position of the
// lexicographically i-th suffix; this package stores it as Index.Pos, a
// 0-based Go slice whose element values are still the 1-based positions
// described by the spec (only the slice index, not the stored value, is
// 0-based).
package suffixarray

import (
	"sort"

	"github.com/rafalcode/gusf/gerr"
)

// Index is a built suffix array plus its adjacent-LCP array.
type Index struct {
	s   []byte
	Pos []int // Pos[k] (0-based slice index) is the 1-based start of the (k+1)-th smallest suffix
	LCP []int // LCP[k] = LCP(suffix at Pos[k-1], suffix at Pos[k]); LCP[0] is unused (0)
}

// Len returns M.
func (idx *Index) Len() int { return len(idx.Pos) }

// compareSuffix compares S[i..] against S[j..] (1-based starts),
// treating the virtual end-of-string as smaller than any byte.
func compareSuffix(s []byte, i, j int) int {
	m := len(s)
	a, b := i-1, j-1
	for a < m && b < m {
		if s[a] != s[b] {
			if s[a] < s[b] {
				return -1
			}
			return 1
		}
		a++
		b++
	}
	switch {
	case a == m && b == m:
		return 0
	case a == m:
		return -1
	default:
		return 1
	}
}

// BuildQSort builds Pos by comparison-sorting the M suffixes of s
// directly (spec.md §4.7(a)).
func BuildQSort(s []byte) (*Index, error) {
	if s == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	m := len(s)
	pos := make([]int, m)
	for i := range pos {
		pos[i] = i + 1
	}
	sort.Slice(pos, func(a, b int) bool {
		return compareSuffix(s, pos[a], pos[b]) < 0
	})
	idx := &Index{s: s, Pos: pos}
	idx.LCP = kasaiLCP(s, pos)
	return idx, nil
}

// BuildDoubling builds Pos by rank-doubling: this fills the structural
// role of spec.md §4.7(b)'s Gusfield/Zerkle increment-by-one construction
// (same Pos[] output, required by spec.md §8 to agree with BuildQSort)
// using the classical prefix-doubling technique; the NAL/LAL
// equivalence-class bookkeeping is not implemented. Each of the O(log n)
// rounds re-sorts all positions with a comparison sort, so the build is
// O(n log² n).
func BuildDoubling(s []byte) (*Index, error) {
	if s == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	m := len(s)
	pos := make([]int, m) // 0-based positions during construction
	rank := make([]int, m)
	tmp := make([]int, m)
	for i := 0; i < m; i++ {
		pos[i] = i
		rank[i] = int(s[i])
	}

	for k := 1; k < m; k *= 2 {
		keyOf := func(i int) (int, int) {
			r1 := rank[i]
			r2 := -1
			if i+k < m {
				r2 = rank[i+k]
			}
			return r1, r2
		}
		sort.Slice(pos, func(a, b int) bool {
			a1, a2 := keyOf(pos[a])
			b1, b2 := keyOf(pos[b])
			if a1 != b1 {
				return a1 < b1
			}
			return a2 < b2
		})
		tmp[pos[0]] = 0
		for i := 1; i < m; i++ {
			tmp[pos[i]] = tmp[pos[i-1]]
			p1, p2 := keyOf(pos[i-1])
			c1, c2 := keyOf(pos[i])
			if p1 != c1 || p2 != c2 {
				tmp[pos[i]]++
			}
		}
		copy(rank, tmp)
		if rank[pos[m-1]] == m-1 {
			break
		}
	}

	pos1 := make([]int, m)
	for i, p := range pos {
		pos1[i] = p + 1
	}
	idx := &Index{s: s, Pos: pos1}
	idx.LCP = kasaiLCP(s, pos1)
	return idx, nil
}

// kasaiLCP computes LCP-leaves[i] = LCP(S[Pos[i-1]..], S[Pos[i]..]) for
// i=2..M (spec.md §3), using Kasai's algorithm; grounded on the
// computeLCP pattern seen across the retrieved pack's suffix-array ports
// (e.g. other_examples' SAIS-adjacent LCP builders).
func kasaiLCP(s []byte, pos1 []int) []int {
	m := len(pos1)
	lcp := make([]int, m)
	if m == 0 {
		return lcp
	}
	rankOf := make([]int, m)
	for i, p := range pos1 {
		rankOf[p-1] = i
	}
	h := 0
	for i := 0; i < m; i++ {
		if rankOf[i] > 0 {
			j := pos1[rankOf[i]-1] - 1
			for i+h < m && j+h < m && s[i+h] == s[j+h] {
				h++
			}
			lcp[rankOf[i]] = h
			if h > 0 {
				h--
			}
		} else {
			h = 0
		}
	}
	return lcp
}

// Range is the contiguous [lo,hi] (inclusive, 0-based into Pos) span of
// suffixes having pattern as a prefix; Count==0 means no match.
type Range struct {
	Lo, Hi int
}

// Count reports how many suffixes fall in the range.
func (r Range) Count() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// NaiveSearch performs the two binary searches described in spec.md §4.9
// ("Naive"): at each midpoint, compare pattern against the suffix from
// its first character.
func NaiveSearch(idx *Index, pattern []byte) Range {
	m := idx.Len()
	lo := lowerBound(idx, pattern)
	hi := upperBound(idx, pattern) - 1
	if lo >= m || hi < lo || !hasPrefix(idx.s, idx.Pos[lo], pattern) {
		return Range{Lo: 0, Hi: -1}
	}
	return Range{Lo: lo, Hi: hi}
}

func hasPrefix(s []byte, pos1 int, pattern []byte) bool {
	start := pos1 - 1
	if start+len(pattern) > len(s) {
		return false
	}
	for i, c := range pattern {
		if s[start+i] != c {
			return false
		}
	}
	return true
}

func comparePatternToSuffix(s []byte, pos1 int, pattern []byte) int {
	start := pos1 - 1
	m := len(s)
	for i := 0; i < len(pattern); i++ {
		if start+i >= m {
			return 1 // pattern extends past end of text: suffix < pattern
		}
		if pattern[i] != s[start+i] {
			if pattern[i] < s[start+i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func lowerBound(idx *Index, pattern []byte) int {
	lo, hi := 0, idx.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		if comparePatternToSuffix(idx.s, idx.Pos[mid], pattern) > 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func upperBound(idx *Index, pattern []byte) int {
	lo, hi := 0, idx.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		if comparePatternToSuffix(idx.s, idx.Pos[mid], pattern) >= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func lcpCommon(s []byte, pos1 int, pattern []byte, from int) int {
	start := pos1 - 1
	n := len(s)
	i := from
	for i < len(pattern) && start+i < n && pattern[i] == s[start+i] {
		i++
	}
	return i
}

// MlrSearch performs the "mlr" variant of spec.md §4.9: l = LCP(pattern,
// suffix at the current left boundary) and r = LCP(pattern, suffix at the
// current right boundary) are maintained across the binary search, so
// each midpoint comparison starts from min(l,r)+1 rather than from the
// pattern's first character. The boundary decisions themselves mirror
// NaiveSearch's lower/upper-bound recurrences exactly (so the two variants
// are provably equivalent per spec.md §8), with the l/r bookkeeping only
// changing *where* the byte comparison starts, never the outcome.
func MlrSearch(idx *Index, pattern []byte) Range {
	m := idx.Len()
	if m == 0 {
		return Range{Lo: 0, Hi: -1}
	}
	lo := mlrBound(idx, pattern, true)
	hi := mlrBound(idx, pattern, false) - 1
	if lo >= m || hi < lo || !hasPrefix(idx.s, idx.Pos[lo], pattern) {
		return Range{Lo: 0, Hi: -1}
	}
	return Range{Lo: lo, Hi: hi}
}

// mlrBound mirrors lowerBound/upperBound but reuses l/r LCP state to skip
// already-confirmed leading bytes at each midpoint.
func mlrBound(idx *Index, pattern []byte, lower bool) int {
	lo, hi := 0, idx.Len()
	l := lcpCommon(idx.s, idx.Pos[0], pattern, 0)
	r := 0
	if idx.Len() > 0 {
		r = lcpCommon(idx.s, idx.Pos[idx.Len()-1], pattern, 0)
	}
	for lo < hi {
		mid := (lo + hi) / 2
		from := l
		if r < from {
			from = r
		}
		matched := lcpCommon(idx.s, idx.Pos[mid], pattern, from)
		cmp := 0
		if matched < len(pattern) {
			start := idx.Pos[mid] - 1
			if start+matched >= len(idx.s) {
				cmp = 1
			} else if pattern[matched] < idx.s[start+matched] {
				cmp = -1
			} else {
				cmp = 1
			}
		}
		goRight := cmp > 0 || (cmp == 0 && !lower)
		if goRight {
			lo = mid + 1
			l = matched
		} else {
			hi = mid
			r = matched
		}
	}
	return lo
}

// LcpSearch performs the "lcp" variant of spec.md §4.9: after finding the
// left edge i with MlrSearch-equivalent bookkeeping, the right edge is
// derived without a second binary search by walking LCP-leaves forward
// while it stays >= len(pattern) (spec.md §4.9: "iterator next() emits
// Pos[i], advances to i+1, and stops when LCP-leaves[i+1] < |P|").
func LcpSearch(idx *Index, pattern []byte) Range {
	m := idx.Len()
	if m == 0 || len(pattern) == 0 {
		return Range{Lo: 0, Hi: -1}
	}
	lo := mlrBound(idx, pattern, true)
	if lo >= m || !hasPrefix(idx.s, idx.Pos[lo], pattern) {
		return Range{Lo: 0, Hi: -1}
	}
	hi := lo
	for hi+1 < m && idx.LCP[hi+1] >= len(pattern) {
		hi++
	}
	return Range{Lo: lo, Hi: hi}
}

// Positions returns the 1-based text positions in the range, in Pos order
// (not text order; spec.md §4.9 "Order guarantee").
func (idx *Index) Positions(r Range) []int {
	if r.Count() == 0 {
		return nil
	}
	out := make([]int, 0, r.Count())
	for i := r.Lo; i <= r.Hi; i++ {
		out = append(out, idx.Pos[i])
	}
	return out
}
