// Package zarray computes the Z values of a sequence in linear time
// (spec.md §4.1, C1), grounded on original_source/strmat/z.c's z_build.
//
// Z[i] is the length of the longest prefix of S[i..M] that is also a
// prefix of S; Z[1] is defined 0 (spec.md §3). Storage is 0-based: Z[0] is
// unused/zero and Z[i] for 1<=i<=M-1 (0-based) corresponds to the
// mathematical Z[i+1].
package zarray

import "github.com/rafalcode/gusf/gerr"

// Z holds the Z-array of a single sequence.
type Z struct {
	m int
	z []int // len m, 0-based: z[k] is the mathematical Z[k+1]
}

// Build computes the Z array for s (0-based byte slice) in O(len(s)) time
// and at most 2*len(s) character comparisons.
func Build(s []byte) (*Z, error) {
	if s == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	m := len(s)
	z := make([]int, m)
	if m == 0 {
		return &Z{m: 0, z: z}, nil
	}

	l, r := 0, 0 // 0-based window [l,r], both inclusive, r exclusive-before-start means empty
	for k := 1; k < m; k++ {
		if k > r {
			// explicit extension from s[0]
			length := 0
			for k+length < m && s[length] == s[k+length] {
				length++
			}
			z[k] = length
			if length > 0 {
				l, r = k, k+length-1
			}
			continue
		}
		beta := r - k + 1
		kPrime := k - l
		if z[kPrime] < beta {
			z[k] = z[kPrime]
			continue
		}
		// extend comparison from s[beta] vs s[r+1]
		length := beta
		for r+1+(length-beta) < m && s[length] == s[r+1+(length-beta)] {
			length++
		}
		z[k] = length
		l, r = k, k+length-1
	}
	return &Z{m: m, z: z}, nil
}

// Len returns M.
func (z *Z) Len() int { return z.m }

// At1 returns the mathematical Z[i] using 1-based indexing (spec.md §3);
// Z[1] is always 0.
func (z *Z) At1(i int) int {
	if i <= 1 || i > z.m {
		return 0
	}
	return z.z[i-1]
}

// Values returns the 0-based backing slice (z.Values()[k] == At1(k+1)).
func (z *Z) Values() []int {
	return z.z
}

// Search reports every 1-based text position where pattern occurs in
// text, by running the same Z recurrence over the virtual concatenation
// pattern|separator|text (spec.md §4.1 "Search mode"). The separator is a
// sentinel value that cannot appear in pattern or text; since both are
// arbitrary byte sequences without a reserved sentinel, this
// implementation materialises the concatenation once (a simplification
// against the spec's "without materialising it" memory optimisation,
// traded for a correctness-obvious implementation) and still performs the
// linear, at-most-2-comparisons-per-position Z computation described by
// spec.md §4.1 over it. initmatch suppresses a match reported at the very
// first aligned position, matching the convention used by the other
// single-pattern engines (KMP, BM, Naive) in this module.
func Search(pattern, text []byte, initmatch bool) ([]int, error) {
	if len(pattern) == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "empty pattern")
	}
	m := len(pattern)
	n := len(text)
	var matches []int
	if n < m {
		return matches, nil
	}

	concat := make([]byte, 0, m+1+n)
	concat = append(concat, pattern...)
	concat = append(concat, 0) // separator slot; never compared equal across the boundary below
	concat = append(concat, text...)

	z, err := buildWithSeparator(concat, m)
	if err != nil {
		return nil, err
	}

	for k := 0; k < n; k++ {
		virtual := m + 1 + k
		if z.z[virtual] >= m {
			pos := k + 1
			if !(initmatch && pos == 1) {
				matches = append(matches, pos)
			}
		}
	}
	return matches, nil
}

// buildWithSeparator runs the standard Z recurrence (see Build) but
// additionally treats the byte at index sepIdx as matching nothing, so a
// comparison run can never silently cross the pattern/text boundary.
func buildWithSeparator(s []byte, sepIdx int) (*Z, error) {
	m := len(s)
	z := make([]int, m)
	eq := func(a, b int) bool {
		if a == sepIdx || b == sepIdx {
			return false
		}
		return s[a] == s[b]
	}
	l, r := 0, 0
	for k := 1; k < m; k++ {
		if k > r {
			length := 0
			for k+length < m && eq(length, k+length) {
				length++
			}
			z[k] = length
			if length > 0 {
				l, r = k, k+length-1
			}
			continue
		}
		beta := r - k + 1
		kPrime := k - l
		if z[kPrime] < beta {
			z[k] = z[kPrime]
			continue
		}
		length := beta
		for r+1+(length-beta) < m && eq(length, r+1+(length-beta)) {
			length++
		}
		z[k] = length
		l, r = k, k+length-1
	}
	return &Z{m: m, z: z}, nil
}
