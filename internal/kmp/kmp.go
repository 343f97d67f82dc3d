// Package kmp implements the Knuth-Morris-Pratt failure function and
// scanner of spec.md §4.3 (C3), grounded on original_source/strmat/kmp.c.
//
// Four preprocessing variants are provided, all producing the failure
// table F described in spec.md §3: F[1]=1, F[i] = sp(i-1)+1 (or the sp'
// variant). Internally the sp/sp' tables are built over 1-based arrays of
// size M+1 (index 0 unused) because the recurrences themselves are
// naturally 1-based; this stays an implementation detail local to Build*
// and is never exposed or propagated past the package boundary, per
// spec.md §9's re-architecture note. F is exposed only via the At1
// accessor.
package kmp

import "github.com/rafalcode/gusf/gerr"

// Variant selects one of the four preprocessing builders of spec.md §4.3.
type Variant int

const (
	// SPViaZ computes sp via the Z array ((a) in spec.md §4.3).
	SPViaZ Variant = iota
	// SPPrimeViaZ computes sp' via the Z array ((b)).
	SPPrimeViaZ
	// SPOriginal computes sp incrementally, the classical KMP
	// construction ((c)).
	SPOriginal
	// SPPrimeOriginal computes sp' from the incremental sp ((d)).
	SPPrimeOriginal
)

// Failure is the built failure table F[1..M+1].
type Failure struct {
	m int
	f []int // size m+2, 1-based, index 0 unused
}

// Len returns M.
func (fn *Failure) Len() int { return fn.m }

// At1 returns F[i] for 1 <= i <= M+1.
func (fn *Failure) At1(i int) int {
	return fn.f[i]
}

// Build constructs the failure table for pattern using the requested
// variant.
func Build(pattern []byte, v Variant) (*Failure, error) {
	m := len(pattern)
	if m == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "empty pattern")
	}

	var sp []int // 1-based, size m+1, sp[i] for i=1..m
	switch v {
	case SPViaZ:
		sp = spViaZ(pattern, false)
	case SPPrimeViaZ:
		sp = spViaZ(pattern, true)
	case SPOriginal:
		sp = spOriginal(pattern)
	case SPPrimeOriginal:
		spv := spOriginal(pattern)
		sp = spPrimeFromSP(pattern, spv)
	default:
		return nil, gerr.New(gerr.InvalidArgument, "unknown kmp variant")
	}

	f := make([]int, m+2)
	f[1] = 1
	for i := 2; i <= m+1; i++ {
		f[i] = sp[i-1] + 1
	}
	return &Failure{m: m, f: f}, nil
}

// spViaZ builds sp (or sp', when prime is true) from the pattern's Z
// array, per spec.md §4.3(a)/(b): spprime[i+Z[i]-1]=Z[i] for i=M..2;
// sp[M]=spprime[M] and sp[i]=max(spprime[i], sp[i+1]-1).
func spViaZ(pattern []byte, prime bool) []int {
	m := len(pattern)
	z := make([]int, m+1) // 1-based z[1..m], z[1] unused (0)
	// inline Z computation (1-based window); identical recurrence to
	// internal/zarray.Build.
	l, r := 0, 0
	for k := 2; k <= m; k++ {
		if k > r {
			length := 0
			for k+length <= m && pattern[length] == pattern[k-1+length] {
				length++
			}
			z[k] = length
			if length > 0 {
				l, r = k, k+length-1
			}
			continue
		}
		beta := r - k + 1
		kPrime := k - l + 1
		if z[kPrime] < beta {
			z[k] = z[kPrime]
			continue
		}
		length := beta
		for r+length-beta+1 <= m && pattern[length] == pattern[r+length-beta] {
			length++
		}
		z[k] = length
		l, r = k, k+length-1
	}

	spprime := make([]int, m+1)
	for i := m; i >= 2; i-- {
		if z[i] > 0 {
			j := i + z[i] - 1
			spprime[j] = z[i]
		}
	}
	if prime {
		return spprime
	}

	sp := make([]int, m+1)
	sp[m] = spprime[m]
	for i := m - 1; i >= 1; i-- {
		cand := spprime[i]
		if sp[i+1]-1 > cand {
			cand = sp[i+1] - 1
		}
		if cand < 0 {
			cand = 0
		}
		sp[i] = cand
	}
	return sp
}

// spOriginal builds sp incrementally, per spec.md §4.3(c).
func spOriginal(pattern []byte) []int {
	m := len(pattern)
	sp := make([]int, m+1)
	sp[1] = 0
	for i := 1; i < m; i++ {
		v := sp[i]
		for v != 0 && pattern[v] != pattern[i] { // pattern[v] is S[v+1] 1-based == pattern[v] 0-based
			v = sp[v]
		}
		if pattern[v] == pattern[i] {
			sp[i+1] = v + 1
		} else {
			sp[i+1] = 0
		}
	}
	return sp
}

// spPrimeFromSP derives sp' from a previously-built sp, per spec.md
// §4.3(d): spprime[i] = sp[i] if S[sp[i]+1] != S[i+1] else spprime[sp[i]].
func spPrimeFromSP(pattern []byte, sp []int) []int {
	m := len(pattern)
	spprime := make([]int, m+1)
	for i := 1; i <= m; i++ {
		if sp[i] == 0 {
			spprime[i] = 0
			continue
		}
		// S[sp[i]+1] 1-based == pattern[sp[i]] 0-based; S[i+1] 1-based
		// is out of range when i==m, treat as always-differs there.
		if i == m || pattern[sp[i]] != pattern[i] {
			spprime[i] = sp[i]
		} else {
			spprime[i] = spprime[sp[i]]
		}
	}
	return spprime
}

// Search scans text for pattern using the given failure table, returning
// 1-based match start positions in ascending order (spec.md §4.3
// "Scanner"). initmatch=true starts the scanner as though a match was
// already emitted at text position 1 (c=M+1, p=F[M+1]), so that position
// is not re-reported.
func Search(f *Failure, pattern, text []byte, initmatch bool) []int {
	m := f.Len()
	n := len(text)
	var matches []int

	c, p := 1, 1
	if initmatch {
		c, p = m+1, f.At1(m+1)
	}
	for c <= n {
		if p <= m && pattern[p-1] == text[c-1] {
			c++
			p++
			if p == m+1 {
				matches = append(matches, c-m)
				p = f.At1(m + 1)
			}
			continue
		}
		if p == 1 {
			c++
			continue
		}
		p = f.At1(p)
	}
	return matches
}
