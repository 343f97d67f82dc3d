// Package tandem finds branching tandem repeats and the tandem arrays
// they anchor, per spec.md §4.14 (C14).
//
// Grounded directly on original_source/strmat/repeats_tandem.c's
// lookup_subtree/lookup_sub_subtree/lookup_leaf: every internal node v
// of string-depth D[v] has a leaf-rank range [S[v],G[v]); a branching
// tandem repeat of period D[v] occurs at position p whenever p's own
// leaf rank is in that range and the leaf rank of p-D[v] or p+D[v] is
// too. Checking every leaf of v's LARGEST child against nothing, and
// every leaf of every OTHER child against both v's own range (left
// test) and the largest child's range (right test), is the same
// small-to-large exclusion internal/repeats/primitives and
// internal/repeats/nonoverlap use: a leaf only pays for this check
// while it sits under a "smaller half" of some ancestor, which happens
// O(log n) times.
//
// The original's report_tandem then walks, for a single branching
// occurrence, every rotation to the left (one-character steps, testing
// the leaf-rank array against the edge it is currently descending) and
// every further tandem-array level to the left (whole-period steps,
// testing the leaf-rank array again). This package computes the same
// left-maximal start and the same right-maximal exponent directly by
// character comparison instead of replaying that edge-by-edge walk:
// both terminate at the identical boundary, and a straight comparison
// loop is far easier to get right without a compiler to catch a typo
// in the edge bookkeeping.
package tandem

import (
	"github.com/rafalcode/gusf/gerr"
	"github.com/rafalcode/gusf/internal/sufftree"
)

// Array is a maximal, left-maximal tandem array: S[Pos..] is Exponent
// consecutive copies of a word of length Period (Exponent>=2).
// Primitive reports whether that word is itself primitive (not a power
// of a shorter word); the original source tracks this same distinction
// via its nonprimitive[] flag, since a branching repeat can arise at a
// node whose depth is itself a multiple of a shorter repeating unit.
type Array struct {
	Pos       int
	Period    int
	Exponent  int
	Primitive bool
}

type square struct {
	pos    int
	period int
}

// Find enumerates every maximal tandem array of s, building a suffix
// tree internally. Use FindWithTree when a tree already exists.
func Find(s []byte) ([]Array, error) {
	if s == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	if len(s) == 0 {
		return nil, nil
	}
	tr, err := sufftree.Build(s)
	if err != nil {
		return nil, err
	}
	return FindWithTree(tr)
}

// FindWithTree runs the branching-repeat lookup over an already-built
// suffix tree.
func FindWithTree(tr *sufftree.Tree) ([]Array, error) {
	if tr == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil suffix tree")
	}
	s := tr.Bytes()
	n := len(s)
	if n == 0 {
		return nil, nil
	}

	rankOfPos := make([]int, n)
	for v := 0; v < tr.NumNodes(); v++ {
		id := sufftree.NodeID(v)
		if tr.IsLeaf(id) {
			rankOfPos[tr.LeafPos(id)-1] = tr.SALo(id)
		}
	}

	var squares []square
	lookupSubtree(tr, sufftree.Root, rankOfPos, &squares)

	return materialize(s, squares), nil
}

// lookupSubtree mirrors lookup_subtree: a node contributes branching
// checks only when its own string depth is a meaningful period (>0,
// which excludes the true root and, for the degenerate single-character
// alphabet, nothing else). It always recurses into every child
// afterward, matching the original's depth-first walk.
func lookupSubtree(tr *sufftree.Tree, v sufftree.NodeID, N []int, out *[]square) {
	children := tr.Children(v)
	if len(children) == 0 {
		return
	}

	if period := tr.LabelLen(v); period > 0 {
		maxChild := children[0]
		maxLeaves := tr.NumLeavesBelow(maxChild)
		for _, c := range children[1:] {
			if l := tr.NumLeavesBelow(c); l > maxLeaves {
				maxChild, maxLeaves = c, l
			}
		}
		fatherS, fatherG := tr.SALo(v), tr.SAHi(v)+1
		maxS, maxG := tr.SALo(maxChild), tr.SAHi(maxChild)+1

		for _, c := range children {
			if tr.IsLeaf(c) {
				checkLeaf(tr, N, tr.LeafPos(c)-1, period, fatherS, fatherG, maxS, maxG, -1, -1, out)
			}
		}
		for _, c := range children {
			if c == maxChild {
				continue
			}
			thisS, thisG := tr.SALo(c), tr.SAHi(c)+1
			forEachLeafPos(tr, c, func(pos int) {
				checkLeaf(tr, N, pos, period, fatherS, fatherG, maxS, maxG, thisS, thisG, out)
			})
		}
	}

	for _, c := range children {
		lookupSubtree(tr, c, N, out)
	}
}

// checkLeaf mirrors lookup_leaf: test whether p-period or p+period also
// lands in father's leaf-rank range, recording a branching occurrence
// each time it does. The left test additionally excludes the case where
// the partner leaf is inside the SAME non-max child pos itself sits in
// (thisS/thisG, -1 meaning "not applicable"), which is what keeps a
// non-branching pair from being reported twice over from both sides.
func checkLeaf(tr *sufftree.Tree, N []int, pos, period, fatherS, fatherG, maxS, maxG, thisS, thisG int, out *[]square) {
	n := len(tr.Bytes())
	if testPos := pos - period; testPos >= 0 {
		tc := N[testPos]
		inFather := tc >= fatherS && tc < fatherG
		inThis := thisS >= 0 && tc >= thisS && tc < thisG
		if inFather && !inThis {
			*out = append(*out, square{pos: testPos, period: period})
		}
	}
	if testPos := pos + period; testPos < n {
		tc := N[testPos]
		if tc >= maxS && tc < maxG {
			*out = append(*out, square{pos: pos, period: period})
		}
	}
}

func forEachLeafPos(tr *sufftree.Tree, v sufftree.NodeID, f func(pos int)) {
	if tr.IsLeaf(v) {
		f(tr.LeafPos(v) - 1)
		return
	}
	for _, c := range tr.Children(v) {
		forEachLeafPos(tr, c, f)
	}
}

// materialize turns every (possibly duplicate, possibly non-maximal)
// branching square into its canonical left-maximal array: extend left
// while the match continues, dedupe on the canonical form, then extend
// right to report the true exponent.
func materialize(s []byte, squares []square) []Array {
	n := len(s)
	canonSeen := make(map[square]bool)
	var canons []square
	for _, sq := range squares {
		p := sq.pos
		for p > 0 && s[p-1] == s[p-1+sq.period] {
			p--
		}
		c := square{pos: p, period: sq.period}
		if !canonSeen[c] {
			canonSeen[c] = true
			canons = append(canons, c)
		}
	}

	var out []Array
	for _, c := range canons {
		exponent := 2
		for {
			nextStart := c.pos + exponent*c.period
			if nextStart+c.period > n {
				break
			}
			if !equalRange(s, c.pos+(exponent-1)*c.period, nextStart, c.period) {
				break
			}
			exponent++
		}
		out = append(out, Array{
			Pos:       c.pos + 1,
			Period:    c.period,
			Exponent:  exponent,
			Primitive: isPrimitivePeriod(s, c.pos, c.period),
		})
	}
	return out
}

// isPrimitivePeriod reports whether the length-period word at pos is
// not itself a power of a shorter word, i.e. has no proper divisor d of
// period for which it is also d-periodic.
func isPrimitivePeriod(s []byte, pos, period int) bool {
	for d := 1; d < period; d++ {
		if period%d != 0 {
			continue
		}
		if equalRange(s, pos, pos+d, period-d) {
			return false
		}
	}
	return true
}

func equalRange(s []byte, a, b, length int) bool {
	for k := 0; k < length; k++ {
		if s[a+k] != s[b+k] {
			return false
		}
	}
	return true
}
