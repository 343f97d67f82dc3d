// Package supermax finds supermaximal and near-supermaximal repeats,
// per spec.md §4.16 (C16): for every internal suffix-tree node, the
// multiset of left predecessors of its leaves determines whether its
// path label is a (near-)supermaximal repeat. Grounded directly on the
// definition in spec.md §4.16 and the left-predecessor-stack shape of
// original_source/strmat's supermaximal routine; this component's
// definition is concrete enough to implement directly rather than
// needing a simplified stand-in.
package supermax

import (
	"github.com/rafalcode/gusf/gerr"
	"github.com/rafalcode/gusf/internal/sufftree"
)

// Repeat is one (near-)supermaximal repeat: Label occurs Count times in
// the text, Witnesses of which have a left predecessor unique within
// the repeat's occurrence set, with one occurrence leftmost at Pos.
type Repeat struct {
	Label     []byte
	Pos       int
	Count     int
	Witnesses int
}

const sentinel = 256 // no left predecessor (leaf at text position 1)

// Find reports every node whose path label has length >= minLength and
// whose witness percentage meets minPercent (100 meaning every leaf
// must be a witness, matching spec.md §4.16's "floor" rounding open
// question resolved toward floor — see DESIGN.md).
func Find(tr *sufftree.Tree, minLength, minPercent int) ([]Repeat, error) {
	if tr == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil suffix tree")
	}
	var out []Repeat
	walk(tr, sufftree.Root, minLength, minPercent, &out)
	return out, nil
}

func walk(tr *sufftree.Tree, v sufftree.NodeID, minLength, minPercent int, out *[]Repeat) [257]int {
	var counts [257]int
	if tr.IsLeaf(v) {
		pos := tr.LeafPos(v)
		if pos == 1 {
			counts[sentinel]++
		} else {
			counts[tr.Bytes()[pos-2]]++
		}
		return counts
	}
	for _, c := range tr.Children(v) {
		cc := walk(tr, c, minLength, minPercent, out)
		for i := range counts {
			counts[i] += cc[i]
		}
	}
	if v == sufftree.Root {
		return counts
	}

	distinct := 0
	witnesses := 0
	for _, n := range counts {
		if n > 0 {
			distinct++
			if n == 1 {
				witnesses++
			}
		}
	}
	if distinct < 2 {
		return counts
	}
	length := tr.LabelLen(v)
	if length < minLength {
		return counts
	}
	total := tr.NumLeavesBelow(v)
	qualifies := false
	if minPercent >= 100 {
		qualifies = witnesses == total
	} else {
		qualifies = witnesses*100/total >= minPercent
	}
	if qualifies {
		leftmost := tr.LeftmostPos(v)
		label := append([]byte(nil), tr.Bytes()[leftmost-1:leftmost-1+length]...)
		*out = append(*out, Repeat{Label: label, Pos: leftmost, Count: total, Witnesses: witnesses})
	}
	return counts
}
