// Package lz implements the Lempel-Ziv f-factorisation of spec.md §4.10
// (C10): greedily partition S into blocks, each the longest prefix of
// the remainder that already occurred earlier in S, walking a suffix
// tree with leftmost-occurrence edge labels rather than rescanning the
// text. Grounded on original_source/strmat/stree_decomposition.c, which
// performs the equivalent walk (lz_decomposition, lz_nonoverlap_decomp)
// directly over a linked suffix tree.
package lz

import (
	"github.com/rafalcode/gusf/gerr"
	"github.com/rafalcode/gusf/internal/sufftree"
)

// Block is one factor of the decomposition: Length bytes starting at
// the current position, copied from the earlier occurrence starting at
// Prev (1-based), or Prev=-1 for a singleton (a byte never seen before).
type Block struct {
	Length int
	Prev   int
}

// Factorize runs the plain f-factorisation (spec.md §4.10, first
// paragraph): a block's earlier occurrence may overlap the block itself
// in the text.
func Factorize(tr *sufftree.Tree, n int) ([]Block, error) {
	return factorize(tr, n, false)
}

// FactorizeNonOverlapping additionally requires the earlier occurrence
// to end strictly before the current block starts (spec.md §4.10's
// "non-overlapping variant"; the exact boundary was an explicit open
// question in spec.md §9 — this package resolves it as "occurrence end
// position < block start position", the literal reading of "ends
// strictly before i", and is pinned by TestFactorizeNonOverlapping).
func FactorizeNonOverlapping(tr *sufftree.Tree, n int) ([]Block, error) {
	return factorize(tr, n, true)
}

func factorize(tr *sufftree.Tree, n int, nonOverlap bool) ([]Block, error) {
	if tr == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil suffix tree")
	}
	if n < 0 || n > len(tr.Bytes()) {
		return nil, gerr.New(gerr.InvalidArgument, "n out of range")
	}
	text := tr.Bytes()
	var blocks []Block
	j := 0
	for j < n {
		v := sufftree.Root
		matched := 0
		for j+matched < n {
			c := text[j+matched]
			child := tr.FindChild(v, c)
			if child == sufftree.None {
				break
			}
			childLen := tr.LabelLen(child)
			leftmost := tr.LeftmostPos(child)
			if nonOverlap {
				if leftmost+childLen-1 > j {
					break
				}
			} else if leftmost-1 >= j {
				break
			}
			v = child
			matched = childLen
		}
		if matched == 0 {
			blocks = append(blocks, Block{Length: 1, Prev: -1})
			j++
			continue
		}
		blocks = append(blocks, Block{Length: matched, Prev: tr.LeftmostPos(v)})
		j += matched
	}
	return blocks, nil
}
