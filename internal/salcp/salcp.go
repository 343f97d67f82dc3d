// Package salcp builds the suffix-array/LCP index described in spec.md
// §4.8 (C8) from a suffix tree: the Pos[] ordering via a sorted (edge
// order is already alphabetical, see internal/sufftree) DFS, adjacent-LCP
// values recorded during that same walk, and a complete-binary LCP-tree
// folded from the leaves, answering range-minimum queries in O(log M)
// through RangeMin. The suffix-array searches in internal/suffixarray do
// not use this index. Grounded on the data-flow
// description in spec.md §4.8; original_source has no equivalent single
// file since strmat exposes this only implicitly inside sary_match.c's
// LCP_MATCH preprocessing.
package salcp

import (
	"github.com/rafalcode/gusf/gerr"
	"github.com/rafalcode/gusf/internal/sufftree"
)

// Index holds Pos[], LCP-leaves[] (both 0-based slices storing the
// spec's 1-based quantities, per spec.md §9's boundary-conversion rule)
// and the folded LCP-tree.
type Index struct {
	Pos       []int // Pos[k] = 1-based start of the (k+1)-th smallest suffix
	LCPLeaves []int // LCPLeaves[k] = LCP(suffix Pos[k-1], suffix Pos[k]); LCPLeaves[0] = 0

	treeSize int
	tree     []int
}

type builder struct {
	tr       *sufftree.Tree
	pos      []int
	lcp      []int
	minDepth int
}

const infDepth = 1 << 30

// Build runs the sorted DFS over tr and folds the resulting LCP-leaves
// into a binary LCP-tree.
func Build(tr *sufftree.Tree) (*Index, error) {
	if tr == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil suffix tree")
	}
	b := &builder{tr: tr, minDepth: infDepth}
	b.dfs(sufftree.Root)

	idx := &Index{Pos: b.pos, LCPLeaves: b.lcp}
	idx.buildTree()
	return idx, nil
}

// dfs walks the tree in edge-sorted order (already guaranteed by
// internal/sufftree's children ordering); LCPLeaves[i] is the minimum
// node depth seen while transitioning from leaf i-1 to leaf i, which
// equals the depth of their lowest common ancestor.
func (b *builder) dfs(v sufftree.NodeID) {
	if b.tr.IsLeaf(v) {
		b.emitLeaf(b.tr.LeafPos(v))
		return
	}
	d := b.tr.LabelLen(v)
	for _, c := range b.tr.Children(v) {
		if d < b.minDepth {
			b.minDepth = d
		}
		b.dfs(c)
	}
}

func (b *builder) emitLeaf(pos int) {
	b.pos = append(b.pos, pos)
	if len(b.pos) == 1 {
		b.lcp = append(b.lcp, 0)
	} else {
		b.lcp = append(b.lcp, b.minDepth)
	}
	b.minDepth = infDepth
}

// buildTree folds LCPLeaves into a 1-indexed complete-binary tree per
// spec.md §4.8: range [lo,hi) with midpoint mid=(lo+hi)/2, left child
// [lo,mid) at 2*idx, right child [mid,hi) at 2*idx+1, a leaf (hi-lo==1)
// carries LCPLeaves[lo], internal nodes carry the min of their children.
func (idx *Index) buildTree() {
	m := len(idx.LCPLeaves)
	size := 1
	for size < m {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	idx.treeSize = size
	idx.tree = make([]int, 2*size)
	idx.fold(1, 0, size)
}

func (idx *Index) fold(node, lo, hi int) int {
	if hi-lo == 1 {
		v := 0
		if lo < len(idx.LCPLeaves) {
			v = idx.LCPLeaves[lo]
		}
		idx.tree[node] = v
		return v
	}
	mid := (lo + hi) / 2
	left := idx.fold(2*node, lo, mid)
	right := idx.fold(2*node+1, mid, hi)
	v := left
	if right < v {
		v = right
	}
	idx.tree[node] = v
	return v
}

// LCPLeaf returns LCPLeaves[i] (0-based slice index).
func (idx *Index) LCPLeaf(i int) int { return idx.LCPLeaves[i] }

// RangeMin returns min(LCPLeaves[lo:hi]) (half-open, 0-based) in
// O(log M) using the folded tree.
func (idx *Index) RangeMin(lo, hi int) int {
	return idx.query(1, 0, idx.treeSize, lo, hi)
}

func (idx *Index) query(node, nodeLo, nodeHi, lo, hi int) int {
	if hi <= nodeLo || nodeHi <= lo {
		return infDepth
	}
	if lo <= nodeLo && nodeHi <= hi {
		return idx.tree[node]
	}
	mid := (nodeLo + nodeHi) / 2
	left := idx.query(2*node, nodeLo, mid, lo, hi)
	right := idx.query(2*node+1, mid, nodeHi, lo, hi)
	if right < left {
		return right
	}
	return left
}
