// Package sufftree implements the read-only suffix-tree contract of
// spec.md §6: root/children/parent/suffix_link/edge_str/label_len/
// num_leaves_below/enumerate_direct_leaves/ident/find_child. Construction
// is explicitly out of scope upstream ("a separately-maintained suffix
// tree (Ukkonen/Weiner)... consumed as a read-only navigable structure");
// this package ships one concrete builder purely so C8 and C10-C16 have
// a tree to run against, grounded on original_source/strmat/stree_weiner.c
// and stree_decomposition.c only for the shape of the interface, not the
// construction algorithm. The builder used here goes through
// internal/suffixarray instead of Weiner's right-to-left linked-list
// insertion: it folds the (already tested) suffix array and LCP array
// into an LCP-interval tree by recursive range splitting at LCP minima.
// This is not asymptotically optimal (worst case O(m^2) for a pathological
// LCP array) but its correctness follows directly from the suffix array's,
// which matters more here than raw construction speed.
package sufftree

import (
	"github.com/rafalcode/gusf/gerr"
	"github.com/rafalcode/gusf/internal/suffixarray"
)

// NodeID indexes into Tree.nodes; an arena of fixed-size records per
// spec.md §9's re-architecture note, replacing linked node/entry records.
type NodeID int32

// Root is always node 0: the first node the builder creates.
const Root NodeID = 0

// None is the sentinel returned for "no such node" (no parent, no
// sibling, no suffix link target, no matching child).
const None NodeID = -1

type kind uint8

const (
	kindLeaf kind = iota
	kindInternal
)

type node struct {
	kind        kind
	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID // construction bookkeeping, append in O(1)
	nextSibling NodeID
	numChildren int
	depth       int // label_len: cumulative edge length from root
	lo, hi      int // leaf range in the suffix array, inclusive
	minPos      int // leftmost occurrence (1-based) among leaves below
	pos         int // leaf only: 1-based suffix start
}

// Tree is a built, read-only suffix tree over one Sequence.
type Tree struct {
	s           []byte
	idx         *suffixarray.Index
	nodes       []node
	leafOfRank  []NodeID
	rankOfPos   []int
	rangeToNode map[[2]int]NodeID
}

// Build constructs a suffix tree over s with leftmost-occurrence edge
// labels (spec.md §4.16's precondition that tree-consumer components
// require).
func Build(s []byte) (*Tree, error) {
	if s == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	idx, err := suffixarray.BuildQSort(s)
	if err != nil {
		return nil, err
	}
	t := &Tree{
		s:           s,
		idx:         idx,
		rangeToNode: make(map[[2]int]NodeID),
	}
	m := idx.Len()
	t.leafOfRank = make([]NodeID, m)
	t.rankOfPos = make([]int, m)
	for rank, pos1 := range idx.Pos {
		t.rankOfPos[pos1-1] = rank
	}
	if m == 0 {
		t.newInternal(0, 0, -1)
		return t, nil
	}
	t.build(0, m-1, 0)
	return t, nil
}

func (t *Tree) newInternal(depth, lo, hi int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind: kindInternal, parent: None, firstChild: None, lastChild: None,
		nextSibling: None, depth: depth, lo: lo, hi: hi, minPos: 1<<62 - 1,
	})
	t.rangeToNode[[2]int{lo, hi}] = id
	return id
}

func (t *Tree) newLeaf(rank int) NodeID {
	pos1 := t.idx.Pos[rank]
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind: kindLeaf, parent: None, firstChild: None, lastChild: None,
		nextSibling: None, depth: len(t.s) - pos1 + 1,
		lo: rank, hi: rank, minPos: pos1, pos: pos1,
	})
	t.leafOfRank[rank] = id
	return id
}

func (t *Tree) attach(parent, child NodeID) {
	t.nodes[child].parent = parent
	if t.nodes[parent].firstChild == None {
		t.nodes[parent].firstChild = child
	} else {
		t.nodes[t.nodes[parent].lastChild].nextSibling = child
	}
	t.nodes[parent].lastChild = child
	t.nodes[parent].numChildren++
	if t.nodes[child].minPos < t.nodes[parent].minPos {
		t.nodes[parent].minPos = t.nodes[child].minPos
	}
}

// build recursively folds SA[lo..hi] (an LCP-interval at depth
// parentDepth) into a node, splitting at every index whose LCP value
// equals the interval minimum; since the suffix array is already in
// full lexicographic order, sub-intervals come out left to right in
// increasing order of the next distinguishing byte, so children end up
// sorted by edge label with no extra work.
func (t *Tree) build(lo, hi, parentDepth int) NodeID {
	if lo == hi {
		return t.newLeaf(lo)
	}
	minLCP := t.idx.LCP[lo+1]
	for k := lo + 2; k <= hi; k++ {
		if t.idx.LCP[k] < minLCP {
			minLCP = t.idx.LCP[k]
		}
	}
	id := t.newInternal(minLCP, lo, hi)
	segStart := lo
	for k := lo + 1; k <= hi; k++ {
		if t.idx.LCP[k] == minLCP {
			t.attach(id, t.build(segStart, k-1, minLCP))
			segStart = k
		}
	}
	t.attach(id, t.build(segStart, hi, minLCP))
	return id
}

// NumNodes returns the stable node count; ident(v) ranges over
// 0..NumNodes()-1.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Ident returns v itself: NodeID already is the stable 0-based identity
// spec.md §6 asks for.
func (t *Tree) Ident(v NodeID) int { return int(v) }

// Parent returns v's parent, or None for the root.
func (t *Tree) Parent(v NodeID) NodeID { return t.nodes[v].parent }

// NextSibling returns the next child of v's parent, or None if v is the
// last child.
func (t *Tree) NextSibling(v NodeID) NodeID { return t.nodes[v].nextSibling }

// NumChildren returns the direct child count of v.
func (t *Tree) NumChildren(v NodeID) int { return t.nodes[v].numChildren }

// Children returns v's direct children in edge-label order.
func (t *Tree) Children(v NodeID) []NodeID {
	out := make([]NodeID, 0, t.nodes[v].numChildren)
	for c := t.nodes[v].firstChild; c != None; c = t.nodes[c].nextSibling {
		out = append(out, c)
	}
	return out
}

// FindChild returns the child of v whose edge begins with b, or None.
func (t *Tree) FindChild(v NodeID, b byte) NodeID {
	for c := t.nodes[v].firstChild; c != None; c = t.nodes[c].nextSibling {
		es := t.EdgeStr(c)
		if len(es) > 0 && es[0] == b {
			return c
		}
	}
	return None
}

// LabelLen returns the cumulative edge length from root to v.
func (t *Tree) LabelLen(v NodeID) int { return t.nodes[v].depth }

// EdgeLen returns the length of the single edge from v's parent to v.
func (t *Tree) EdgeLen(v NodeID) int {
	p := t.nodes[v].parent
	if p == None {
		return 0
	}
	return t.nodes[v].depth - t.nodes[p].depth
}

// EdgeStr returns the edge label from v's parent to v, sliced from S at
// v's leftmost occurrence (spec.md §6: "slice into S starting at the
// leftmost occurrence").
func (t *Tree) EdgeStr(v NodeID) []byte {
	p := t.nodes[v].parent
	if p == None {
		return nil
	}
	start := t.nodes[v].minPos - 1 + t.nodes[p].depth
	end := t.nodes[v].minPos - 1 + t.nodes[v].depth
	return t.s[start:end]
}

// LeftmostPos returns the 1-based leftmost occurrence of v's path label.
func (t *Tree) LeftmostPos(v NodeID) int { return t.nodes[v].minPos }

// NumLeavesBelow returns the leaf count in v's subtree.
func (t *Tree) NumLeavesBelow(v NodeID) int {
	return t.nodes[v].hi - t.nodes[v].lo + 1
}

// EnumerateDirectLeaves returns the i-th (0-based) direct leaf child of
// v: its tail edge label, 1-based text position, and string id (always
// 0, this package indexes a single Sequence rather than a generalized
// suffix tree over several).
func (t *Tree) EnumerateDirectLeaves(v NodeID, i int) (label []byte, pos int, stringID int, ok bool) {
	n := 0
	for c := t.nodes[v].firstChild; c != None; c = t.nodes[c].nextSibling {
		if t.nodes[c].kind != kindLeaf {
			continue
		}
		if n == i {
			return t.EdgeStr(c), t.nodes[c].pos, 0, true
		}
		n++
	}
	return nil, 0, 0, false
}

// IsLeaf reports whether v is a leaf.
func (t *Tree) IsLeaf(v NodeID) bool { return t.nodes[v].kind == kindLeaf }

// LeafPos returns a leaf's 1-based suffix start; only valid when
// IsLeaf(v).
func (t *Tree) LeafPos(v NodeID) int { return t.nodes[v].pos }

// SALo and SAHi expose the underlying suffix-array [lo,hi] range behind
// v; internal/repeats/tandem compares leaf ranks against it.
func (t *Tree) SALo(v NodeID) int { return t.nodes[v].lo }
func (t *Tree) SAHi(v NodeID) int { return t.nodes[v].hi }

// Index exposes the suffix array this tree was built from. internal/salcp
// does not use it; it re-derives Pos[]/LCP-leaves by DFS over the tree.
func (t *Tree) Index() *suffixarray.Index { return t.idx }

// Bytes exposes the underlying sequence bytes so repeat/LZ consumers can
// compare text characters directly while descending the tree.
func (t *Tree) Bytes() []byte { return t.s }

// SuffixLink returns the node whose path label is v's path label with
// its first byte dropped (spec.md §6 "suffix_link(v)"). It returns Root
// when v's path label has length 0 or 1 (the root included), and None
// when v has no tracked target.
//
// For a leaf this is a direct rank lookup of position+1 (the suffix one
// shorter). For an internal node it locates the LCP-interval of the
// shifted string via the already-verified suffix-array search rather
// than walking the tree, which sidesteps having to maintain suffix
// links incrementally during the LCP-interval build above.
func (t *Tree) SuffixLink(v NodeID) NodeID {
	n := t.nodes[v]
	if n.depth <= 1 {
		return Root
	}
	if n.kind == kindLeaf {
		nextPos := n.pos + 1
		if nextPos > len(t.s) {
			return None
		}
		return t.leafOfRank[t.rankOfPos[nextPos-1]]
	}
	start := n.minPos // 0-based index of the dropped first byte's successor
	patLen := n.depth - 1
	pattern := t.s[start : start+patLen]
	r := suffixarray.NaiveSearch(t.idx, pattern)
	if r.Count() == 0 {
		return None
	}
	id, ok := t.rangeToNode[[2]int{r.Lo, r.Hi}]
	if !ok {
		return None
	}
	return id
}
