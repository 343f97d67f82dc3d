// Package nonoverlap finds nonoverlapping maximal repeated pairs over a
// sequence, per spec.md §4.12 (C12).
//
// Grounded on original_source/strmat/repeats_nonoverlapping.c, Stoye's
// extension of Crochemore's class-refinement algorithm (the same
// refinement internal/repeats/primitives runs for C11): every position
// again starts in one class keyed by its own character and gets
// refined, round by round, by pulling each class member's predecessor
// into a class keyed by which source class pulled it. The extension
// is a second partition carried alongside the first: within a class,
// every position is additionally bucketed by its LEFT character (the
// character immediately before it, or a boundary marker for position
// 0). A pair of positions p<q, still in the same class (so
// S[p..p+iteration-1]==S[q..q+iteration-1]) but in DIFFERENT buckets
// of that class (so their left characters differ, meaning neither
// occurrence can be extended left into the other), with q-p>=iteration
// so the two occurrences don't overlap, is reported as a nonoverlapping
// maximal pair of period iteration.
package nonoverlap

import "github.com/rafalcode/gusf/gerr"

// Pair is one nonoverlapping maximal repeated pair: S[Pos1..Pos1+Period-1]
// and S[Pos2..Pos2+Period-1] are equal, left-maximal (can't be extended
// backward without breaking equality), and don't overlap (Pos2-Pos1 >=
// Period). Pos1 < Pos2, both 1-based.
type Pair struct {
	Pos1   int
	Pos2   int
	Period int
}

type entryRef int
type listRef int
type nodeRef int

const none = -1

// noBoundary is the left-character class of position 0, distinct from
// every real byte value.
const noBoundary = -1

type entry struct {
	next, prev entryRef // links within this entry's (list, d) bucket
	inList     listRef
	pos        int
	d          int // left-character class: s[pos-1], or noBoundary at pos 0
}

type bucket struct {
	head, tail entryRef
}

type prList struct {
	next, prev listRef
	atNode     nodeRef
	buckets    map[int]*bucket
	len        int
}

type prNode struct {
	headList, tailList listRef
	lastSourceList     listRef
}

type builder struct {
	entries []entry
	lists   []prList
	nodes   []prNode
	out     []Pair
}

// Find enumerates every nonoverlapping maximal repeated pair in s.
func Find(s []byte) ([]Pair, error) {
	if s == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	n := len(s)
	if n == 0 {
		return nil, nil
	}
	b := &builder{entries: make([]entry, n)}
	for pos := 0; pos < n; pos++ {
		d := noBoundary
		if pos > 0 {
			d = int(s[pos-1])
		}
		b.entries[pos] = entry{pos: pos, d: d, inList: none}
	}

	root := b.createBasicLists(s)
	curNodes := []nodeRef{root}

	for i := 1; i < n && len(curNodes) > 0; i++ {
		// allNew tracks every list (len>1) created this round, which
		// becomes next round's node set. pullSources excludes the
		// reused large list of each node: its members stay grouped,
		// unprobed, until some OTHER (small) list's pull happens to
		// extract one of them individually, which is what keeps the
		// total relinking work to O(n log n) instead of O(n^2).
		var allNew []listRef
		var pullSources []listRef
		for _, nd := range curNodes {
			maxList := b.findMaxList(nd)
			for _, l := range b.listsOf(nd) {
				isMax := l == maxList
				var newList listRef
				if isMax {
					b.removeList(l)
					newList = l
				} else {
					newList = b.splitOff(l)
				}
				if b.lists[newList].len == 1 {
					b.markSingleton(newList)
				} else {
					nn := b.newNode()
					b.appendList(newList, nn)
					allNew = append(allNew, newList)
					if !isMax {
						pullSources = append(pullSources, newList)
					}
				}
			}
		}

		// Same two-phase pull as internal/repeats/primitives: collect
		// every predecessor pull from the still-untouched, start-of-
		// round class membership before applying any of them, so one
		// source list's pull can't see a half-drained view of another.
		type pull struct {
			pred entryRef
			src  listRef
		}
		var pulls []pull
		for _, l := range pullSources {
			for _, bk := range b.lists[l].buckets {
				for e := bk.head; e != none; e = b.entries[e].next {
					pos := b.entries[e].pos
					if pos-1 >= 0 {
						pred := entryRef(pos - 1)
						if b.entries[pred].inList != none {
							pulls = append(pulls, pull{pred, l})
						}
					}
				}
			}
		}
		for _, pu := range pulls {
			predNode := b.lists[b.entries[pu.pred].inList].atNode
			if b.nodes[predNode].lastSourceList != pu.src {
				agg := b.newList()
				b.appendList(agg, predNode)
				b.nodes[predNode].lastSourceList = pu.src
			}
			b.moveEntry(pu.pred, b.nodes[predNode].headList)
		}

		var nextNodes []nodeRef
		for _, l := range allNew {
			nd := b.lists[l].atNode
			if nd != none && b.nodes[nd].headList != none {
				nextNodes = append(nextNodes, nd)
			}
		}

		// Unlike primitives, nonoverlap reports using the classes just
		// built THIS round (after the split and pull above), not the
		// classes coming in: a nonoverlapping maximal pair needs two
		// positions that have just landed in different lists (about to
		// diverge) of the same node, so the split has to happen first.
		b.report(nextNodes, i)

		last := n - i
		if b.entries[last].inList != none {
			b.removeEntry(entryRef(last))
		}
		curNodes = nextNodes
	}

	return b.out, nil
}

func (b *builder) markSingleton(l listRef) {
	for _, bk := range b.lists[l].buckets {
		if bk.head != none {
			b.entries[bk.head].inList = none
			return
		}
	}
}

func (b *builder) newList() listRef {
	id := listRef(len(b.lists))
	b.lists = append(b.lists, prList{next: none, prev: none, atNode: none, buckets: make(map[int]*bucket)})
	return id
}

func (b *builder) newNode() nodeRef {
	id := nodeRef(len(b.nodes))
	b.nodes = append(b.nodes, prNode{headList: none, tailList: none, lastSourceList: none})
	return id
}

// appendEntry appends e to the tail of its own left-character bucket
// within list l. Every caller relinks (or originally creates) entries
// in ascending position order, so each bucket comes out sorted by
// position, same invariant as internal/repeats/primitives.
func (b *builder) appendEntry(e entryRef, l listRef) {
	d := b.entries[e].d
	bk, ok := b.lists[l].buckets[d]
	if !ok {
		bk = &bucket{head: none, tail: none}
		b.lists[l].buckets[d] = bk
	}
	b.entries[e].inList = l
	b.entries[e].next = none
	b.entries[e].prev = bk.tail
	if bk.tail != none {
		b.entries[bk.tail].next = e
	} else {
		bk.head = e
	}
	bk.tail = e
	b.lists[l].len++
}

func (b *builder) removeEntry(e entryRef) {
	l := b.entries[e].inList
	if l == none {
		return
	}
	d := b.entries[e].d
	bk := b.lists[l].buckets[d]
	prev, next := b.entries[e].prev, b.entries[e].next
	if prev != none {
		b.entries[prev].next = next
	} else {
		bk.head = next
	}
	if next != none {
		b.entries[next].prev = prev
	} else {
		bk.tail = prev
	}
	if bk.head == none {
		delete(b.lists[l].buckets, d)
	}
	b.lists[l].len--
	b.entries[e].inList = none
	if b.lists[l].len == 0 {
		b.removeList(l)
	}
}

func (b *builder) moveEntry(e entryRef, to listRef) {
	b.removeEntry(e)
	b.appendEntry(e, to)
}

func (b *builder) appendList(l listRef, nd nodeRef) {
	b.lists[l].atNode = nd
	b.lists[l].prev = none
	b.lists[l].next = b.nodes[nd].headList
	if b.nodes[nd].headList != none {
		b.lists[b.nodes[nd].headList].prev = l
	} else {
		b.nodes[nd].tailList = l
	}
	b.nodes[nd].headList = l
}

func (b *builder) removeList(l listRef) {
	nd := b.lists[l].atNode
	if nd == none {
		return
	}
	prev, next := b.lists[l].prev, b.lists[l].next
	if prev != none {
		b.lists[prev].next = next
	} else {
		b.nodes[nd].headList = next
	}
	if next != none {
		b.lists[next].prev = prev
	} else {
		b.nodes[nd].tailList = prev
	}
	b.lists[l].atNode = none
}

// splitOff relinks every member of l, across all its left-character
// buckets, into a freshly created detached list. l itself empties and
// is removed as its last entry leaves.
func (b *builder) splitOff(l listRef) listRef {
	fresh := b.newList()
	var members []entryRef
	for _, bk := range b.lists[l].buckets {
		for e := bk.head; e != none; e = b.entries[e].next {
			members = append(members, e)
		}
	}
	for _, e := range members {
		b.moveEntry(e, fresh)
	}
	return fresh
}

// createBasicLists buckets every position by its own character into
// lists under one root node, same as internal/repeats/primitives; the
// left-character sub-bucket for each entry was already fixed when its
// pos/d pair was built in Find.
func (b *builder) createBasicLists(s []byte) nodeRef {
	root := b.newNode()
	byChar := make(map[byte]listRef)
	for pos := 0; pos < len(s); pos++ {
		c := s[pos]
		l, ok := byChar[c]
		if !ok {
			l = b.newList()
			b.appendList(l, root)
			byChar[c] = l
		}
		b.appendEntry(entryRef(pos), l)
	}
	return root
}

func (b *builder) findMaxList(nd nodeRef) listRef {
	best := b.nodes[nd].headList
	bestLen := b.lists[best].len
	for l := b.lists[best].next; l != none; l = b.lists[l].next {
		if b.lists[l].len > bestLen {
			best = l
			bestLen = b.lists[l].len
		}
	}
	return best
}

func (b *builder) listsOf(nd nodeRef) []listRef {
	var out []listRef
	for l := b.nodes[nd].headList; l != none; l = b.lists[l].next {
		out = append(out, l)
	}
	return out
}

// report walks every node reached by this round's refinement, looking
// for two positions p<q still in the same node (so the length-iteration
// substrings at p and q are equal) but in different lists (so they are
// about to split apart, meaning the substrings differ at the next
// character) and with differing left-character buckets (so neither
// occurrence of the substring can be extended one character to the
// left into the other): that is a nonoverlapping maximal pair whenever
// q-p >= iteration (the two occurrences don't overlap).
func (b *builder) report(nodes []nodeRef, iteration int) {
	for _, nd := range nodes {
		lists := b.listsOf(nd)
		for _, l := range lists {
			for _, bk := range b.lists[l].buckets {
				for e := bk.head; e != none; e = b.entries[e].next {
					ed := b.entries[e].d
					epos := b.entries[e].pos
					for _, ll := range lists {
						if ll == l {
							continue
						}
						for dd, bb := range b.lists[ll].buckets {
							if dd == ed {
								continue
							}
							for ee := bb.tail; ee != none; ee = b.entries[ee].prev {
								diff := b.entries[ee].pos - epos
								if diff < iteration {
									break
								}
								b.out = append(b.out, Pair{Pos1: epos + 1, Pos2: b.entries[ee].pos + 1, Period: iteration})
							}
						}
					}
				}
			}
		}
	}
}
