// Package primitives finds primitive tandem repeats (squares ww where w
// is itself not a power of a shorter string) over a sequence, per
// spec.md §4.11 (C11).
//
// Grounded on Crochemore's class-refinement algorithm in
// original_source/strmat/repeats_primitives.c: every position starts in
// one class keyed by its character. At iteration i, each class (list) is
// examined and, for every position pos it holds, the PREDECESSOR
// position pos-1 is pulled into a fresh class that groups predecessors
// by which source class pulled them; two positions land in the same new
// class exactly when S[pos..pos+i-1] agrees, refining the i-1 partition
// into the i partition. A primitive tandem repeat of period i is exactly
// a pair of positions p, p+i that are still adjacent in the same class
// after this refinement. The large-list/small-list rule — reuse the
// single largest class of a node in place, and only relink the smaller
// ones into fresh classes — bounds the total relinking work across all
// n-1 iterations to O(n log n), since no single position can be
// relinked out of a "smaller half" more than O(log n) times.
//
// The C structs (pr_entry/pr_list/pr_node, raw pointers recovered to
// array indices via pointer arithmetic) are reified per spec.md §9 into
// arena-indexed intrusive lists: entries, lists and nodes live in
// growing slices, and entryRef/listRef/nodeRef are slice indices rather
// than *T. entries never grows past its initial n slots: an entry's
// index *is* its text position, fixed for the entry's whole lifetime, so
// a predecessor lookup is always a direct array index, never a search.
package primitives

import "github.com/rafalcode/gusf/gerr"

// Repeat is one primitive tandem repeat occurrence: S[Pos..Pos+2*Period-1]
// is a square ww with |w|=Period and w primitive. Pos is 1-based.
type Repeat struct {
	Pos    int
	Period int
}

type entryRef int
type listRef int
type nodeRef int

const none = -1

type entry struct {
	next, prev entryRef
	inList     listRef
	pos        int // 0-based text position; equal to this entry's own index
}

// prList is one equivalence class, threaded as a doubly linked sibling
// chain under the node it currently belongs to, so a list can be
// unlinked from the middle of that chain in O(1).
type prList struct {
	next, prev listRef
	atNode     nodeRef
	head, tail entryRef
	len        int
}

type prNode struct {
	headList, tailList listRef
	lastSourceList     listRef // the source list this node most recently received a pull from
}

type builder struct {
	entries []entry
	lists   []prList
	nodes   []prNode
	out     []Repeat
}

// Find enumerates every primitive tandem repeat in s.
func Find(s []byte) ([]Repeat, error) {
	if s == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	n := len(s)
	if n == 0 {
		return nil, nil
	}
	b := &builder{entries: make([]entry, n)}
	for pos := 0; pos < n; pos++ {
		b.entries[pos] = entry{pos: pos, inList: none}
	}

	root := b.createBasicLists(s)
	curNodes := []nodeRef{root}

	for i := 1; i < n && len(curNodes) > 0; i++ {
		b.report(curNodes, i)

		// allNew tracks every list (len>1) created this round, which
		// becomes next round's node set. pullSources excludes the
		// reused large list of each node: its members stay grouped,
		// unprobed, until some OTHER (small) list's pull happens to
		// extract one of them individually. That asymmetry is the
		// whole reason this is O(n log n) rather than O(n^2): a
		// position can only be relinked out of a "smaller half" O(log
		// n) times, but probing the large list itself every round
		// would cost O(n) per round regardless.
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
					e := b.lists[newList].head
					b.entries[e].inList = none
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

		// Pulling predecessors happens in two passes so that one
		// source list's pull can never observe a half-drained view of
		// another: pos and pos-1 are always distinct entries, so no
		// two pulls this round target the same predecessor, but a
		// predecessor can itself be a member of another source list
		// that hasn't taken its own turn yet. Phase 1 only reads
		// (computing, for every live source entry, which predecessor
		// it wants to pull); phase 2 applies those pulls against the
		// still-untouched class membership phase 1 observed.
		type pull struct {
			pred entryRef
			src  listRef
		}
		var pulls []pull
		for _, l := range pullSources {
			for e := b.lists[l].head; e != none; e = b.entries[e].next {
				pos := b.entries[e].pos
				if pos-1 >= 0 {
					pred := entryRef(pos - 1)
					if b.entries[pred].inList != none {
						pulls = append(pulls, pull{pred, l})
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

		last := n - i
		if b.entries[last].inList != none {
			b.removeEntry(entryRef(last))
		}
		curNodes = nextNodes
	}

	return b.out, nil
}

func (b *builder) newList() listRef {
	id := listRef(len(b.lists))
	b.lists = append(b.lists, prList{next: none, prev: none, atNode: none, head: none, tail: none})
	return id
}

func (b *builder) newNode() nodeRef {
	id := nodeRef(len(b.nodes))
	b.nodes = append(b.nodes, prNode{headList: none, tailList: none, lastSourceList: none})
	return id
}

// appendEntry pushes e onto the tail of list l. Every caller either
// builds a list by scanning positions in ascending order (createBasicLists)
// or relinks an already-ascending list into a new one in the same order
// (splitOff, the predecessor pull in Find), so tail-append keeps every
// list sorted by position; report relies on that order to find adjacent
// pairs.
func (b *builder) appendEntry(e entryRef, l listRef) {
	b.entries[e].inList = l
	b.entries[e].next = none
	b.entries[e].prev = b.lists[l].tail
	if b.lists[l].tail != none {
		b.entries[b.lists[l].tail].next = e
	} else {
		b.lists[l].head = e
	}
	b.lists[l].tail = e
	b.lists[l].len++
}

// removeEntry drops e from its current list, cascading to removeList
// when the list becomes empty.
func (b *builder) removeEntry(e entryRef) {
	l := b.entries[e].inList
	if l == none {
		return
	}
	prev, next := b.entries[e].prev, b.entries[e].next
	if prev != none {
		b.entries[prev].next = next
	} else {
		b.lists[l].head = next
	}
	if next != none {
		b.entries[next].prev = prev
	} else {
		b.lists[l].tail = prev
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

// appendList pushes l onto the front of node nd's sibling chain.
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

// splitOff relinks every entry of l into a freshly created, detached
// list, discarding l (which empties and is removed as its last entry
// leaves). Unlike the large-list case this touches every member of l,
// which is exactly the cost the large-list/small-list rule is there to
// avoid paying for the biggest class at each node.
func (b *builder) splitOff(l listRef) listRef {
	fresh := b.newList()
	e := b.lists[l].head
	for e != none {
		next := b.entries[e].next
		b.moveEntry(e, fresh)
		e = next
	}
	return fresh
}

// createBasicLists buckets every position by its character under one
// root node, scanning left to right so each bucket comes out sorted by
// position.
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

// findMaxList returns the largest list currently under nd.
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

// listsOf snapshots nd's sibling chain before this round's splitting
// starts rewriting it.
func (b *builder) listsOf(nd nodeRef) []listRef {
	var out []listRef
	for l := b.nodes[nd].headList; l != none; l = b.lists[l].next {
		out = append(out, l)
	}
	return out
}

// report walks every list of every node in nodes, reporting a primitive
// tandem repeat for each pair of positions p, p+iteration that are
// adjacent within the same list. Any same-class pair differing by
// exactly iteration that is NOT adjacent in list order is already a
// non-primitive square, reported at an earlier, smaller period, so the
// adjacency check alone suffices.
func (b *builder) report(nodes []nodeRef, iteration int) {
	for _, nd := range nodes {
		for l := b.nodes[nd].headList; l != none; l = b.lists[l].next {
			e := b.lists[l].head
			for e != none {
				next := b.entries[e].next
				if next != none {
					p, q := b.entries[e].pos, b.entries[next].pos
					if q-p == iteration {
						b.out = append(b.out, Repeat{Pos: p + 1, Period: iteration})
					}
				}
				e = next
			}
		}
	}
}
