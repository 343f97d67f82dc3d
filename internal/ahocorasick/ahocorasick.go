// Package ahocorasick implements the Aho-Corasick multi-pattern automaton
// of spec.md §4.5 (C5): a byte-keyed goto trie plus failure and output
// links, with a streaming scanner.
//
// The trie is an array-backed node pool (not a map-of-nodes-per-byte),
// grounded on _examples/itgcl-ahocorasick/ahocorasick.go's getFreeNode
// pre-allocation idiom, adapted from runes to the byte alphabet (<=256)
// required by spec.md §3, and on the BFS fail-link construction described
// in other_examples' Aho-Corasick ports.
package ahocorasick

import "github.com/rafalcode/gusf/gerr"

const alphabetSize = 256

type node struct {
	children [alphabetSize]int32 // -1 if absent
	fail     int32
	out      int32 // nearest strict ancestor-in-fail-chain that is a pattern end, -1 if none
	ids      []int // pattern ids ending exactly at this node
}

// Matcher is the built automaton.
type Matcher struct {
	nodes    []node
	patterns [][]byte
}

const root int32 = 0

func newNode() node {
	n := node{out: -1}
	for i := range n.children {
		n.children[i] = -1
	}
	return n
}

// Build constructs the automaton for the given set of patterns. Pattern i
// is identified by its index i in patterns.
func Build(patterns [][]byte) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "no patterns")
	}
	m := &Matcher{patterns: patterns}
	m.nodes = append(m.nodes, newNode())

	seen := make(map[int]bool, len(patterns))
	for id, p := range patterns {
		if len(p) == 0 {
			return nil, gerr.New(gerr.InvalidArgument, "empty pattern")
		}
		if seen[id] {
			return nil, gerr.New(gerr.InvalidArgument, "duplicate pattern id")
		}
		seen[id] = true

		cur := root
		for _, c := range p {
			next := m.nodes[cur].children[c]
			if next == -1 {
				m.nodes = append(m.nodes, newNode())
				next = int32(len(m.nodes) - 1)
				m.nodes[cur].children[c] = next
			}
			cur = next
		}
		m.nodes[cur].ids = append(m.nodes[cur].ids, id)
	}

	m.buildLinks()
	return m, nil
}

// buildLinks computes fail and out links via a BFS from the root, per
// spec.md §4.5.
func (m *Matcher) buildLinks() {
	queue := make([]int32, 0, len(m.nodes))
	for c := 0; c < alphabetSize; c++ {
		child := m.nodes[root].children[c]
		if child == -1 {
			continue
		}
		m.nodes[child].fail = root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for c := 0; c < alphabetSize; c++ {
			child := m.nodes[v].children[c]
			if child == -1 {
				continue
			}
			queue = append(queue, child)

			f := m.nodes[v].fail
			for f != root && m.nodes[f].children[c] == -1 {
				f = m.nodes[f].fail
			}
			var failChild int32
			if m.nodes[f].children[c] != -1 {
				failChild = m.nodes[f].children[c]
			} else {
				failChild = root
			}
			m.nodes[child].fail = failChild

			if len(m.nodes[failChild].ids) > 0 {
				m.nodes[child].out = failChild
			} else {
				m.nodes[child].out = m.nodes[failChild].out
			}
		}
	}
}

// Match is one reported occurrence: a 1-based left end, the matched
// pattern's length, and its id.
type Match struct {
	Pos     int
	Length  int
	Pattern int
}

// Scan streams over text, emitting every pattern occurrence. Emission
// order is ascending right-endpoint, ties broken by descending pattern
// length (spec.md §4.5, §5 "Ordering guarantees").
func (m *Matcher) Scan(text []byte) []Match {
	var matches []Match
	v := root
	for pos, c := range text {
		for v != root && m.nodes[v].children[c] == -1 {
			v = m.nodes[v].fail
		}
		if m.nodes[v].children[c] != -1 {
			v = m.nodes[v].children[c]
		}
		for _, id := range m.nodes[v].ids {
			matches = append(matches, Match{Pos: pos - len(m.patterns[id]) + 2, Length: len(m.patterns[id]), Pattern: id})
		}
		out := m.nodes[v].out
		for out != -1 && out != root {
			for _, id := range m.nodes[out].ids {
				matches = append(matches, Match{Pos: pos - len(m.patterns[id]) + 2, Length: len(m.patterns[id]), Pattern: id})
			}
			out = m.nodes[out].out
		}
	}
	sortMatches(matches)
	return matches
}

func sortMatches(matches []Match) {
	// Insertion sort: match counts are small relative to text length in
	// the intended off-line-analysis workload, and this keeps the
	// ordering stable without pulling in sort.Slice's comparator
	// closures inside the hot path.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && less(matches[j], matches[j-1]); j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

func less(a, b Match) bool {
	ae := a.Pos + a.Length
	be := b.Pos + b.Length
	if ae != be {
		return ae < be
	}
	return a.Length > b.Length
}
