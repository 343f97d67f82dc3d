package sufftree

import (
	"bytes"
	"testing"
)

// pathLabel reconstructs the path label of v by walking EdgeStr from
// root down, which must equal the substring of s at v's leftmost
// occurrence of length LabelLen(v).
func pathLabel(t *Tree, v NodeID) []byte {
	var chain []NodeID
	for n := v; n != Root; n = t.Parent(n) {
		chain = append(chain, n)
	}
	var buf []byte
	for i := len(chain) - 1; i >= 0; i-- {
		buf = append(buf, t.EdgeStr(chain[i])...)
	}
	return buf
}

func TestBuildBanana(t *testing.T) {
	tr, err := Build([]byte("banana"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tr.NumLeavesBelow(Root) != 6 {
		t.Fatalf("root leaves = %d, want 6", tr.NumLeavesBelow(Root))
	}
	if tr.Parent(Root) != None {
		t.Fatalf("root parent = %v, want None", tr.Parent(Root))
	}

	var walk func(v NodeID)
	leaves := 0
	walk = func(v NodeID) {
		if tr.IsLeaf(v) {
			leaves++
			want := tr.s[tr.LeafPos(v)-1:]
			got := pathLabel(tr, v)
			if !bytes.Equal(got, want) {
				t.Fatalf("leaf pos %d: path label = %q, want %q", tr.LeafPos(v), got, want)
			}
			return
		}
		for _, c := range tr.Children(v) {
			walk(c)
		}
	}
	walk(Root)
	if leaves != 6 {
		t.Fatalf("visited %d leaves, want 6", leaves)
	}
}

func TestEdgeStrAndFindChild(t *testing.T) {
	tr, err := Build([]byte("banana"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, c := range tr.Children(Root) {
		es := tr.EdgeStr(c)
		if len(es) == 0 {
			t.Fatalf("child %d has empty edge", c)
		}
		found := tr.FindChild(Root, es[0])
		if found != c {
			t.Fatalf("FindChild(%q) = %v, want %v", es[0], found, c)
		}
	}
	if tr.FindChild(Root, 'z') != None {
		t.Fatalf("expected None for byte not present")
	}
}

func TestSuffixLinkDepthInvariant(t *testing.T) {
	tr, err := Build([]byte("mississippi"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var walk func(v NodeID)
	walk = func(v NodeID) {
		if v != Root {
			link := tr.SuffixLink(v)
			if link != None {
				wantDepth := tr.LabelLen(v) - 1
				if tr.LabelLen(link) != wantDepth {
					t.Fatalf("node depth %d: suffix link depth = %d, want %d", tr.LabelLen(v), tr.LabelLen(link), wantDepth)
				}
				gotPath := pathLabel(tr, link)
				wantPath := pathLabel(tr, v)[1:]
				if !bytes.Equal(gotPath, wantPath) {
					t.Fatalf("suffix link path = %q, want %q", gotPath, wantPath)
				}
			}
		}
		if !tr.IsLeaf(v) {
			for _, c := range tr.Children(v) {
				walk(c)
			}
		}
	}
	walk(Root)
}

func TestEnumerateDirectLeaves(t *testing.T) {
	tr, err := Build([]byte("aaaa"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// "aaaa" forms a single chain of nested prefixes: at every depth the
	// node on the chain has exactly one direct leaf child (the suffix
	// "a"*k ending there) plus one internal child continuing the chain,
	// except the deepest node, whose two children are both leaves.
	label, pos, id, ok := tr.EnumerateDirectLeaves(Root, 0)
	if !ok {
		t.Fatalf("expected root to have a direct leaf child (the shortest suffix)")
	}
	if string(label) != "a" || pos != 4 || id != 0 {
		t.Fatalf("root direct leaf = (%q, %d, %d), want (\"a\", 4, 0)", label, pos, id)
	}
	if _, _, _, ok := tr.EnumerateDirectLeaves(Root, 1); ok {
		t.Fatalf("root should have exactly one direct leaf child")
	}
}

func TestBuildEmptySequence(t *testing.T) {
	tr, err := Build([]byte{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tr.NumLeavesBelow(Root) != 0 {
		t.Fatalf("expected 0 leaves for empty sequence")
	}
}

func TestBuildNilRejected(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatalf("expected error for nil sequence")
	}
}
