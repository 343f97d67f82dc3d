package supermax

import (
	"bytes"
	"testing"

	"github.com/rafalcode/gusf/internal/sufftree"
)

func build(t *testing.T, text string) *sufftree.Tree {
	t.Helper()
	tr, err := sufftree.Build([]byte(text))
	if err != nil {
		t.Fatalf("sufftree.Build(%q): %v", text, err)
	}
	return tr
}

func TestFindInvariants(t *testing.T) {
	texts := []string{"abcabd", "mississippi", "banana", "abaababaabaab"}
	for _, text := range texts {
		tr := build(t, text)
		reps, err := Find(tr, 1, 100)
		if err != nil {
			t.Fatalf("Find(%q): %v", text, err)
		}
		for _, r := range reps {
			if r.Witnesses != r.Count {
				t.Fatalf("%q: repeat %+v at minPercent=100 must have witnesses==count", text, r)
			}
			if len(r.Label) < 1 {
				t.Fatalf("%q: repeat %+v has empty label", text, r)
			}
			got := []byte(text)[r.Pos-1 : r.Pos-1+len(r.Label)]
			if !bytes.Equal(got, r.Label) {
				t.Fatalf("%q: label %q does not match text at reported Pos %d (%q)", text, r.Label, r.Pos, got)
			}
		}
	}
}

func TestFindMinLengthFilters(t *testing.T) {
	tr := build(t, "mississippi")
	all, err := Find(tr, 1, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	filtered, err := Find(tr, 3, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(filtered) > len(all) {
		t.Fatalf("raising minLength should not increase result count")
	}
	for _, r := range filtered {
		if len(r.Label) < 3 {
			t.Fatalf("repeat %+v shorter than minLength 3", r)
		}
	}
}

func TestFindKnownTwoOccurrence(t *testing.T) {
	// "ab" occurs at pos1 (no left predecessor) and pos4 (left 'c'):
	// two distinct left predecessors, both unique -> full witnesses.
	tr := build(t, "abcabd")
	reps, err := Find(tr, 2, 100)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	found := false
	for _, r := range reps {
		if string(r.Label) == "ab" {
			found = true
			if r.Count != 2 || r.Witnesses != 2 {
				t.Fatalf("\"ab\" repeat = %+v, want Count=2 Witnesses=2", r)
			}
		}
	}
	if !found {
		t.Fatalf("expected \"ab\" to be reported as supermaximal, got %+v", reps)
	}
}

func TestFindNilRejected(t *testing.T) {
	if _, err := Find(nil, 1, 100); err == nil {
		t.Fatalf("expected error for nil tree")
	}
}
