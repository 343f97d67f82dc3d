package lz

import (
	"testing"

	"github.com/rafalcode/gusf/internal/sufftree"
)

func checkCoverage(t *testing.T, text string, blocks []Block, nonOverlap bool) {
	t.Helper()
	pos := 0
	for _, b := range blocks {
		if b.Prev == -1 {
			if b.Length != 1 {
				t.Fatalf("%q: singleton block has length %d, want 1", text, b.Length)
			}
		} else {
			start0 := b.Prev - 1
			if start0 >= pos {
				t.Fatalf("%q: block at %d cites occurrence at %d, not earlier", text, pos, start0)
			}
			if start0+b.Length > len(text) {
				t.Fatalf("%q: occurrence at %d length %d runs past text", text, start0, b.Length)
			}
			got := text[start0 : start0+b.Length]
			want := text[pos : pos+b.Length]
			if got != want {
				t.Fatalf("%q: block at %d content %q != occurrence content %q", text, pos, want, got)
			}
			if nonOverlap && start0+b.Length-1 >= pos {
				t.Fatalf("%q: non-overlapping block at %d cites occurrence ending at %d (not strictly before)", text, pos, start0+b.Length-1)
			}
		}
		pos += b.Length
	}
	if pos != len(text) {
		t.Fatalf("%q: blocks cover %d bytes, want %d", text, pos, len(text))
	}
}

func TestFactorize(t *testing.T) {
	texts := []string{"abababab", "banana", "aabaabaabaa", "abcabxabcaby", "x"}
	for _, text := range texts {
		tr, err := sufftree.Build([]byte(text))
		if err != nil {
			t.Fatalf("sufftree.Build(%q): %v", text, err)
		}
		blocks, err := Factorize(tr, len(text))
		if err != nil {
			t.Fatalf("Factorize(%q): %v", text, err)
		}
		checkCoverage(t, text, blocks, false)
	}
}

func TestFactorizeNonOverlapping(t *testing.T) {
	texts := []string{"abababab", "banana", "aabaabaabaa", "abcabxabcaby", "x"}
	for _, text := range texts {
		tr, err := sufftree.Build([]byte(text))
		if err != nil {
			t.Fatalf("sufftree.Build(%q): %v", text, err)
		}
		blocks, err := FactorizeNonOverlapping(tr, len(text))
		if err != nil {
			t.Fatalf("FactorizeNonOverlapping(%q): %v", text, err)
		}
		checkCoverage(t, text, blocks, true)
	}
}

func TestFactorizeEmptyText(t *testing.T) {
	tr, err := sufftree.Build([]byte{})
	if err != nil {
		t.Fatalf("sufftree.Build: %v", err)
	}
	blocks, err := Factorize(tr, 0)
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks for empty text, got %v", blocks)
	}
}

func TestFactorizeFirstBlockIsSingleton(t *testing.T) {
	tr, err := sufftree.Build([]byte("xyz"))
	if err != nil {
		t.Fatalf("sufftree.Build: %v", err)
	}
	blocks, err := Factorize(tr, 3)
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}
	if blocks[0].Prev != -1 || blocks[0].Length != 1 {
		t.Fatalf("first block = %+v, want singleton", blocks[0])
	}
}
