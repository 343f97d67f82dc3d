package bigpath

import (
	"testing"

	"github.com/rafalcode/gusf/internal/sufftree"
)

func lcpLen(s []byte, i, j int) int {
	n := len(s)
	l := 0
	for i+l < n && j+l < n && s[i+l] == s[j+l] {
		l++
	}
	return l
}

func leftChar(s []byte, pos1 int) int {
	if pos1 <= 1 {
		return -1
	}
	return int(s[pos1-2])
}

// bruteForcePairs finds every maximal repeated pair by definition
// directly from the text, independent of any suffix tree.
func bruteForcePairs(s []byte) map[[3]int]bool {
	out := make(map[[3]int]bool)
	n := len(s)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			l := lcpLen(s, i-1, j-1)
			if l == 0 {
				continue
			}
			if leftChar(s, i) == leftChar(s, j) {
				continue
			}
			out[[3]int{i, j, l}] = true
		}
	}
	return out
}

func TestFindMatchesBruteForce(t *testing.T) {
	texts := []string{"xabcyabcz", "banana", "abaababaabaab", "mississippi"}
	for _, text := range texts {
		tr, err := sufftree.Build([]byte(text))
		if err != nil {
			t.Fatalf("sufftree.Build(%q): %v", text, err)
		}
		got, err := Find(tr)
		if err != nil {
			t.Fatalf("Find(%q): %v", text, err)
		}
		want := bruteForcePairs([]byte(text))

		gotSet := make(map[[3]int]bool, len(got))
		for _, p := range got {
			a, b := p.PosA, p.PosB
			if a > b {
				a, b = b, a
			}
			gotSet[[3]int{a, b, p.Length}] = true
		}
		if len(gotSet) != len(want) {
			t.Fatalf("%q: got %d distinct pairs, want %d\ngot=%v\nwant=%v", text, len(gotSet), len(want), gotSet, want)
		}
		for k := range want {
			if !gotSet[k] {
				t.Fatalf("%q: missing pair %v", text, k)
			}
		}
	}
}

func TestFindNilRejected(t *testing.T) {
	if _, err := Find(nil); err == nil {
		t.Fatalf("expected error for nil tree")
	}
}
