package suffixarray

import (
	"reflect"
	"sort"
	"testing"
)

func TestBuildQSortS4(t *testing.T) {
	idx, err := BuildQSort([]byte("banana"))
	if err != nil {
		t.Fatalf("BuildQSort: %v", err)
	}
	want := []int{6, 4, 2, 1, 5, 3}
	if !reflect.DeepEqual(idx.Pos, want) {
		t.Fatalf("Pos = %v, want %v", idx.Pos, want)
	}
}

func TestBuildersAgree(t *testing.T) {
	texts := []string{"banana", "mississippi", "abababab", "aaaaaaaaaa", "gusfield"}
	for _, text := range texts {
		a, err := BuildQSort([]byte(text))
		if err != nil {
			t.Fatalf("BuildQSort(%q): %v", text, err)
		}
		b, err := BuildDoubling([]byte(text))
		if err != nil {
			t.Fatalf("BuildDoubling(%q): %v", text, err)
		}
		if !reflect.DeepEqual(a.Pos, b.Pos) {
			t.Fatalf("%q: qsort Pos=%v doubling Pos=%v", text, a.Pos, b.Pos)
		}
		if !reflect.DeepEqual(a.LCP, b.LCP) {
			t.Fatalf("%q: qsort LCP=%v doubling LCP=%v", text, a.LCP, b.LCP)
		}
	}
}

func TestSearchVariantsAgree(t *testing.T) {
	text := "mississippi"
	idx, err := BuildQSort([]byte(text))
	if err != nil {
		t.Fatalf("BuildQSort: %v", err)
	}
	for _, pattern := range []string{"i", "is", "ssi", "p", "z", "mississippi", "ppi"} {
		naive := idx.Positions(NaiveSearch(idx, []byte(pattern)))
		mlr := idx.Positions(MlrSearch(idx, []byte(pattern)))
		lcp := idx.Positions(LcpSearch(idx, []byte(pattern)))
		sort.Ints(naive)
		sort.Ints(mlr)
		sort.Ints(lcp)
		if !reflect.DeepEqual(naive, mlr) {
			t.Fatalf("pattern %q: naive=%v mlr=%v", pattern, naive, mlr)
		}
		if !reflect.DeepEqual(naive, lcp) {
			t.Fatalf("pattern %q: naive=%v lcp=%v", pattern, naive, lcp)
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	idx, err := BuildQSort([]byte("banana"))
	if err != nil {
		t.Fatalf("BuildQSort: %v", err)
	}
	r := NaiveSearch(idx, []byte("xyz"))
	if r.Count() != 0 {
		t.Fatalf("expected no match, got %v", r)
	}
}
