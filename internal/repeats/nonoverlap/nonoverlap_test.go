package nonoverlap

import (
	"testing"

	"github.com/rafalcode/gusf/internal/repeats/primitives"
)

func TestFindIsSubsetOfPrimitives(t *testing.T) {
	s := []byte("abaababaabaab")
	all, err := primitives.Find(s)
	if err != nil {
		t.Fatalf("primitives.Find: %v", err)
	}
	allSet := make(map[[2]int]bool, len(all))
	for _, r := range all {
		allSet[[2]int{r.Pos, r.Period}] = true
	}

	got, err := Find(s)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for _, r := range got {
		if !allSet[[2]int{r.Pos, r.Period}] {
			t.Fatalf("nonoverlap reported (%d,%d) which primitives.Find never found", r.Pos, r.Period)
		}
	}
	if len(got) > len(all) {
		t.Fatalf("nonoverlap reported more repeats (%d) than primitives (%d)", len(got), len(all))
	}
}

func TestFindExcludesLeftExtendable(t *testing.T) {
	// "aaaa": period-1 squares at pos 1,2,3 all share left-extendable
	// runs except the leftmost; only pos 1 should survive.
	got, err := Find([]byte("aaaa"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 || got[0].Pos != 1 || got[0].Period != 1 {
		t.Fatalf("got %+v, want single repeat at pos 1 period 1", got)
	}
}

func TestFindEmpty(t *testing.T) {
	got, err := Find([]byte{})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no repeats")
	}
}
