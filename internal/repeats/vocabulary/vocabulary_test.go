package vocabulary

import (
	"testing"

	"github.com/rafalcode/gusf/internal/sufftree"
)

func buildTree(t *testing.T, s []byte) *sufftree.Tree {
	t.Helper()
	tr, err := sufftree.Build(s)
	if err != nil {
		t.Fatalf("sufftree.Build: %v", err)
	}
	return tr
}

func TestBuildFamiliesAreConsecutiveRunsOfRealSquares(t *testing.T) {
	s := []byte("abaababaabaab")
	tr := buildTree(t, s)
	families, err := Build(tr)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, f := range families {
		for i, pos := range f.Positions {
			if i > 0 && pos != f.Positions[i-1]+1 {
				t.Fatalf("family %+v is not a consecutive run", f)
			}
			p := pos - 1
			if p+2*f.Period > len(s) || !equalRange(s, p, p+f.Period, f.Period) {
				t.Fatalf("family %+v: position %d is not a real period-%d square in %q", f, pos, f.Period, s)
			}
			if !isPrimitivePeriod(s, p, f.Period) {
				t.Fatalf("family %+v: period %d is not primitive", f, f.Period)
			}
		}
	}
}

func TestBuildAaaaSinglePeriodOneFamily(t *testing.T) {
	tr := buildTree(t, []byte("aaaa"))
	families, err := Build(tr)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(families) != 1 || families[0].Period != 1 || len(families[0].Positions) != 3 {
		t.Fatalf("got %+v, want single period-1 family spanning 3 positions", families)
	}
	want := []int{1, 2, 3}
	for i, p := range families[0].Positions {
		if p != want[i] {
			t.Fatalf("got positions %v, want %v", families[0].Positions, want)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	tr := buildTree(t, []byte{})
	families, err := Build(tr)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(families) != 0 {
		t.Fatalf("expected no families")
	}
}

func TestBuildNilTreeRejected(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatalf("expected error for nil suffix tree")
	}
}
