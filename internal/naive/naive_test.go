package naive

import "reflect"
import "testing"

func TestSearchS1(t *testing.T) {
	got, err := Search([]byte("abab"), []byte("ababab"), false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSearchS2(t *testing.T) {
	got, err := Search([]byte("abcaby"), []byte("abcabxabcaby"), false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []int{7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestEmptyText(t *testing.T) {
	got, err := Search([]byte("a"), nil, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v want none", got)
	}
}

func TestPatternLongerThanText(t *testing.T) {
	got, err := Search([]byte("abcdef"), []byte("ab"), false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v want none", got)
	}
}

func TestEmptyPattern(t *testing.T) {
	if _, err := Search(nil, []byte("abc"), false); err == nil {
		t.Fatalf("expected error for empty pattern")
	}
}
