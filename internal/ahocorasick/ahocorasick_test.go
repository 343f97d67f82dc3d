package ahocorasick

import (
	"reflect"
	"testing"
)

func TestScanS3(t *testing.T) {
	patterns := [][]byte{[]byte("he"), []byte("she"), []byte("his"), []byte("hers")}
	m, err := Build(patterns)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := m.Scan([]byte("ushers"))
	want := []Match{
		{Pos: 2, Length: 3, Pattern: 1}, // she
		{Pos: 3, Length: 2, Pattern: 0}, // he
		{Pos: 3, Length: 4, Pattern: 3}, // hers
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Scan = %+v, want %+v", got, want)
	}
}

func TestScanNoMatches(t *testing.T) {
	patterns := [][]byte{[]byte("xyz")}
	m, err := Build(patterns)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := m.Scan([]byte("abcdef"))
	if len(got) != 0 {
		t.Fatalf("got %v want none", got)
	}
}

func TestBuildDuplicatePattern(t *testing.T) {
	patterns := [][]byte{[]byte("a"), []byte("a")}
	m, err := Build(patterns)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := m.Scan([]byte("a"))
	if len(got) != 2 {
		t.Fatalf("expected both identical patterns to match, got %v", got)
	}
}

func TestBuildEmptyPattern(t *testing.T) {
	if _, err := Build([][]byte{nil}); err == nil {
		t.Fatalf("expected error for empty pattern")
	}
}

func TestOverlappingPatterns(t *testing.T) {
	patterns := [][]byte{[]byte("a"), []byte("aa"), []byte("aaa")}
	m, err := Build(patterns)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := m.Scan([]byte("aaa"))
	want := []Match{
		{Pos: 1, Length: 1, Pattern: 0}, // right end 1
		{Pos: 1, Length: 2, Pattern: 1}, // right end 2, longer first
		{Pos: 2, Length: 1, Pattern: 0}, // right end 2
		{Pos: 1, Length: 3, Pattern: 2}, // right end 3, longest first
		{Pos: 2, Length: 2, Pattern: 1}, // right end 3
		{Pos: 3, Length: 1, Pattern: 0}, // right end 3
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Scan = %+v, want %+v", got, want)
	}
}
