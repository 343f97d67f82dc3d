package zarray

import (
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want []int // 1-based Z values, want[0] is Z[1] (always 0)
	}{
		{
			name: "S5 aabcaabxaaz",
			s:    "aabcaabxaaz",
			want: []int{0, 1, 0, 0, 3, 1, 0, 0, 2, 1, 0},
		},
		{
			name: "S1 abab repeated",
			s:    "ababab",
			want: []int{0, 0, 4, 0, 2, 0},
		},
		{
			name: "single char run",
			s:    "aaaa",
			want: []int{0, 3, 2, 1},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z, err := Build([]byte(c.s))
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			got := make([]int, z.Len())
			for i := 1; i <= z.Len(); i++ {
				got[i-1] = z.At1(i)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Z(%q) = %v, want %v", c.s, got, c.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	matches, err := Search([]byte("abab"), []byte("ababab"), false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []int{1, 3}
	if !reflect.DeepEqual(matches, want) {
		t.Fatalf("Search = %v, want %v", matches, want)
	}
}

func TestSearchNoMatch(t *testing.T) {
	matches, err := Search([]byte("xyz"), []byte("ababab"), false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("Search = %v, want none", matches)
	}
}

func TestSearchPatternLongerThanText(t *testing.T) {
	matches, err := Search([]byte("abcdef"), []byte("ab"), false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("Search = %v, want none", matches)
	}
}

func TestSearchZeroByte(t *testing.T) {
	text := []byte{'a', 'b', 0, 'a', 'b', 'c'}
	matches, err := Search([]byte{'a', 'b', 'c'}, text, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []int{4}
	if !reflect.DeepEqual(matches, want) {
		t.Fatalf("Search = %v, want %v", matches, want)
	}
}
