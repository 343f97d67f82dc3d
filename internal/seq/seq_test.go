package seq

import "testing"

func TestNewCopiesWhenRequested(t *testing.T) {
	b := []byte("banana")
	s, err := New(b, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b[0] = 'x'
	if s.At(1) != 'b' {
		t.Fatalf("At(1) = %c, want 'b' (copy should be unaffected by mutation)", s.At(1))
	}
	if !s.Owned() {
		t.Fatalf("Owned() = false, want true when copyflag is true")
	}
}

func TestNewBorrowsWithoutCopy(t *testing.T) {
	b := []byte("banana")
	s, err := New(b, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Owned() {
		t.Fatalf("Owned() = true, want false when copyflag is false")
	}
}

func TestNewRejectsNil(t *testing.T) {
	if _, err := New(nil, true); err == nil {
		t.Fatalf("expected error for nil input")
	}
}

func TestAtIs1Based(t *testing.T) {
	s := FromString("banana")
	if s.At(1) != 'b' || s.At(6) != 'a' {
		t.Fatalf("At(1)/At(6) = %c/%c, want b/a", s.At(1), s.At(6))
	}
}

func TestLen(t *testing.T) {
	s := FromString("banana")
	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}
	var nilSeq *Sequence
	if nilSeq.Len() != 0 {
		t.Fatalf("nil Sequence Len() = %d, want 0", nilSeq.Len())
	}
}

func TestSlice1(t *testing.T) {
	s := FromString("banana")
	if got := string(s.Slice1(2, 4)); got != "ana" {
		t.Fatalf("Slice1(2,4) = %q, want %q", got, "ana")
	}
	if got := s.Slice1(5, 2); got != nil {
		t.Fatalf("Slice1(5,2) = %q, want nil for i>j", got)
	}
	if got := string(s.Slice1(0, 100)); got != "banana" {
		t.Fatalf("Slice1(0,100) = %q, want clamped full range", got)
	}
}
