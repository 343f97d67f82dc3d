// Package seq holds the Sequence entity described in spec.md §3: an
// immutable ordered byte string, optionally owned by an index (copyflag).
//
// The algorithmic literature this module is grounded on (see
// original_source/strmat/z.c's "S--" shift-to-1-based trick) indexes
// sequences from 1. Per spec.md §9's re-architecture note, this package
// stores bytes 0-based and exposes a single accessor, At, that applies the
// +1/-1 boundary conversion so the rest of the engine never repeats the
// pointer-shift trick.
package seq

import "github.com/rafalcode/gusf/gerr"

// Sequence is an immutable byte string of length M >= 0.
type Sequence struct {
	bytes []byte
	owned bool
}

// New builds a Sequence from b. If copyflag is true the Sequence takes a
// defensive copy and owns it for its lifetime; otherwise b is borrowed and
// the caller must keep it alive and unmodified.
func New(b []byte, copyflag bool) (*Sequence, error) {
	if b == nil {
		return nil, gerr.New(gerr.InvalidArgument, "nil sequence")
	}
	if copyflag {
		cp := make([]byte, len(b))
		copy(cp, b)
		return &Sequence{bytes: cp, owned: true}, nil
	}
	return &Sequence{bytes: b, owned: false}, nil
}

// FromString is a convenience wrapper that always copies.
func FromString(s string) *Sequence {
	return &Sequence{bytes: []byte(s), owned: true}
}

// Len returns M, the sequence length.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bytes)
}

// Bytes returns the 0-based byte slice S[0..M-1]. Callers that need the
// 1-based mathematics of spec.md §3 should use At instead.
func (s *Sequence) Bytes() []byte {
	return s.bytes
}

// At returns S[i] using the 1-based indexing convention of spec.md §3
// (1 <= i <= M). It is the single point where the +1/-1 boundary
// conversion from 0-based storage happens.
func (s *Sequence) At(i int) byte {
	return s.bytes[i-1]
}

// Owned reports whether the Sequence holds a defensive copy (copyflag was
// true at construction).
func (s *Sequence) Owned() bool {
	return s.owned
}

// Slice1 returns the 0-based substring corresponding to the 1-based
// closed range S[i..j].
func (s *Sequence) Slice1(i, j int) []byte {
	if i < 1 {
		i = 1
	}
	if j > len(s.bytes) {
		j = len(s.bytes)
	}
	if i > j {
		return nil
	}
	return s.bytes[i-1 : j]
}
