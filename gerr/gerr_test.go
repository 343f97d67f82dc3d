package gerr

import "testing"

func TestIsMatchesKind(t *testing.T) {
	err := New(InvalidArgument, "empty pattern")
	if !Is(err, InvalidArgument) {
		t.Fatalf("Is(err, InvalidArgument) = false, want true")
	}
	if Is(err, AllocationFailed) {
		t.Fatalf("Is(err, AllocationFailed) = true, want false")
	}
}

func TestIsFalseForNilError(t *testing.T) {
	var plain error
	if Is(plain, InvalidArgument) {
		t.Fatalf("Is(nil, ...) = true, want false")
	}
}

func TestErrorStringIncludesKindAndMsg(t *testing.T) {
	err := New(IteratorMisuse, "search-next without search-init")
	want := "IteratorMisuse: search-next without search-init"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 99
	if k.String() != "Unknown" {
		t.Fatalf("String() = %q, want %q", k.String(), "Unknown")
	}
}
