// Package gerr defines the typed error kinds shared by every index builder
// and scanner in this module (see spec.md §7 ERROR HANDLING DESIGN).
package gerr

import "errors"

// Kind classifies a failure the way the harness in spec.md §7 expects:
// preprocessing/construction failures are distinguished from usage errors
// at the query boundary.
type Kind int

const (
	// AllocationFailed means a preprocessing allocation failed. The build
	// must release any partial allocations and surface this kind; no
	// index is usable afterwards.
	AllocationFailed Kind = iota
	// InvalidArgument means the caller supplied an empty/null sequence,
	// an empty pattern, a duplicate pattern id, or an unsupported
	// alphabet size. The index is left unchanged.
	InvalidArgument
	// InvariantViolation means an input claimed a precondition (such as
	// leftmost-occurrence edge labels on a suffix tree) that it did not
	// satisfy. It surfaces only when a guard trips.
	InvariantViolation
	// IteratorMisuse means search-next was called without search-init,
	// or after an earlier terminal "no more matches". The terminal state
	// is returned idempotently.
	IteratorMisuse
)

func (k Kind) String() string {
	switch k {
	case AllocationFailed:
		return "AllocationFailed"
	case InvalidArgument:
		return "InvalidArgument"
	case InvariantViolation:
		return "InvariantViolation"
	case IteratorMisuse:
		return "IteratorMisuse"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type carried by this module. Callers that
// need to branch on the failure kind should use errors.As.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// New builds an *Error of the given kind.
func New(k Kind, msg string) error {
	return &Error{Kind: k, Msg: msg}
}

// Is reports whether err carries the given Kind.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
