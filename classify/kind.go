// Package classify decides whether a failed attempt permits another try.
//
// Error categories are identity tags (Kind) rather than error types:
// an error carries a kind either by implementing Kinder or by being
// wrapped with MarkKind, and membership checks compare tags for
// equality. This keeps classification independent of how an error type
// is declared or embedded.
package classify

import "errors"

// Kind is an identity tag for an error category.
type Kind string

// KindUnknown is the kind of errors that carry no tag.
const KindUnknown Kind = ""

// Kinder is implemented by errors that carry their own kind.
type Kinder interface {
	RetryKind() Kind
}

type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string {
	return string(e.kind) + ": " + e.err.Error()
}

func (e *kindError) Unwrap() error { return e.err }

func (e *kindError) RetryKind() Kind { return e.kind }

// MarkKind wraps err with kind so that KindOf(MarkKind(err, kind)) ==
// kind while errors.Is(MarkKind(err, kind), err) still holds. Marking
// is idempotent: an error that already carries kind is returned
// unchanged. A nil error or KindUnknown returns err as-is.
func MarkKind(err error, kind Kind) error {
	if err == nil || kind == KindUnknown {
		return err
	}
	if KindOf(err) == kind {
		return err
	}
	return &kindError{kind: kind, err: err}
}

// KindOf returns the outermost kind in err's wrap chain, or KindUnknown.
// Joined errors are searched depth-first; the first tagged branch wins.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if k, ok := err.(Kinder); ok {
		return k.RetryKind()
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, nested := range joined.Unwrap() {
			if k := KindOf(nested); k != KindUnknown {
				return k
			}
		}
		return KindUnknown
	}
	return KindOf(errors.Unwrap(err))
}

// HasKind reports whether err carries kind.
func HasKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
