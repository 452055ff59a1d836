package classify

// Filter decides whether a failure permits another attempt.
//
// The veto order is fixed. A configured predicate returning false
// forbids retrying and short-circuits the kind set. Otherwise a
// non-empty kind set forbids any error whose kind is not a member.
// Otherwise retrying is permitted. The zero Filter permits everything.
type Filter struct {
	// Predicate, when set, must return true for an error to be
	// retryable. It is consulted before Kinds.
	Predicate func(error) bool

	// Kinds, when non-empty, is the explicit set of retryable error
	// kinds.
	Kinds []Kind
}

// CanRetry reports whether err permits another attempt under f.
func (f Filter) CanRetry(err error) bool {
	if f.Predicate != nil && !f.Predicate(err) {
		return false
	}
	if len(f.Kinds) == 0 {
		return true
	}
	k := KindOf(err)
	for _, kind := range f.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}
