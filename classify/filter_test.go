package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter_ZeroValuePermitsEverything(t *testing.T) {
	var f Filter
	require.True(t, f.CanRetry(errors.New("anything")))
}

func TestFilter_PredicateVeto(t *testing.T) {
	f := Filter{Predicate: func(error) bool { return false }}
	require.False(t, f.CanRetry(errors.New("boom")))
}

func TestFilter_PredicateVetoShortCircuitsKindSet(t *testing.T) {
	// Even an error whose kind is in the explicit set is forbidden when
	// the predicate says no.
	err := MarkKind(errors.New("boom"), kindTransient)
	f := Filter{
		Predicate: func(error) bool { return false },
		Kinds:     []Kind{kindTransient},
	}
	require.False(t, f.CanRetry(err))
}

func TestFilter_KindSetMembership(t *testing.T) {
	f := Filter{Kinds: []Kind{kindTransient, Kind("conflict")}}

	require.True(t, f.CanRetry(MarkKind(errors.New("boom"), kindTransient)))
	require.True(t, f.CanRetry(MarkKind(errors.New("boom"), Kind("conflict"))))
	require.False(t, f.CanRetry(MarkKind(errors.New("boom"), Kind("fatal"))))
	require.False(t, f.CanRetry(errors.New("untagged")))
}

func TestFilter_PredicateAllowsThenKindSetDecides(t *testing.T) {
	f := Filter{
		Predicate: func(error) bool { return true },
		Kinds:     []Kind{kindTransient},
	}

	require.True(t, f.CanRetry(MarkKind(errors.New("boom"), kindTransient)))
	require.False(t, f.CanRetry(errors.New("untagged")))
}

func TestFilter_PredicateAllowsAndNoKinds(t *testing.T) {
	f := Filter{Predicate: func(error) bool { return true }}
	require.True(t, f.CanRetry(errors.New("anything")))
}
