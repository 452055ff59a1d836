package retry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbortError_FixedMessage(t *testing.T) {
	require.EqualError(t, ErrAborted, "redrive: aborted")
	require.EqualError(t, &AbortError{}, "redrive: aborted")
}

func TestAbortError_IsMatchesAnyInstance(t *testing.T) {
	require.ErrorIs(t, &AbortError{}, ErrAborted)
	require.ErrorIs(t, fmt.Errorf("wrapped: %w", &AbortError{}), ErrAborted)

	var abortErr *AbortError
	require.True(t, errors.As(ErrAborted, &abortErr))
}

func TestMaxAttemptsError_MessageAndUnwrap(t *testing.T) {
	orig := errors.New("rejected")
	err := &MaxAttemptsError{Original: orig, RetryCount: 2}

	require.EqualError(t, err, "redrive: giving up after 2 retries: rejected")
	require.Same(t, orig, err.Unwrap())
	require.ErrorIs(t, err, orig)
}

func TestMaxAttemptsError_AsThroughWrapping(t *testing.T) {
	inner := &MaxAttemptsError{Original: errors.New("boom"), RetryCount: 1}
	wrapped := fmt.Errorf("call failed: %w", inner)

	var maxErr *MaxAttemptsError
	require.True(t, errors.As(wrapped, &maxErr))
	require.Equal(t, 1, maxErr.RetryCount)
}
