package retry

import "fmt"

// ErrAborted is the terminal failure for executions cancelled before an
// attempt or during a backoff wait. Match it with errors.Is.
var ErrAborted error = &AbortError{}

// AbortError reports cooperative cancellation. Its message is fixed.
type AbortError struct{}

func (*AbortError) Error() string { return "redrive: aborted" }

// Is reports true for any AbortError, so distinct instances compare
// equal under errors.Is.
func (*AbortError) Is(target error) bool {
	_, ok := target.(*AbortError)
	return ok
}

// MaxAttemptsError reports an exhausted attempt budget. RetryCount is
// the index of the final attempt and equals the policy's MaxAttempts.
type MaxAttemptsError struct {
	Original   error
	RetryCount int
}

func (e *MaxAttemptsError) Error() string {
	return fmt.Sprintf("redrive: giving up after %d retries: %v", e.RetryCount, e.Original)
}

func (e *MaxAttemptsError) Unwrap() error { return e.Original }
