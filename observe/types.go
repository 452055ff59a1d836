package observe

import "time"

// AttemptRecord describes a single invocation of the wrapped operation.
type AttemptRecord struct {
	// Attempt is the zero-based attempt index.
	Attempt int

	Start time.Time
	End   time.Time

	// Backoff is the actual (jittered) wait that preceded this attempt.
	// It is zero for the initial attempt.
	Backoff time.Duration

	Err error
}

// Timeline is the structured record of one execution and all of its
// attempts.
type Timeline struct {
	// ID uniquely identifies the execution.
	ID string

	Start time.Time
	End   time.Time

	Attempts []AttemptRecord
	FinalErr error
}
