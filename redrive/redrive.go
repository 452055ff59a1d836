// Package redrive wraps fallible operations in declarative retry
// policies, using the shared default executor.
package redrive

import (
	"context"

	"github.com/aponysus/redrive/policy"
	"github.com/aponysus/redrive/retry"
)

// Policy is the declarative retry configuration.
type Policy = policy.Policy

// Option configures a Policy under construction.
type Option = policy.Option

// NewPolicy builds an immutable retry policy. maxAttempts counts
// retries after the initial attempt.
func NewPolicy(maxAttempts int, opts ...Option) (Policy, error) {
	return policy.New(maxAttempts, opts...)
}

// MustPolicy is NewPolicy for statically known configurations; it
// panics on a configuration error.
func MustPolicy(maxAttempts int, opts ...Option) Policy {
	return policy.MustNew(maxAttempts, opts...)
}

// Init sets the global default executor.
// It must be called before Do/DoValue are used.
func Init(exec *retry.Executor) {
	retry.SetGlobal(exec)
}

// Do executes op under pol using the default executor.
func Do(ctx context.Context, pol Policy, op retry.Operation) error {
	return retry.DefaultExecutor().Do(ctx, pol, op)
}

// DoValue executes op under pol using the default executor.
func DoValue[T any](ctx context.Context, pol Policy, op retry.OperationValue[T]) (T, error) {
	return retry.DoValue(ctx, retry.DefaultExecutor(), pol, op)
}

// Func wraps op so that every invocation of the returned function runs
// through the retry engine under pol. Method semantics are preserved by
// closing over the receiver when building op.
func Func[T any](pol Policy, op retry.OperationValue[T]) retry.OperationValue[T] {
	return func(ctx context.Context) (T, error) {
		return DoValue(ctx, pol, op)
	}
}
