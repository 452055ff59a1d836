// Package retry implements the attempt loop at the core of redrive: it
// invokes an operation under a policy until it succeeds, exhausts its
// attempt budget, is classified as non-retryable, or is cancelled.
package retry

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/aponysus/redrive/backoff"
	"github.com/aponysus/redrive/jitter"
	"github.com/aponysus/redrive/observe"
	"github.com/aponysus/redrive/policy"
)

// Operation is a retryable call returning only an error.
type Operation func(ctx context.Context) error

// OperationValue is a retryable call returning a value.
type OperationValue[T any] func(ctx context.Context) (T, error)

// Executor runs operations under retry policies. It holds no mutable
// state across executions; a single Executor may serve any number of
// concurrent calls. Construct one with NewExecutor.
type Executor struct {
	observer observe.Observer
	clock    func() time.Time
	sleep    func(ctx context.Context, signal <-chan struct{}, d time.Duration) error
	rand     func() float64
}

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	// Observer receives lifecycle events. Defaults to a noop.
	Observer observe.Observer

	// Clock supplies timestamps for attempt records. Defaults to
	// time.Now.
	Clock func() time.Time

	// Sleep waits between attempts, interruptible by ctx or signal.
	// Defaults to a timer raced against both.
	Sleep func(ctx context.Context, signal <-chan struct{}, d time.Duration) error

	// Rand supplies uniform values in [0, 1) for jitter. Defaults to
	// math/rand/v2.
	Rand func() float64
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*ExecutorOptions)

// WithObserver sets the observer.
func WithObserver(o observe.Observer) ExecutorOption {
	return func(opts *ExecutorOptions) {
		opts.Observer = o
	}
}

// WithClock sets the clock function.
func WithClock(f func() time.Time) ExecutorOption {
	return func(opts *ExecutorOptions) {
		opts.Clock = f
	}
}

// WithSleep sets the sleep function.
func WithSleep(f func(context.Context, <-chan struct{}, time.Duration) error) ExecutorOption {
	return func(opts *ExecutorOptions) {
		opts.Sleep = f
	}
}

// WithRand sets the jitter randomness source.
func WithRand(f func() float64) ExecutorOption {
	return func(opts *ExecutorOptions) {
		opts.Rand = f
	}
}

// NewExecutor creates an Executor with default options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	var cfg ExecutorOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewExecutorFromOptions(cfg)
}

// NewExecutorFromOptions creates an Executor from a config struct.
func NewExecutorFromOptions(opts ExecutorOptions) *Executor {
	e := &Executor{
		observer: opts.Observer,
		clock:    opts.Clock,
		sleep:    opts.Sleep,
		rand:     opts.Rand,
	}
	if e.observer == nil {
		e.observer = observe.NoopObserver{}
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.sleep == nil {
		e.sleep = sleepWithSignal
	}
	if e.rand == nil {
		e.rand = rand.Float64
	}
	return e
}

// Do runs op under pol until it succeeds or terminates.
func (e *Executor) Do(ctx context.Context, pol policy.Policy, op Operation) error {
	_, err := DoValue(ctx, e, pol, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue runs op under pol and returns its eventual value.
//
// The terminal outcome is exactly one of: the operation's success
// value; ErrAborted when cancellation is observed before an attempt or
// during a backoff wait; the original error, unwrapped, when
// classification forbids retrying mid-budget; the original error,
// unwrapped, at exhaustion when the policy reraises; or a
// MaxAttemptsError wrapping the final original error.
func DoValue[T any](ctx context.Context, exec *Executor, pol policy.Policy, op OperationValue[T]) (T, error) {
	val, _, err := doValue(ctx, exec, pol, op, false)
	return val, err
}

// DoValueTimeline is DoValue plus the full attempt timeline.
func DoValueTimeline[T any](ctx context.Context, exec *Executor, pol policy.Policy, op OperationValue[T]) (T, observe.Timeline, error) {
	return doValue(ctx, exec, pol, op, true)
}

func doValue[T any](ctx context.Context, exec *Executor, pol policy.Policy, op OperationValue[T], wantTimeline bool) (T, observe.Timeline, error) {
	var zero T

	if ctx == nil {
		ctx = context.Background()
	}
	if exec == nil {
		exec = DefaultExecutor()
	}

	track := wantTimeline || !isNoopObserver(exec.observer)

	var tl observe.Timeline
	if track {
		tl = observe.Timeline{
			ID:       uuid.NewString(),
			Start:    exec.clock(),
			Attempts: make([]observe.AttemptRecord, 0, pol.MaxAttempts+1),
		}
		exec.observer.OnStart(ctx, tl.ID, pol)
	}

	fail := func(err error) (T, observe.Timeline, error) {
		if track {
			tl.End = exec.clock()
			tl.FinalErr = err
			exec.observer.OnFailure(ctx, tl.ID, tl)
		}
		return zero, tl, err
	}

	schedule := backoff.ForPolicy(pol)
	var jit jitter.Strategy
	if pol.UseJitter {
		jit = jitter.New(pol.Jitter, pol.BaseDelay, pol.Exponential.MaxInterval, exec.rand)
	}
	filter := pol.Filter()

	var wait time.Duration
	for i := 0; ; i++ {
		if aborted(ctx, pol.Signal) {
			return fail(ErrAborted)
		}

		start := exec.clock()
		val, err := op(ctx)
		if track {
			rec := observe.AttemptRecord{
				Attempt: i,
				Start:   start,
				End:     exec.clock(),
				Backoff: wait,
				Err:     err,
			}
			tl.Attempts = append(tl.Attempts, rec)
			exec.observer.OnAttempt(ctx, tl.ID, rec)
		}

		if err == nil {
			if track {
				tl.End = exec.clock()
				exec.observer.OnSuccess(ctx, tl.ID, tl)
			}
			return val, tl, nil
		}

		// Exhaustion wins over classification: even a non-retryable
		// error on the final attempt is wrapped or reraised, never
		// propagated raw.
		if i == pol.MaxAttempts {
			if pol.Reraise {
				return fail(err)
			}
			return fail(&MaxAttemptsError{Original: err, RetryCount: i})
		}

		if !filter.CanRetry(err) {
			return fail(err)
		}

		if aborted(ctx, pol.Signal) {
			return fail(ErrAborted)
		}

		wait = schedule.Delay(i)
		if jit != nil {
			wait = jit.Next(wait)
		}
		if sleepErr := exec.sleep(ctx, pol.Signal, wait); sleepErr != nil {
			return fail(ErrAborted)
		}
	}
}

// aborted reports whether either cancellation source is already
// signaled, without blocking.
func aborted(ctx context.Context, signal <-chan struct{}) bool {
	if ctx.Err() != nil {
		return true
	}
	if signal == nil {
		return false
	}
	select {
	case <-signal:
		return true
	default:
		return false
	}
}

func isNoopObserver(obs observe.Observer) bool {
	switch obs.(type) {
	case observe.NoopObserver, *observe.NoopObserver:
		return true
	default:
		return false
	}
}
