// Package policy defines the declarative, immutable retry policy
// consumed by the retry engine.
//
// A Policy is built once per call site with New and reused across every
// execution of that call site. Construction derives all defaults up
// front and never mutates caller-supplied values; the engine treats the
// resulting Policy as read-only, so concurrent executions may share it
// freely.
package policy

import (
	"time"

	"github.com/aponysus/redrive/classify"
	"github.com/aponysus/redrive/jitter"
)

// BackoffKind selects how the nominal delay between retries grows.
type BackoffKind string

const (
	// BackoffFixed waits BaseDelay before every retry.
	BackoffFixed BackoffKind = "fixed"
	// BackoffExponential grows the delay by Multiplier per retry, capped
	// at MaxInterval.
	BackoffExponential BackoffKind = "exponential"
)

// ExponentialOptions tune the exponential backoff schedule.
type ExponentialOptions struct {
	MaxInterval time.Duration
	Multiplier  float64
}

// Defaults applied at construction time.
const (
	// DefaultExponentialBase is the base delay when exponential backoff
	// is selected without an explicit base.
	DefaultExponentialBase = 1000 * time.Millisecond
	DefaultMaxInterval     = 2000 * time.Millisecond
	DefaultMultiplier      = 2.0
)

// Policy is an immutable retry configuration.
type Policy struct {
	// MaxAttempts is the number of retries after the initial attempt;
	// the total invocation budget is MaxAttempts+1.
	MaxAttempts int

	Backoff     BackoffKind
	BaseDelay   time.Duration
	Exponential ExponentialOptions

	UseJitter bool
	Jitter    jitter.Kind

	// RetryOn, when non-empty, restricts retrying to errors carrying one
	// of these kinds.
	RetryOn []classify.Kind

	// RetryIf, when set, vetoes retrying whenever it returns false. It
	// is consulted before RetryOn.
	RetryIf func(error) bool

	// Reraise propagates the final original error unwrapped once the
	// budget is exhausted, instead of wrapping it in a MaxAttemptsError.
	Reraise bool

	// Signal, when non-nil, aborts executions as soon as it is closed.
	// One channel may be observed by many concurrent executions.
	Signal <-chan struct{}
}

// New validates the configuration and builds an immutable Policy.
// maxAttempts counts retries after the initial attempt and may be zero,
// meaning exactly one attempt; a negative value is the only
// configuration error.
//
// Defaults derived here: backoff is fixed unless selected otherwise;
// exponential backoff with no explicit base delay uses
// DefaultExponentialBase, and its options are merged over
// {DefaultMaxInterval, DefaultMultiplier}; jitter enabled without a
// kind uses jitter.Full.
func New(maxAttempts int, opts ...Option) (Policy, error) {
	if maxAttempts < 0 {
		return Policy{}, &ConfigError{Field: "maxAttempts", Reason: "must not be negative"}
	}

	cfg := config{p: Policy{MaxAttempts: maxAttempts}}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := cfg.p
	if p.Backoff == "" {
		p.Backoff = BackoffFixed
	}
	if p.Backoff == BackoffExponential {
		if !cfg.baseDelaySet {
			p.BaseDelay = DefaultExponentialBase
		}
		if p.Exponential.MaxInterval <= 0 {
			p.Exponential.MaxInterval = DefaultMaxInterval
		}
		if p.Exponential.Multiplier <= 0 {
			p.Exponential.Multiplier = DefaultMultiplier
		}
	}
	if p.BaseDelay < 0 {
		p.BaseDelay = 0
	}
	if p.UseJitter && p.Jitter == "" {
		p.Jitter = jitter.Full
	}
	return p, nil
}

// MustNew is New for statically known configurations; it panics on a
// configuration error.
func MustNew(maxAttempts int, opts ...Option) Policy {
	p, err := New(maxAttempts, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Filter returns the error classifier derived from the policy.
func (p Policy) Filter() classify.Filter {
	return classify.Filter{Predicate: p.RetryIf, Kinds: p.RetryOn}
}
