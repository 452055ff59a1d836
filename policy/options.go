package policy

import (
	"time"

	"github.com/aponysus/redrive/classify"
	"github.com/aponysus/redrive/jitter"
)

type config struct {
	p            Policy
	baseDelaySet bool
}

// Option configures a Policy under construction.
type Option func(*config)

// WithBackoff selects the backoff kind.
func WithBackoff(kind BackoffKind) Option {
	return func(c *config) {
		c.p.Backoff = kind
	}
}

// WithBaseDelay sets the base delay. An explicit zero disables waiting
// even under exponential backoff.
func WithBaseDelay(d time.Duration) Option {
	return func(c *config) {
		c.p.BaseDelay = d
		c.baseDelaySet = true
	}
}

// WithExponential overrides the exponential backoff options. Zero
// fields keep their defaults. It is only meaningful together with
// WithBackoff(BackoffExponential).
func WithExponential(o ExponentialOptions) Option {
	return func(c *config) {
		if o.MaxInterval > 0 {
			c.p.Exponential.MaxInterval = o.MaxInterval
		}
		if o.Multiplier > 0 {
			c.p.Exponential.Multiplier = o.Multiplier
		}
	}
}

// WithJitter enables jitter with the default strategy (jitter.Full).
func WithJitter() Option {
	return func(c *config) {
		c.p.UseJitter = true
	}
}

// WithJitterKind enables jitter with the given strategy.
func WithJitterKind(kind jitter.Kind) Option {
	return func(c *config) {
		c.p.UseJitter = true
		c.p.Jitter = kind
	}
}

// WithRetryOn restricts retrying to errors carrying one of the given
// kinds.
func WithRetryOn(kinds ...classify.Kind) Option {
	return func(c *config) {
		c.p.RetryOn = append(c.p.RetryOn, kinds...)
	}
}

// WithRetryIf installs a predicate that must return true for an error
// to be retried. It takes precedence over WithRetryOn.
func WithRetryIf(pred func(error) bool) Option {
	return func(c *config) {
		c.p.RetryIf = pred
	}
}

// WithReraise propagates the final original error unwrapped at
// exhaustion.
func WithReraise() Option {
	return func(c *config) {
		c.p.Reraise = true
	}
}

// WithSignal attaches a cancellation channel; executions abort as soon
// as it is closed.
func WithSignal(signal <-chan struct{}) Option {
	return func(c *config) {
		c.p.Signal = signal
	}
}
