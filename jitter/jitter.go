// Package jitter randomizes backoff delays to avoid synchronized retry
// storms.
package jitter

import (
	"math/rand/v2"
	"time"
)

// Kind names a jitter strategy.
type Kind string

const (
	None         Kind = "none"
	Full         Kind = "full"
	Equal        Kind = "equal"
	Decorrelated Kind = "decorrelated"
)

// Strategy turns a nominal delay into the actual wait. Strategies may
// carry per-execution state (Decorrelated does) and are not safe for
// concurrent use; build one Strategy per execution.
type Strategy interface {
	Next(nominal time.Duration) time.Duration
}

// New builds the strategy for kind. base and maxInterval bound the
// decorrelated strategy and are ignored by the others. rnd must return
// uniform values in [0, 1); nil selects math/rand/v2. Unrecognized
// kinds fall back to None.
func New(kind Kind, base, maxInterval time.Duration, rnd func() float64) Strategy {
	if rnd == nil {
		rnd = rand.Float64
	}
	switch kind {
	case Full:
		return full{rnd: rnd}
	case Equal:
		return equal{rnd: rnd}
	case Decorrelated:
		return &decorrelated{base: base, max: maxInterval, prev: base, rnd: rnd}
	default:
		return none{}
	}
}

type none struct{}

func (none) Next(nominal time.Duration) time.Duration { return nominal }

// full draws uniformly from [0, nominal).
type full struct {
	rnd func() float64
}

func (f full) Next(nominal time.Duration) time.Duration {
	if nominal <= 0 {
		return 0
	}
	return time.Duration(f.rnd() * float64(nominal))
}

// equal keeps half the nominal delay and randomizes the other half:
// nominal/2 + uniform [0, nominal/2).
type equal struct {
	rnd func() float64
}

func (e equal) Next(nominal time.Duration) time.Duration {
	if nominal <= 0 {
		return 0
	}
	half := float64(nominal) / 2
	return time.Duration(half + e.rnd()*half)
}

// decorrelated draws uniformly from [base, prev*3), where prev is the
// previous actual delay, seeded at base. Once seeded it no longer
// depends on the nominal schedule. Results are capped at max, and the
// capped value becomes the next prev.
type decorrelated struct {
	base time.Duration
	max  time.Duration
	prev time.Duration
	rnd  func() float64
}

func (d *decorrelated) Next(time.Duration) time.Duration {
	lo := float64(d.base)
	hi := float64(d.prev) * 3
	v := lo
	if hi > lo {
		v = lo + d.rnd()*(hi-lo)
	}
	next := time.Duration(v)
	if d.max > 0 && next > d.max {
		next = d.max
	}
	if next < 0 {
		next = 0
	}
	d.prev = next
	return next
}
