// Package backoff provides the nominal delay schedules used between
// retry attempts. Schedules are stateless and safe for concurrent use.
package backoff

import (
	"math"
	"time"

	"github.com/aponysus/redrive/policy"
)

// Schedule computes the nominal delay before a retry.
type Schedule interface {
	// Delay returns the wait before retry retryIndex. Index 0 is the
	// delay before the first retry.
	Delay(retryIndex int) time.Duration
}

// Fixed waits the same interval before every retry.
type Fixed struct {
	Interval time.Duration
}

// Delay returns the fixed interval, never negative.
func (f Fixed) Delay(int) time.Duration {
	if f.Interval < 0 {
		return 0
	}
	return f.Interval
}

// Exponential grows the delay by Multiplier for each retry, capped at
// Max.
type Exponential struct {
	Base       time.Duration
	Multiplier float64
	Max        time.Duration
}

// Delay returns min(Base * Multiplier^retryIndex, Max).
func (e Exponential) Delay(retryIndex int) time.Duration {
	if e.Base <= 0 {
		return 0
	}
	d := time.Duration(float64(e.Base) * math.Pow(e.Multiplier, float64(retryIndex)))
	if d < 0 {
		// float conversion overflowed; the cap is the best answer left
		d = e.Max
	}
	if e.Max > 0 && d > e.Max {
		return e.Max
	}
	if d < 0 {
		return 0
	}
	return d
}

// ForPolicy maps a retry policy onto its schedule.
func ForPolicy(p policy.Policy) Schedule {
	if p.Backoff == policy.BackoffExponential {
		return Exponential{
			Base:       p.BaseDelay,
			Multiplier: p.Exponential.Multiplier,
			Max:        p.Exponential.MaxInterval,
		}
	}
	return Fixed{Interval: p.BaseDelay}
}
