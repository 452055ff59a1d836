package retry

import (
	"context"
	"sync"
	"time"
)

// sleepSpy records requested waits and returns instantly, so timing
// tests never sleep for real.
type sleepSpy struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (s *sleepSpy) sleep(_ context.Context, _ <-chan struct{}, d time.Duration) error {
	s.mu.Lock()
	s.waits = append(s.waits, d)
	s.mu.Unlock()
	return nil
}

func (s *sleepSpy) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.waits))
	copy(out, s.waits)
	return out
}

func newSpyExecutor(spy *sleepSpy, opts ...ExecutorOption) *Executor {
	return NewExecutor(append([]ExecutorOption{WithSleep(spy.sleep)}, opts...)...)
}

func fixedRand(v float64) func() float64 {
	return func() float64 { return v }
}
