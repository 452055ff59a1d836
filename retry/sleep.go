package retry

import (
	"context"
	"time"
)

// sleepWithSignal waits for d, returning early when ctx is cancelled or
// signal is closed. It subscribes to both and races them against a
// timer rather than polling. An already-signaled source wins the race
// immediately; a nil signal channel simply never fires.
func sleepWithSignal(ctx context.Context, signal <-chan struct{}, d time.Duration) error {
	if d <= 0 {
		if aborted(ctx, signal) {
			return ErrAborted
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C: // drain a fired timer so the channel doesn't retain the tick
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return ErrAborted
	}
}
