package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSleepWithSignal_Completes(t *testing.T) {
	start := time.Now()
	err := sleepWithSignal(context.Background(), nil, 10*time.Millisecond)
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSleepWithSignal_ZeroAndNegative(t *testing.T) {
	require.NoError(t, sleepWithSignal(context.Background(), nil, 0))
	require.NoError(t, sleepWithSignal(context.Background(), nil, -time.Second))
}

func TestSleepWithSignal_ZeroDurationHonorsClosedSignal(t *testing.T) {
	stop := make(chan struct{})
	close(stop)
	require.ErrorIs(t, sleepWithSignal(context.Background(), stop, 0), ErrAborted)
}

func TestSleepWithSignal_ContextCancelMidSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := sleepWithSignal(ctx, nil, 10*time.Second)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestSleepWithSignal_SignalCloseMidSleep(t *testing.T) {
	stop := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(stop)
	}()

	start := time.Now()
	err := sleepWithSignal(context.Background(), stop, 10*time.Second)
	require.ErrorIs(t, err, ErrAborted)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestSleepWithSignal_AlreadyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleepWithSignal(ctx, nil, 10*time.Second)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}
