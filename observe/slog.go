package observe

import (
	"context"
	"log/slog"

	"github.com/aponysus/redrive/policy"
)

// LogObserver emits structured slog records for execution lifecycle
// events. Per-attempt records go out at debug level, terminal outcomes
// at info (success) and warn (failure).
type LogObserver struct {
	Logger *slog.Logger
}

func (o *LogObserver) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o *LogObserver) OnStart(ctx context.Context, id string, pol policy.Policy) {
	o.logger().DebugContext(ctx, "retry execution started",
		"execution_id", id,
		"max_attempts", pol.MaxAttempts,
		"backoff", string(pol.Backoff),
	)
}

func (o *LogObserver) OnAttempt(ctx context.Context, id string, rec AttemptRecord) {
	o.logger().DebugContext(ctx, "attempt finished",
		"execution_id", id,
		"attempt", rec.Attempt,
		"backoff", rec.Backoff,
		"duration", rec.End.Sub(rec.Start),
		"err", rec.Err,
	)
}

func (o *LogObserver) OnSuccess(ctx context.Context, id string, tl Timeline) {
	o.logger().InfoContext(ctx, "retry execution succeeded",
		"execution_id", id,
		"attempts", len(tl.Attempts),
		"duration", tl.End.Sub(tl.Start),
	)
}

func (o *LogObserver) OnFailure(ctx context.Context, id string, tl Timeline) {
	o.logger().WarnContext(ctx, "retry execution failed",
		"execution_id", id,
		"attempts", len(tl.Attempts),
		"duration", tl.End.Sub(tl.Start),
		"err", tl.FinalErr,
	)
}
