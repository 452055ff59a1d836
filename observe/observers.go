// Package observe exposes lifecycle hooks and attempt timelines for
// retry executions.
package observe

import (
	"context"

	"github.com/aponysus/redrive/policy"
)

// Observer receives lifecycle callbacks for a single execution.
type Observer interface {
	OnStart(ctx context.Context, id string, pol policy.Policy)
	OnAttempt(ctx context.Context, id string, rec AttemptRecord)
	OnSuccess(ctx context.Context, id string, tl Timeline)
	OnFailure(ctx context.Context, id string, tl Timeline)
}

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they
// need.
type BaseObserver struct{}

func (BaseObserver) OnStart(context.Context, string, policy.Policy)   {}
func (BaseObserver) OnAttempt(context.Context, string, AttemptRecord) {}
func (BaseObserver) OnSuccess(context.Context, string, Timeline)      {}
func (BaseObserver) OnFailure(context.Context, string, Timeline)      {}

// NoopObserver implements Observer with no-op methods. The engine
// recognizes it and skips timeline bookkeeping entirely.
type NoopObserver struct{}

func (NoopObserver) OnStart(context.Context, string, policy.Policy)   {}
func (NoopObserver) OnAttempt(context.Context, string, AttemptRecord) {}
func (NoopObserver) OnSuccess(context.Context, string, Timeline)      {}
func (NoopObserver) OnFailure(context.Context, string, Timeline)      {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnStart(ctx context.Context, id string, pol policy.Policy) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnStart(ctx, id, pol)
		}
	}
}

func (m MultiObserver) OnAttempt(ctx context.Context, id string, rec AttemptRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnAttempt(ctx, id, rec)
		}
	}
}

func (m MultiObserver) OnSuccess(ctx context.Context, id string, tl Timeline) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnSuccess(ctx, id, tl)
		}
	}
}

func (m MultiObserver) OnFailure(ctx context.Context, id string, tl Timeline) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnFailure(ctx, id, tl)
		}
	}
}
