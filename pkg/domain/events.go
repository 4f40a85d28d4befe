package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDecisionStart EventType = "decision_start"
	EventDecisionEnd   EventType = "decision_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// DecisionEvent describes the start or the end of one acceptance decision.
// Result fields are only meaningful on EventDecisionEnd.
type DecisionEvent struct {
	EventBase
	DecisionID  string        `json:"decision_id"`
	InputLength int           `json:"input_length"`
	Accepted    bool          `json:"accepted"`
	Steps       int           `json:"steps"`
	Memoized    bool          `json:"memoized,omitempty"`
	Cached      bool          `json:"cached,omitempty"`
	Duration    time.Duration `json:"duration"`
	Err         error         `json:"-"`
}

// DecisionHooks defines callbacks for decision observability.
// Nil callbacks are skipped.
type DecisionHooks struct {
	OnDecisionStart func(context.Context, *DecisionEvent)
	OnDecisionEnd   func(context.Context, *DecisionEvent)
}

// Start fires OnDecisionStart if set.
func (h DecisionHooks) Start(ctx context.Context, e *DecisionEvent) {
	if h.OnDecisionStart != nil {
		h.OnDecisionStart(ctx, e)
	}
}

// End fires OnDecisionEnd if set.
func (h DecisionHooks) End(ctx context.Context, e *DecisionEvent) {
	if h.OnDecisionEnd != nil {
		h.OnDecisionEnd(ctx, e)
	}
}

// Chain combines several hook sets; each callback runs in order.
func Chain(hooks ...DecisionHooks) DecisionHooks {
	return DecisionHooks{
		OnDecisionStart: func(ctx context.Context, e *DecisionEvent) {
			for _, h := range hooks {
				h.Start(ctx, e)
			}
		},
		OnDecisionEnd: func(ctx context.Context, e *DecisionEvent) {
			for _, h := range hooks {
				h.End(ctx, e)
			}
		},
	}
}
