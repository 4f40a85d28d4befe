package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fsa/internal/logging"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/google/uuid"
)

// cancelCheckInterval is how many search steps run between context polls.
const cancelCheckInterval = 1024

// Engine decides acceptance of input strings against a transition table.
// The table is only read, so one Engine may serve concurrent callers.
type Engine struct {
	table          *domain.Table
	memoize        bool
	maxInputLength int
	logger         *slog.Logger
	hooks          domain.DecisionHooks
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithMemoization enables the optimized search: failed (state set, offset)
// pairs are remembered and prefixes longer than the longest symbol are skipped.
// Results are identical to the reference search.
func WithMemoization(enabled bool) EngineOption {
	return func(e *Engine) {
		e.memoize = enabled
	}
}

// WithMaxInputLength rejects inputs longer than n bytes. Zero disables the limit.
func WithMaxInputLength(n int) EngineOption {
	return func(e *Engine) {
		e.maxInputLength = n
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.DecisionHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine over the given table.
func NewEngine(table *domain.Table, opts ...EngineOption) *Engine {
	e := &Engine{
		table:  table,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Memoized reports whether the optimized search is enabled.
func (e *Engine) Memoized() bool {
	return e.memoize
}

// Decide reports whether some segmentation of input into consecutive non-empty
// symbols drives the automaton from initial into an accepting state.
func (e *Engine) Decide(ctx context.Context, initial domain.StateSet, input string) (bool, error) {
	d, err := e.Evaluate(ctx, initial, input)
	if err != nil {
		return false, err
	}
	return d.Accepted, nil
}

// Evaluate runs the search and reports the decision with its statistics.
func (e *Engine) Evaluate(ctx context.Context, initial domain.StateSet, input string) (*domain.Decision, error) {
	if e.table == nil || initial == nil {
		return nil, domain.ErrInvalidInput
	}
	if e.maxInputLength > 0 && len(input) > e.maxInputLength {
		return nil, fmt.Errorf("%w: length=%d limit=%d", domain.ErrInputTooLong, len(input), e.maxInputLength)
	}

	id := uuid.NewString()
	start := time.Now()
	e.hooks.Start(ctx, &domain.DecisionEvent{
		EventBase:   domain.EventBase{Timestamp: start, Type: domain.EventDecisionStart},
		DecisionID:  id,
		InputLength: len(input),
		Memoized:    e.memoize,
	})

	s := &search{ctx: ctx, table: e.table}
	if e.memoize {
		s.failed = make(map[memoKey]struct{})
		s.maxSymbolLen = e.table.MaxSymbolLen()
	}

	accepted, err := s.decide(initial, input, 0)
	elapsed := time.Since(start)

	e.hooks.End(ctx, &domain.DecisionEvent{
		EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventDecisionEnd},
		DecisionID:  id,
		InputLength: len(input),
		Accepted:    accepted,
		Steps:       s.steps,
		Memoized:    e.memoize,
		Duration:    elapsed,
		Err:         err,
	})

	if err != nil {
		e.logger.Debug("decision aborted", "decision_id", id, "steps", s.steps, "err", err)
		return nil, err
	}

	e.logger.Debug("decision complete",
		"decision_id", id,
		"initial", initial.String(),
		"input_length", len(input),
		"accepted", accepted,
		"steps", s.steps,
		"memoized", e.memoize,
		"duration", elapsed,
	)

	return &domain.Decision{
		ID:       id,
		Input:    input,
		Accepted: accepted,
		Steps:    s.steps,
		Memoized: e.memoize,
		Duration: elapsed,
	}, nil
}

type memoKey struct {
	states string
	offset int
}

// search holds the per-call state of one decision.
type search struct {
	ctx          context.Context
	table        *domain.Table
	steps        int
	failed       map[memoKey]struct{}
	maxSymbolLen int
}

// step applies one ReachableStates lookup. The context is polled on the first
// step and every cancelCheckInterval steps after it.
func (s *search) step(states domain.StateSet, symbol string) (domain.StateSet, error) {
	s.steps++
	if s.steps%cancelCheckInterval == 1 {
		if err := s.ctx.Err(); err != nil {
			return nil, err
		}
	}
	return s.table.ReachableStates(states, symbol), nil
}

// decide tests the suffix w, which starts at byte offset in the original input.
// Proper prefixes are tried shortest first, the whole suffix last.
func (s *search) decide(states domain.StateSet, w string, offset int) (bool, error) {
	var key memoKey
	if s.failed != nil {
		key = memoKey{states: states.Key(), offset: offset}
		if _, ok := s.failed[key]; ok {
			return false, nil
		}
	}

	limit := len(w) - 1
	if s.failed != nil && s.maxSymbolLen < limit {
		limit = s.maxSymbolLen
	}

	for i := 1; i <= limit; i++ {
		next, err := s.step(states, w[:i])
		if err != nil {
			return false, err
		}
		if next.IsEmpty() {
			continue
		}
		ok, err := s.decide(next, w[i:], offset+i)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	final, err := s.step(states, w)
	if err != nil {
		return false, err
	}
	accepted := s.table.IsAccepting(final)

	if !accepted && s.failed != nil {
		s.failed[key] = struct{}{}
	}
	return accepted, nil
}
