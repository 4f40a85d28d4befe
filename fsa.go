package fsa

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	goruntime "runtime"
	"time"

	"github.com/aretw0/fsa/internal/logging"
	"github.com/aretw0/fsa/internal/runtime"
	"github.com/aretw0/fsa/pkg/adapters/document"
	"github.com/aretw0/fsa/pkg/adapters/file"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/aretw0/fsa/pkg/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Interpreter is the high-level entry point of the fsa library.
// It owns the merged transition table and the initial states of every
// loaded source, and wraps the acceptance engine.
type Interpreter struct {
	engine      *runtime.Engine
	table       *domain.Table
	initial     domain.StateSet
	sources     []*domain.Source
	loaders     []ports.SourceLoader
	cache       ports.DecisionCache
	hooks       domain.DecisionHooks
	logger      *slog.Logger
	memoize     bool
	maxInput    int
	concurrency int
	fingerprint string
	digest      string
}

// Option defines a functional option for configuring the Interpreter.
type Option func(*Interpreter)

// WithLoaders injects custom source loaders, bypassing path-based loading.
func WithLoaders(loaders ...ports.SourceLoader) Option {
	return func(i *Interpreter) {
		i.loaders = append(i.loaders, loaders...)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.DecisionHooks) Option {
	return func(i *Interpreter) {
		i.hooks = hooks
	}
}

// WithMemoization enables the optimized search mode.
func WithMemoization(enabled bool) Option {
	return func(i *Interpreter) {
		i.memoize = enabled
	}
}

// WithMaxInputLength rejects inputs longer than n bytes. Zero disables the limit.
func WithMaxInputLength(n int) Option {
	return func(i *Interpreter) {
		i.maxInput = n
	}
}

// WithCache sets a decision cache.
func WithCache(cache ports.DecisionCache) Option {
	return func(i *Interpreter) {
		i.cache = cache
	}
}

// WithConcurrency bounds the number of parallel decisions in DecideAll.
func WithConcurrency(n int) Option {
	return func(i *Interpreter) {
		i.concurrency = n
	}
}

// LoaderFor picks the source loader for a path by its extension:
// YAML/JSON documents or the line-based text format.
func LoaderFor(path string, logger *slog.Logger) ports.SourceLoader {
	if document.Supports(path) {
		return document.New(path)
	}
	return file.New(path, file.WithLogger(logger))
}

// New loads every source and builds an Interpreter over their union.
// Paths are ignored for loading when WithLoaders is given, in which case they may be nil.
func New(paths []string, opts ...Option) (*Interpreter, error) {
	interp := &Interpreter{}

	for _, opt := range opts {
		opt(interp)
	}

	if interp.logger == nil {
		interp.logger = logging.NewNop()
	}
	if interp.concurrency <= 0 {
		interp.concurrency = goruntime.NumCPU()
	}

	if len(interp.loaders) == 0 {
		for _, p := range paths {
			interp.loaders = append(interp.loaders, LoaderFor(p, interp.logger))
		}
	}
	if len(interp.loaders) == 0 {
		return nil, domain.ErrNoSources
	}

	interp.table = domain.NewTable()
	interp.initial = domain.NewStateSet()
	for _, l := range interp.loaders {
		src, err := l.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.Name(), err)
		}
		interp.initial.Add(interp.table.AddSource(src))
		interp.sources = append(interp.sources, src)
		interp.logger.Debug("source loaded", "source", l.Name(), "initial", src.Initial, "records", len(src.Records))
	}
	interp.fingerprint = interp.table.Fingerprint(interp.initial)
	interp.digest = interp.table.Digest(interp.initial)

	interp.logger.Info("automaton ready",
		"sources", len(interp.sources),
		"initial", interp.initial.String(),
		"transitions", interp.table.Len(),
		"accepting", len(interp.table.AcceptingStates()),
		"fingerprint", interp.fingerprint,
	)

	interp.engine = runtime.NewEngine(
		interp.table,
		runtime.WithMemoization(interp.memoize),
		runtime.WithMaxInputLength(interp.maxInput),
		runtime.WithLogger(interp.logger),
		runtime.WithHooks(interp.hooks),
	)

	return interp, nil
}

// Decide reports whether any loaded automaton accepts the input.
func (i *Interpreter) Decide(ctx context.Context, input string) (bool, error) {
	d, err := i.Evaluate(ctx, input)
	if err != nil {
		return false, err
	}
	return d.Accepted, nil
}

// Evaluate decides the input and returns the full decision.
// When a cache is configured it is consulted first; cache failures are
// logged and never change the outcome.
func (i *Interpreter) Evaluate(ctx context.Context, input string) (*domain.Decision, error) {
	if i.cache == nil {
		return i.engine.Evaluate(ctx, i.initial, input)
	}

	key := i.CacheKey(input)
	start := time.Now()
	accepted, found, err := i.cache.Get(ctx, key)
	if err != nil {
		i.logger.Warn("decision cache read failed", "err", err)
	}
	if err == nil && found {
		d := &domain.Decision{
			ID:       uuid.NewString(),
			Input:    input,
			Accepted: accepted,
			Cached:   true,
			Duration: time.Since(start),
		}
		i.hooks.End(ctx, &domain.DecisionEvent{
			EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventDecisionEnd},
			DecisionID:  d.ID,
			InputLength: len(input),
			Accepted:    d.Accepted,
			Cached:      true,
			Duration:    d.Duration,
		})
		return d, nil
	}

	d, err := i.engine.Evaluate(ctx, i.initial, input)
	if err != nil {
		return nil, err
	}
	if err := i.cache.Set(ctx, key, d.Accepted); err != nil {
		i.logger.Warn("decision cache write failed", "err", err)
	}
	return d, nil
}

// DecideAll evaluates many inputs in parallel against the shared table.
// Results keep the order of inputs. The first error cancels the batch.
func (i *Interpreter) DecideAll(ctx context.Context, inputs []string) ([]domain.Decision, error) {
	results := make([]domain.Decision, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)
	for idx, input := range inputs {
		g.Go(func() error {
			d, err := i.Evaluate(gctx, input)
			if err != nil {
				return fmt.Errorf("input %d: %w", idx, err)
			}
			results[idx] = *d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CacheKey returns the decision cache key for input: the SHA-256 digest of the
// automaton and the SHA-256 of the input, hex encoded.
func (i *Interpreter) CacheKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return i.digest + ":" + hex.EncodeToString(sum[:])
}

// Table returns the merged transition table. It must not be modified.
func (i *Interpreter) Table() *domain.Table {
	return i.table
}

// InitialStates returns a copy of the initial states, one per source.
func (i *Interpreter) InitialStates() domain.StateSet {
	return i.initial.Union(nil)
}

// Sources returns the loaded sources in load order.
func (i *Interpreter) Sources() []*domain.Source {
	return i.sources
}

// Fingerprint identifies the loaded automaton.
func (i *Interpreter) Fingerprint() string {
	return i.fingerprint
}

// Memoized reports whether the optimized search mode is enabled.
func (i *Interpreter) Memoized() bool {
	return i.memoize
}
