package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fsa"
	"github.com/aretw0/fsa/internal/config"
	"github.com/aretw0/fsa/pkg/adapters/redis"
	"github.com/aretw0/fsa/pkg/domain"
)

// pingTimeout bounds the cache health check at startup.
const pingTimeout = 2 * time.Second

// session is everything a command needs once configuration is resolved.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	interp *fsa.Interpreter
	close  func()
}

// loadConfig reads the configuration file and applies command-line overrides.
func loadConfig(opts RunOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, opts.ConfigRequired)
	if err != nil {
		return nil, &ExitError{Code: ExitReadFailed, Err: err}
	}

	if opts.Memoize != nil {
		cfg.Memoize = *opts.Memoize
	}
	if opts.MaxInputLength != nil {
		cfg.MaxInputLength = *opts.MaxInputLength
	}
	if opts.RedisURL != nil {
		cfg.Cache.RedisURL = *opts.RedisURL
	}
	if opts.Addr != nil {
		cfg.Server.Addr = *opts.Addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: ExitReadFailed, Err: err}
	}
	return cfg, nil
}

// newSession resolves configuration and builds the interpreter with standard CLI conventions.
func newSession(opts RunOptions, hooks ...domain.DecisionHooks) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := createLogger(opts.Debug, cfg.LogLevel, opts.stderr())

	sources := opts.Sources
	if len(sources) == 0 {
		sources = cfg.Sources
	}
	if len(sources) == 0 {
		return nil, &ExitError{Code: ExitNoConfiguration, Err: fmt.Errorf("%w: pass at least one configuration file", domain.ErrNoSources)}
	}

	s := &session{cfg: cfg, logger: logger, close: func() {}}

	interpOpts := []fsa.Option{
		fsa.WithLogger(logger),
		fsa.WithMemoization(cfg.Memoize),
		fsa.WithMaxInputLength(cfg.MaxInputLength),
		fsa.WithConcurrency(cfg.Concurrency),
	}

	if opts.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	if len(hooks) > 0 {
		interpOpts = append(interpOpts, fsa.WithHooks(domain.Chain(hooks...)))
	}

	if cfg.Cache.RedisURL != "" {
		cache, err := newRedisCache(cfg, logger)
		if err != nil {
			logger.Warn("decision cache disabled", "err", err)
		} else {
			interpOpts = append(interpOpts, fsa.WithCache(cache))
			s.close = func() { _ = cache.Close() }
		}
	}

	interp, err := fsa.New(sources, interpOpts...)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("error initializing interpreter: %w", err)
	}
	s.interp = interp
	return s, nil
}

func newRedisCache(cfg *config.Config, logger *slog.Logger) (*redis.Cache, error) {
	ttl, err := cfg.CacheTTL()
	if err != nil {
		return nil, err
	}

	cache, err := redis.NewFromURL(cfg.Cache.RedisURL, redis.WithPrefix(cfg.Cache.Prefix), redis.WithTTL(ttl))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, err
	}

	logger.Debug("decision cache enabled", "backend", "redis", "prefix", cfg.Cache.Prefix, "ttl", ttl)
	return cache, nil
}
