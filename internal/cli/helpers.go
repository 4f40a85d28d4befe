package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/aretw0/fsa/internal/logging"
	"github.com/aretw0/fsa/internal/presentation/tui"
	"github.com/aretw0/fsa/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger. Logs always go to Stderr
// so that Stdout only carries command output.
func createLogger(debug bool, level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug)
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "off", "none":
		return logging.NewNop()
	}
	return logging.NewWithWriter(w, logging.ParseLevel(level))
}

func createDebugHooks(logger *slog.Logger) domain.DecisionHooks {
	return domain.DecisionHooks{
		OnDecisionStart: func(ctx context.Context, e *domain.DecisionEvent) {
			logger.Debug("Decision Start", "decision_id", e.DecisionID, "input_length", e.InputLength)
		},
		OnDecisionEnd: func(ctx context.Context, e *domain.DecisionEvent) {
			if e.Err != nil {
				logger.Debug("Decision End (Error)", "decision_id", e.DecisionID, "err", e.Err)
				return
			}
			logger.Debug("Decision End",
				"decision_id", e.DecisionID,
				"accepted", e.Accepted,
				"steps", e.Steps,
				"cached", e.Cached,
				"duration", e.Duration,
			)
		},
	}
}

// useColor reports whether output to w may be coloured.
func useColor(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}

// ReadInput reads all of r as the input string. Unless raw is set, a single
// trailing "\n" or "\r\n" is stripped.
func ReadInput(r io.Reader, raw bool) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", exitErrorf(ExitReadFailed, "failed to read input: %w", err)
	}
	input := string(data)
	if raw {
		return input, nil
	}
	if strings.HasSuffix(input, "\r\n") {
		return input[:len(input)-2], nil
	}
	return strings.TrimSuffix(input, "\n"), nil
}
