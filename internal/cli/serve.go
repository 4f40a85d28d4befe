package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/fsa/internal/presentation/tui"
	fsahttp "github.com/aretw0/fsa/pkg/adapters/http"
	"github.com/aretw0/fsa/pkg/adapters/mcp"
	"github.com/aretw0/fsa/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// shutdownTimeout gives outstanding requests a deadline for completion.
const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP adapter until ctx is cancelled.
func Serve(ctx context.Context, opts RunOptions) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	s, err := newSession(opts, metrics.Hooks())
	if err != nil {
		return err
	}
	defer s.close()

	handler := fsahttp.NewHandler(s.interp, fsahttp.WithLogger(s.logger), fsahttp.WithMetrics(reg))
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	if !opts.NoColor {
		tui.PrintBanner(opts.stderr(), "decision server")
	}
	fmt.Fprintf(opts.stderr(), "Listening on %s (%d sources, fingerprint %s)\n",
		srv.Addr, len(s.interp.Sources()), s.interp.Fingerprint())

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			_ = srv.Close()
			return err
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		fmt.Fprintln(opts.stderr(), "Server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP adapter over stdio or SSE.
func ServeMCP(ctx context.Context, opts RunOptions, transport string) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	srv := mcp.NewServer(s.interp, mcp.WithLogger(s.logger))

	switch transport {
	case "stdio":
		s.logger.Info("Starting fsa MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		return srv.ServeSSE(ctx, s.cfg.Server.Addr)
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
	}
}
