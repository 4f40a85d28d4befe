package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/fsa/internal/presentation/tui"
)

// Execute handles the 'run' command: it reads the whole of stdin as one input
// string and prints the verdict.
func Execute(ctx context.Context, opts RunOptions) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	input, err := ReadInput(opts.stdin(), opts.Raw)
	if err != nil {
		return err
	}

	accepted, err := s.interp.Decide(ctx, input)
	if err != nil {
		return fmt.Errorf("decision failed: %w", err)
	}

	out := opts.stdout()
	_, err = fmt.Fprintln(out, tui.Verdict(accepted, useColor(out, opts.NoColor)))
	return err
}
