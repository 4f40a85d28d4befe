package cli

import (
	"fmt"

	"github.com/aretw0/fsa/internal/presentation/graph"
	"github.com/aretw0/fsa/internal/presentation/tui"
	"github.com/aretw0/fsa/internal/validator"
)

// Validate reports reachability problems. Warnings are printed; it fails only
// when no accepting state can ever be reached.
func Validate(opts RunOptions) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	out := opts.stdout()
	table, initial := s.interp.Table(), s.interp.InitialStates()

	report := validator.Analyze(table, initial)
	for _, w := range report.Warnings() {
		fmt.Fprintf(out, "warning: %s\n", w)
	}

	if err := validator.Validate(table, initial); err != nil {
		return err
	}

	fmt.Fprintf(out, "Automaton is valid! ✅ (%d states, %d transitions, %d reachable)\n",
		len(table.States()), table.Len(), len(report.Reachable))
	return nil
}

// Graph prints a Mermaid flowchart, highlighting the given states.
func Graph(opts RunOptions, highlight []string) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	var overlay *graph.GraphOverlay
	if len(highlight) > 0 {
		overlay = &graph.GraphOverlay{Active: highlight}
	}

	_, err = fmt.Fprint(opts.stdout(), graph.GenerateMermaid(s.interp.Table(), s.interp.InitialStates(), overlay))
	return err
}

// Inspect prints the transition table as markdown, rendered when stdout is a terminal.
func Inspect(opts RunOptions) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	md := tui.TransitionsMarkdown(s.interp.Table(), s.interp.InitialStates())
	md += fmt.Sprintf("\nFingerprint: `%s`\n", s.interp.Fingerprint())

	out := opts.stdout()
	if useColor(out, opts.NoColor) {
		rendered, err := tui.NewRenderer()(md)
		if err == nil {
			md = rendered
		} else {
			s.logger.Warn("markdown rendering failed", "err", err)
		}
	}

	_, err = fmt.Fprint(out, md)
	return err
}
