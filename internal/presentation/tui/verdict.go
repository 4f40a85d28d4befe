package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aretw0/fsa/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Verdict returns "Accepted" or "Not accepted", coloured green or red when color is set.
func Verdict(accepted, color bool) string {
	text := domain.VerdictText(accepted)
	if !color {
		return text
	}

	p := termenv.ColorProfile()
	hex := "#ef4444"
	if accepted {
		hex = "#22c55e"
	}
	return termenv.String(text).Foreground(p.Color(hex)).Bold().String()
}

// TransitionsMarkdown describes the automaton as a markdown document:
// its initial and accepting states followed by a transition table.
func TransitionsMarkdown(table *domain.Table, initial domain.StateSet) string {
	var sb strings.Builder
	sb.WriteString("# Automaton\n\n")
	sb.WriteString(fmt.Sprintf("- **Initial:** %s\n", codeList(initial.Sorted())))
	sb.WriteString(fmt.Sprintf("- **Accepting:** %s\n", codeList(table.AcceptingStates())))
	sb.WriteString(fmt.Sprintf("- **States:** %d\n", len(table.States())))
	sb.WriteString(fmt.Sprintf("- **Transitions:** %d\n\n", table.Len()))

	if table.Len() == 0 {
		sb.WriteString("_No transitions._\n")
		return sb.String()
	}

	sb.WriteString("| From | Symbol | To |\n")
	sb.WriteString("|------|--------|----|\n")
	for _, tr := range table.Transitions() {
		symbol := "`" + cell(tr.Symbol) + "`"
		if tr.Symbol == "" {
			symbol = "ε"
		}
		to := cell(tr.To)
		if table.Accepts(tr.To) {
			to += " *"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", cell(tr.From), symbol, to))
	}
	return sb.String()
}

func codeList(states []string) string {
	if len(states) == 0 {
		return "none"
	}
	sort.Strings(states)
	quoted := make([]string, len(states))
	for i, st := range states {
		quoted[i] = "`" + st + "`"
	}
	return strings.Join(quoted, ", ")
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
