package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsa/pkg/domain"
)

// EmptySymbolLabel labels transitions on the empty symbol.
const EmptySymbolLabel = "ε"

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	// Active are states to highlight, such as the states reached by an input.
	Active []string
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Initial: ((Circle))
// - Accepting: (((Double circle)))
// - Default: [Rectangle]
// Parallel transitions between two states share one edge labelled with every symbol.
func GenerateMermaid(table *domain.Table, initial domain.StateSet, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := table.States()
	for _, st := range initial.Sorted() {
		if !contains(states, st) {
			states = append(states, st)
		}
	}

	ids := make(map[string]string, len(states))
	for i, st := range states {
		ids[st] = fmt.Sprintf("s%d", i)
	}

	for _, st := range states {
		opener, closer := "[", "]"
		switch {
		case table.Accepts(st):
			opener, closer = "(((", ")))"
		case initial.Contains(st):
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[st], opener, escape(st), closer))
	}

	type pair struct{ from, to string }
	var order []pair
	labels := make(map[pair][]string)
	for _, tr := range table.Transitions() {
		p := pair{tr.From, tr.To}
		if _, ok := labels[p]; !ok {
			order = append(order, p)
		}
		symbol := tr.Symbol
		if symbol == "" {
			symbol = EmptySymbolLabel
		}
		labels[p] = append(labels[p], escape(symbol))
	}
	for _, p := range order {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[p.from], strings.Join(labels[p], ", "), ids[p.to]))
	}

	// Entry arrows mark the initial states even when they are also accepting.
	for i, st := range initial.Sorted() {
		sb.WriteString(fmt.Sprintf("    start%d[ ] --> %s\n", i, ids[st]))
		sb.WriteString(fmt.Sprintf("    style start%d fill:none,stroke:none\n", i))
	}

	if overlay != nil && len(overlay.Active) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, st := range overlay.Active {
			id, ok := ids[st]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s active;\n", id))
		}
	}

	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
