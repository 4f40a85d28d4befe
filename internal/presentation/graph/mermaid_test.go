package graph_test

import (
	"testing"

	"github.com/aretw0/fsa/internal/presentation/graph"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	table := domain.NewTable()
	table.AddTransition("q0", "a", "q1")
	table.AddTransition("q0", "b", "q1")
	table.AddTransition("q1", `say"hi"`, "q2")
	table.AddTransition("q2", "", "q0")
	table.MarkAccepting("q2")
	initial := domain.NewStateSet("q0")

	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		absent   []string
	}{
		{
			name: "Shapes and edges",
			contains: []string{
				"graph LR\n",
				`s0(("q0"))`,
				`s1["q1"]`,
				`s2((("q2")))`,
				`s0 -- "a, b" --> s1`,
				`s1 -- "say#quot;hi#quot;" --> s2`,
				`s2 -- "ε" --> s0`,
				"start0[ ] --> s0",
			},
			absent: []string{"classDef"},
		},
		{
			name:    "Overlay",
			overlay: &graph.GraphOverlay{Active: []string{"q1", "q1", "ghost"}},
			contains: []string{
				"classDef active",
				"class s1 active;",
			},
			absent: []string{"class s0 active;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(table, initial, tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestGenerateMermaid_InitialWithoutTransitions(t *testing.T) {
	got := graph.GenerateMermaid(domain.NewTable(), domain.NewStateSet("lonely"), nil)
	assert.Contains(t, got, `s0(("lonely"))`)
	assert.Contains(t, got, "start0[ ] --> s0")
}
