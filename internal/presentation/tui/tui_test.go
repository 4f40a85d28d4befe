package tui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/aretw0/fsa/internal/presentation/tui"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict(t *testing.T) {
	assert.Equal(t, "Accepted", tui.Verdict(true, false))
	assert.Equal(t, "Not accepted", tui.Verdict(false, false))
	assert.Contains(t, tui.Verdict(true, true), "Accepted")
	assert.Contains(t, tui.Verdict(false, true), "Not accepted")
}

func TestTransitionsMarkdown(t *testing.T) {
	table := domain.NewTable()
	table.AddTransition("q0", "a|b", "q1")
	table.AddTransition("q1", "", "q2")
	table.MarkAccepting("q2")

	md := tui.TransitionsMarkdown(table, domain.NewStateSet("q0"))

	assert.Contains(t, md, "- **Initial:** `q0`")
	assert.Contains(t, md, "- **Accepting:** `q2`")
	assert.Contains(t, md, "- **Transitions:** 2")
	assert.Contains(t, md, "| q0 | `a\\|b` | q1 |")
	assert.Contains(t, md, "| q1 | ε | q2 * |")
}

func TestTransitionsMarkdown_Empty(t *testing.T) {
	md := tui.TransitionsMarkdown(domain.NewTable(), domain.NewStateSet("q0"))
	assert.Contains(t, md, "- **Accepting:** none")
	assert.Contains(t, md, "_No transitions._")
}

func TestNewRenderer(t *testing.T) {
	out, err := tui.NewRenderer()("# Automaton\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Automaton")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "serving")
	assert.Contains(t, buf.String(), "serving")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, tui.IsTerminal(f))
}
