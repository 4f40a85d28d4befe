package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/fsa/internal/compiler"
	"github.com/aretw0/fsa/pkg/adapters/memory"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/stretchr/testify/require"
)

// WriteFile writes content to name inside dir and returns the path.
// An empty dir means a fresh temporary directory.
// It fails the test immediately on error.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", path)
	return path
}

// MustLoader creates an in-memory loader from configuration text.
func MustLoader(t testing.TB, name, config string) *memory.Loader {
	t.Helper()

	loader, err := memory.NewLoader(name, config)
	require.NoError(t, err, "Failed to parse configuration %s", name)
	return loader
}

// LoadTable parses configuration lines into a fresh table and returns it with
// the initial state set of the single source.
func LoadTable(t testing.TB, lines ...string) (*domain.Table, domain.StateSet) {
	t.Helper()

	src, err := compiler.NewParser(nil).Parse("test", strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err, "Failed to parse configuration")

	table := domain.NewTable()
	return table, domain.NewStateSet(table.AddSource(src))
}
