package file_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fsa/pkg/adapters/file"
	"github.com/aretw0/fsa/pkg/domain"
	contract "github.com/aretw0/fsa/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Contract(t *testing.T) {
	path := writeConfig(t, "demo.fsa", "q0 ab q1\n\nq1  c  q2 *\ntoo few\n")

	contract.SourceLoaderContractTest(t, file.New(path), &domain.Source{
		Initial: "q0",
		Records: []domain.Record{
			{From: "q0", Symbol: "ab", To: "q1"},
			{From: "q1", Symbol: "c", To: "q2", Accepting: true},
		},
	})
}

func TestLoader_NotFound(t *testing.T) {
	_, err := file.New(filepath.Join(t.TempDir(), "missing.fsa")).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceNotFound))
}

func TestLoader_Directory(t *testing.T) {
	_, err := file.New(t.TempDir()).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceRead))
}

func TestLoader_EmptyFile(t *testing.T) {
	_, err := file.New(writeConfig(t, "empty.fsa", "")).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptySource))
}
