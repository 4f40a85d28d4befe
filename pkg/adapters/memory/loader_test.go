package memory_test

import (
	"errors"
	"testing"

	"github.com/aretw0/fsa/pkg/adapters/memory"
	"github.com/aretw0/fsa/pkg/domain"
	contract "github.com/aretw0/fsa/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	loader, err := memory.NewLoader("inline", "start go end *\nstart stay start\n")
	require.NoError(t, err)

	contract.SourceLoaderContractTest(t, loader, &domain.Source{
		Initial: "start",
		Records: []domain.Record{
			{From: "start", Symbol: "go", To: "end", Accepting: true},
			{From: "start", Symbol: "stay", To: "start"},
		},
	})
}

func TestNewFromRecords_Contract(t *testing.T) {
	records := []domain.Record{{From: "a", Symbol: "x", To: "b", Accepting: true}}
	loader, err := memory.NewFromRecords("records", "a", records...)
	require.NoError(t, err)

	contract.SourceLoaderContractTest(t, loader, &domain.Source{Initial: "a", Records: records})
}

func TestNewFromRecords_MissingInitial(t *testing.T) {
	_, err := memory.NewFromRecords("records", "")
	assert.True(t, errors.Is(err, domain.ErrEmptySource))
}

func TestLoader_ReturnsCopies(t *testing.T) {
	loader, err := memory.NewLoader("inline", "a x b *")
	require.NoError(t, err)

	src, err := loader.Load()
	require.NoError(t, err)
	src.Records[0].To = "mutated"

	again, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "b", again.Records[0].To)
}

func TestNewLoader_Empty(t *testing.T) {
	_, err := memory.NewLoader("blank", "\n\n")
	assert.True(t, errors.Is(err, domain.ErrEmptySource))
}

func TestNewFromSource(t *testing.T) {
	src := domain.Source{
		Name:      "doc",
		Initial:   "q0",
		Records:   []domain.Record{{From: "q0", Symbol: "a", To: "q1"}},
		Accepting: []string{"q1"},
	}
	loader, err := memory.NewFromSource(src)
	require.NoError(t, err)

	src.Accepting[0] = "mutated"
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, got.Accepting)
	assert.Equal(t, "doc", loader.Name())

	_, err = memory.NewFromSource(domain.Source{Name: "x"})
	assert.True(t, errors.Is(err, domain.ErrEmptySource))
}
