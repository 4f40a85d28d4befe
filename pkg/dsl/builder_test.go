package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/fsa"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/aretw0/fsa/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Source(t *testing.T) {
	b := dsl.New("keywords", "start")
	b.State("start").
		On("if", "kw").
		On("else", "kw")
	b.State("kw").Accepting()

	src, err := b.Source()
	require.NoError(t, err)

	assert.Equal(t, "keywords", src.Name)
	assert.Equal(t, "start", src.Initial)
	assert.Equal(t, []domain.Record{
		{From: "start", Symbol: "if", To: "kw"},
		{From: "start", Symbol: "else", To: "kw"},
	}, src.Records)
	assert.Equal(t, []string{"kw"}, src.Accepting)
}

func TestBuilder_BuildAndDecide(t *testing.T) {
	b := dsl.New("ab", "q0")
	b.State("q0").On("a", "q0").On("ab", "q1")
	b.State("q1").Accepting()

	loader, err := b.Build()
	require.NoError(t, err)

	interp, err := fsa.New(nil, fsa.WithLoaders(loader))
	require.NoError(t, err)

	for input, want := range map[string]bool{"ab": true, "aaab": true, "abab": false, "a": false} {
		got, err := interp.Decide(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestBuilder_StateIsReused(t *testing.T) {
	b := dsl.New("x", "q0")
	first := b.State("q1")
	assert.Same(t, first, b.State("q1"))
	assert.Equal(t, "q1", first.ID())
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("Missing initial", func(t *testing.T) {
		_, err := dsl.New("x", "").Build()
		assert.True(t, errors.Is(err, domain.ErrEmptySource))
	})

	t.Run("Whitespace in label", func(t *testing.T) {
		b := dsl.New("x", "q0")
		b.State("q0").On("a", "bad state")
		_, err := b.Build()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Contains(t, err.Error(), `state "bad state"`)
	})
}
