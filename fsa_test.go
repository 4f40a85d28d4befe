package fsa_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/aretw0/fsa"
	"github.com/aretw0/fsa/internal/testutils"
	"github.com/aretw0/fsa/pkg/adapters/memory"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FromFiles(t *testing.T) {
	text := testutils.WriteFile(t, "", "ab.fsa", "q0 ab q1 *\n")
	doc := testutils.WriteFile(t, "", "c.yaml", "initial: p0\ntransitions:\n  - p0 c p1 *\n")

	interp, err := fsa.New([]string{text, doc})
	require.NoError(t, err)

	assert.Equal(t, []string{"p0", "q0"}, interp.InitialStates().Sorted())
	assert.Len(t, interp.Sources(), 2)
	assert.Equal(t, 2, interp.Table().Len())

	ctx := context.Background()
	for input, want := range map[string]bool{
		"ab": true,
		"c":  true,
		"a":  false,
		"cc": false,
		"":   false,
	} {
		got, err := interp.Decide(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Run("No sources", func(t *testing.T) {
		_, err := fsa.New(nil)
		assert.True(t, errors.Is(err, domain.ErrNoSources))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := fsa.New([]string{filepath.Join(t.TempDir(), "missing.fsa")})
		assert.True(t, errors.Is(err, domain.ErrSourceNotFound))
	})

	t.Run("Empty file", func(t *testing.T) {
		_, err := fsa.New([]string{testutils.WriteFile(t, "", "empty.fsa", "\n\n")})
		assert.True(t, errors.Is(err, domain.ErrEmptySource))
	})
}

func TestInterpreter_UnionAcrossSources(t *testing.T) {
	// Source A only reaches "x"; source B accepts "x". States are shared by label.
	a := testutils.MustLoader(t, "a", "a0 go x\n")
	b := testutils.MustLoader(t, "b", "b0 stop x *\n")

	interp, err := fsa.New(nil, fsa.WithLoaders(a, b))
	require.NoError(t, err)

	ok, err := interp.Decide(context.Background(), "go")
	require.NoError(t, err)
	assert.True(t, ok, "accepting marks apply to the shared table")

	ok, err = interp.Decide(context.Background(), "stop")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInterpreter_MemoizationEquivalence(t *testing.T) {
	config := "s a s\ns aa s\ns b f *\n"
	plain, err := fsa.New(nil, fsa.WithLoaders(testutils.MustLoader(t, "p", config)))
	require.NoError(t, err)
	memo, err := fsa.New(nil, fsa.WithLoaders(testutils.MustLoader(t, "m", config)), fsa.WithMemoization(true))
	require.NoError(t, err)
	assert.True(t, memo.Memoized())

	for _, input := range []string{"b", "aab", "aaaaab", "aaaa", "ba", ""} {
		want, err := plain.Decide(context.Background(), input)
		require.NoError(t, err)
		got, err := memo.Decide(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestInterpreter_MaxInputLength(t *testing.T) {
	interp, err := fsa.New(nil,
		fsa.WithLoaders(testutils.MustLoader(t, "a", "q a q *\n")),
		fsa.WithMaxInputLength(3),
	)
	require.NoError(t, err)

	_, err = interp.Decide(context.Background(), "aaaa")
	assert.True(t, errors.Is(err, domain.ErrInputTooLong))

	ok, err := interp.Decide(context.Background(), "aaa")
	require.NoError(t, err)
	assert.True(t, ok)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (bool, bool, error) {
	return false, false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, bool) error {
	return errors.New("cache down")
}

func TestInterpreter_Cache(t *testing.T) {
	cache := memory.NewCache()
	var ends, cachedEnds atomic.Int32
	hooks := domain.DecisionHooks{
		OnDecisionEnd: func(_ context.Context, e *domain.DecisionEvent) {
			ends.Add(1)
			if e.Cached {
				cachedEnds.Add(1)
			}
		},
	}

	interp, err := fsa.New(nil,
		fsa.WithLoaders(testutils.MustLoader(t, "a", "q0 ab q1 *\n")),
		fsa.WithCache(cache),
		fsa.WithHooks(hooks),
	)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := interp.Evaluate(ctx, "ab")
	require.NoError(t, err)
	assert.True(t, first.Accepted)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.Len())

	second, err := interp.Evaluate(ctx, "ab")
	require.NoError(t, err)
	assert.True(t, second.Accepted)
	assert.True(t, second.Cached)
	assert.NotEqual(t, first.ID, second.ID)

	rejected, err := interp.Evaluate(ctx, "ba")
	require.NoError(t, err)
	assert.False(t, rejected.Accepted)
	again, err := interp.Evaluate(ctx, "ba")
	require.NoError(t, err)
	assert.False(t, again.Accepted)
	assert.True(t, again.Cached)

	assert.Equal(t, int32(4), ends.Load())
	assert.Equal(t, int32(2), cachedEnds.Load())
}

func TestInterpreter_CacheFailureDoesNotChangeOutcome(t *testing.T) {
	interp, err := fsa.New(nil,
		fsa.WithLoaders(testutils.MustLoader(t, "a", "q0 ab q1 *\n")),
		fsa.WithCache(failingCache{}),
	)
	require.NoError(t, err)

	ok, err := interp.Decide(context.Background(), "ab")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInterpreter_CacheKeyedByAutomaton(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()

	accepting, err := fsa.New(nil, fsa.WithLoaders(testutils.MustLoader(t, "a", "q a f *\n")), fsa.WithCache(cache))
	require.NoError(t, err)
	rejecting, err := fsa.New(nil, fsa.WithLoaders(testutils.MustLoader(t, "b", "q a f\n")), fsa.WithCache(cache))
	require.NoError(t, err)
	assert.NotEqual(t, accepting.Fingerprint(), rejecting.Fingerprint())

	ok, err := accepting.Decide(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rejecting.Decide(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

type recordingCache struct {
	*memory.Cache
	keys []string
}

func (c *recordingCache) Set(ctx context.Context, key string, accepted bool) error {
	c.keys = append(c.keys, key)
	return c.Cache.Set(ctx, key, accepted)
}

func TestInterpreter_CacheKey(t *testing.T) {
	cache := &recordingCache{Cache: memory.NewCache()}
	interp, err := fsa.New(nil, fsa.WithLoaders(testutils.MustLoader(t, "a", "q ab f *\nq ba f\n")), fsa.WithCache(cache))
	require.NoError(t, err)
	other, err := fsa.New(nil, fsa.WithLoaders(testutils.MustLoader(t, "b", "q ab f\n")))
	require.NoError(t, err)

	// Same length, same bytes in another order, prefixes and the empty input.
	inputs := []string{"ab", "ba", "a", "b", "", "abab", "ab\x00"}
	seen := make(map[string]string)
	for _, input := range inputs {
		key := interp.CacheKey(input)
		prev, dup := seen[key]
		assert.False(t, dup, "inputs %q and %q share key %s", prev, input, key)
		seen[key] = input

		assert.Equal(t, key, interp.CacheKey(input))
		assert.NotEqual(t, key, other.CacheKey(input), "automata must not share keys")
	}

	_, err = interp.Decide(context.Background(), "ab")
	require.NoError(t, err)
	require.Len(t, cache.keys, 1)
	assert.Equal(t, interp.CacheKey("ab"), cache.keys[0])
}

func TestInterpreter_DecideAll(t *testing.T) {
	interp, err := fsa.New(nil,
		fsa.WithLoaders(testutils.MustLoader(t, "bin", "q0 0 q0 *\nq0 1 q0 *\n")),
		fsa.WithConcurrency(2),
	)
	require.NoError(t, err)

	inputs := []string{"0101", "012", "", "1", "x"}
	got, err := interp.DecideAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, got, len(inputs))

	want := []bool{true, false, false, true, false}
	for i, d := range got {
		assert.Equal(t, inputs[i], d.Input)
		assert.Equal(t, want[i], d.Accepted, "input %q", inputs[i])
	}
}

func TestInterpreter_DecideAll_FirstErrorWins(t *testing.T) {
	interp, err := fsa.New(nil,
		fsa.WithLoaders(testutils.MustLoader(t, "a", "q a q *\n")),
		fsa.WithMaxInputLength(2),
	)
	require.NoError(t, err)

	_, err = interp.DecideAll(context.Background(), []string{"a", "aaa"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInputTooLong))
}

func TestInterpreter_CanceledContext(t *testing.T) {
	interp, err := fsa.New(nil, fsa.WithLoaders(testutils.MustLoader(t, "a", "q a q *\n")))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = interp.Decide(ctx, "aaaa")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoaderFor(t *testing.T) {
	assert.Equal(t, "x.yaml", fsa.LoaderFor("x.yaml", nil).Name())
	assert.Equal(t, "x.fsa", fsa.LoaderFor("x.fsa", nil).Name())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, fsa.Version)
}
