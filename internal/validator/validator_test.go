package validator

import (
	"testing"

	"github.com/aretw0/fsa/internal/testutils"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	// q0 -> q1 -> q2(accepting); q0 -> trap; orphan -> q2
	table, initial := testutils.LoadTable(t, `q0 a q1
q1 b q2 *
q0 c trap
orphan d q2
`)

	r := Analyze(table, initial)

	assert.Equal(t, []string{"q0", "q1", "q2", "trap"}, r.Reachable)
	assert.Equal(t, []string{"orphan"}, r.Unreachable)
	assert.Equal(t, []string{"trap"}, r.DeadEnds)
	assert.True(t, r.AcceptingReachable)
	assert.True(t, r.HasAccepting)
	assert.Len(t, r.Warnings(), 2)

	assert.NoError(t, Validate(table, initial))
}

func TestValidate_Errors(t *testing.T) {
	t.Run("No accepting state", func(t *testing.T) {
		table, initial := testutils.LoadTable(t, "q0 a q1\n")
		err := Validate(table, initial)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "found 1 errors")
		assert.Contains(t, err.Error(), "No accepting state is defined")
	})

	t.Run("Accepting state unreachable", func(t *testing.T) {
		table, initial := testutils.LoadTable(t, "q0 a q1\nx b y *\n")
		err := Validate(table, initial)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No accepting state is reachable from {q0}")
	})

	t.Run("Invalid input", func(t *testing.T) {
		assert.ErrorIs(t, Validate(nil, domain.NewStateSet("q0")), domain.ErrInvalidInput)
		assert.ErrorIs(t, Validate(domain.NewTable(), domain.NewStateSet()), domain.ErrInvalidInput)
	})
}

func TestAnalyze_AcceptingInitialState(t *testing.T) {
	table := domain.NewTable()
	table.MarkAccepting("s")

	r := Analyze(table, domain.NewStateSet("s"))
	assert.True(t, r.AcceptingReachable)
	assert.Empty(t, r.DeadEnds, "accepting states are never dead ends")
	assert.Empty(t, r.Unreachable)
}
