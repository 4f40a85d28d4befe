package domain_test

import (
	"testing"

	"github.com/aretw0/fsa/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestStateSet(t *testing.T) {
	s := domain.NewStateSet("b", "a", "b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.Equal(t, "{a, b}", s.String())

	u := s.Union(domain.NewStateSet("c"))
	assert.Equal(t, []string{"a", "b", "c"}, u.Sorted())
	assert.Equal(t, 2, s.Len(), "Union must not modify its receiver")

	s.Merge(domain.NewStateSet("d"))
	assert.True(t, s.Contains("d"))

	var empty domain.StateSet
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.Contains("a"))
	assert.Equal(t, "", empty.Key())
}

func TestStateSet_Key(t *testing.T) {
	a := domain.NewStateSet("x", "y")
	b := domain.NewStateSet("y", "x")
	assert.Equal(t, a.Key(), b.Key())

	// Labels that would collide under a naive separator stay distinct.
	assert.NotEqual(t, domain.NewStateSet("a,b").Key(), domain.NewStateSet("a", "b").Key())
	assert.NotEqual(t, domain.NewStateSet("a\x00b").Key(), domain.NewStateSet("a", "b").Key())
	assert.NotEqual(t, domain.NewStateSet(`a"b`).Key(), domain.NewStateSet("a", "b").Key())
}

func TestVerdictText(t *testing.T) {
	assert.Equal(t, "Accepted", domain.VerdictText(true))
	assert.Equal(t, "Not accepted", domain.VerdictText(false))
	assert.Equal(t, "Accepted", (&domain.Decision{Accepted: true}).Verdict())
}
