package domain

import (
	"sort"
	"strconv"
	"strings"
)

// StateSet is the set of states the automaton could simultaneously be in.
// A nil StateSet reads as empty.
type StateSet map[string]struct{}

// NewStateSet creates a set holding the given states.
func NewStateSet(states ...string) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

// Add inserts a state into the set.
func (s StateSet) Add(state string) {
	s[state] = struct{}{}
}

// Contains reports whether the state is a member of the set.
func (s StateSet) Contains(state string) bool {
	_, ok := s[state]
	return ok
}

// Len returns the number of states in the set.
func (s StateSet) Len() int {
	return len(s)
}

// IsEmpty reports whether the set has no members.
func (s StateSet) IsEmpty() bool {
	return len(s) == 0
}

// Union returns a new set holding the members of both sets.
// Neither operand is modified.
func (s StateSet) Union(other StateSet) StateSet {
	out := make(StateSet, len(s)+len(other))
	for st := range s {
		out[st] = struct{}{}
	}
	for st := range other {
		out[st] = struct{}{}
	}
	return out
}

// Merge adds every member of other to s in place.
func (s StateSet) Merge(other StateSet) {
	for st := range other {
		s[st] = struct{}{}
	}
}

// Sorted returns the members in lexical order.
func (s StateSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Strings(out)
	return out
}

// Key returns the canonical form of the set: its sorted labels, each quoted.
// Two sets have the same key iff they have the same members, whatever bytes
// the labels contain.
func (s StateSet) Key() string {
	var b strings.Builder
	for _, st := range s.Sorted() {
		b.WriteString(strconv.Quote(st))
	}
	return b.String()
}

// String renders the set as {a, b, c}.
func (s StateSet) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}
