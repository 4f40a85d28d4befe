package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

type edge struct {
	from   string
	symbol string
}

// Table is the transition relation of the automaton plus its accepting states.
// It is populated once at load time and only read afterwards, so a loaded Table
// may be shared by concurrent deciders without locking.
type Table struct {
	transitions  map[Transition]struct{}
	index        map[edge]StateSet
	successors   map[string]StateSet
	accepting    StateSet
	states       StateSet
	maxSymbolLen int
}

// NewTable creates an empty transition table.
func NewTable() *Table {
	return &Table{
		transitions: make(map[Transition]struct{}),
		index:       make(map[edge]StateSet),
		successors:  make(map[string]StateSet),
		accepting:   make(StateSet),
		states:      make(StateSet),
	}
}

// AddTransition inserts a transition. Duplicates are ignored.
func (t *Table) AddTransition(from, symbol, to string) {
	tr := Transition{From: from, Symbol: symbol, To: to}
	if _, ok := t.transitions[tr]; ok {
		return
	}
	t.transitions[tr] = struct{}{}

	key := edge{from: from, symbol: symbol}
	targets, ok := t.index[key]
	if !ok {
		targets = make(StateSet)
		t.index[key] = targets
	}
	targets.Add(to)

	next, ok := t.successors[from]
	if !ok {
		next = make(StateSet)
		t.successors[from] = next
	}
	next.Add(to)

	t.states.Add(from)
	t.states.Add(to)
	if len(symbol) > t.maxSymbolLen {
		t.maxSymbolLen = len(symbol)
	}
}

// MarkAccepting adds a state to the accepting set. It is idempotent.
func (t *Table) MarkAccepting(state string) {
	t.accepting.Add(state)
	t.states.Add(state)
}

// AddRecord inserts the record's transition and marks its output state
// accepting when the record says so.
func (t *Table) AddRecord(r Record) {
	t.AddTransition(r.From, r.Symbol, r.To)
	if r.Accepting {
		t.MarkAccepting(r.To)
	}
}

// AddSource inserts every record and accepting state of the source and
// returns its initial state.
func (t *Table) AddSource(src *Source) string {
	for _, r := range src.Records {
		t.AddRecord(r)
	}
	for _, st := range src.Accepting {
		t.MarkAccepting(st)
	}
	t.states.Add(src.Initial)
	return src.Initial
}

// Merge adds every transition and accepting state of other into t.
func (t *Table) Merge(other *Table) {
	for tr := range other.transitions {
		t.AddTransition(tr.From, tr.Symbol, tr.To)
	}
	for st := range other.accepting {
		t.MarkAccepting(st)
	}
	t.states.Merge(other.states)
}

// IsAccepting reports whether any state of the set is accepting.
// An empty set is never accepting, and nothing is accepting when no
// accepting state was configured.
func (t *Table) IsAccepting(states StateSet) bool {
	if len(t.accepting) == 0 || len(states) == 0 {
		return false
	}
	for st := range states {
		if t.accepting.Contains(st) {
			return true
		}
	}
	return false
}

// ReachableStates is the nondeterministic step of the automaton: the union of
// the output states of every transition leaving a member of states on exactly
// the given symbol. The result is empty, never nil, when nothing matches.
func (t *Table) ReachableStates(states StateSet, symbol string) StateSet {
	out := make(StateSet)
	for st := range states {
		out.Merge(t.index[edge{from: st, symbol: symbol}])
	}
	return out
}

// Successors returns every state reachable from state in one step, on any symbol.
func (t *Table) Successors(state string) StateSet {
	return NewStateSet().Union(t.successors[state])
}

// Len returns the number of distinct transitions.
func (t *Table) Len() int {
	return len(t.transitions)
}

// MaxSymbolLen returns the byte length of the longest symbol in the table.
// No prefix longer than this can be consumed by a single transition.
func (t *Table) MaxSymbolLen() int {
	return t.maxSymbolLen
}

// HasAccepting reports whether at least one state is accepting.
func (t *Table) HasAccepting() bool {
	return len(t.accepting) > 0
}

// Accepts reports whether a single state is accepting.
func (t *Table) Accepts(state string) bool {
	return t.accepting.Contains(state)
}

// Transitions returns the distinct transitions sorted by (From, Symbol, To).
func (t *Table) Transitions() []Transition {
	out := make([]Transition, 0, len(t.transitions))
	for tr := range t.transitions {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].To < out[j].To
	})
	return out
}

// States returns every state label referenced by the table, sorted.
func (t *Table) States() []string {
	return t.states.Sorted()
}

// AcceptingStates returns the accepting states, sorted.
func (t *Table) AcceptingStates() []string {
	return t.accepting.Sorted()
}

// Fingerprint returns a short, stable digest of the automaton as seen from the
// given initial states, for display and logs. Tables with the same transitions,
// accepting states and initial states share a fingerprint regardless of
// insertion order.
func (t *Table) Fingerprint(initial StateSet) string {
	d := xxhash.New()
	t.writeCanonical(d, initial)
	return strconv.FormatUint(d.Sum64(), 16)
}

// Digest is the SHA-256 counterpart of Fingerprint. Unlike the fingerprint it
// is collision resistant and safe to key shared caches on.
func (t *Table) Digest(initial StateSet) string {
	d := sha256.New()
	t.writeCanonical(d, initial)
	return hex.EncodeToString(d.Sum(nil))
}

func (t *Table) writeCanonical(w io.Writer, initial StateSet) {
	for _, tr := range t.Transitions() {
		_, _ = io.WriteString(w, strconv.Quote(tr.From))
		_, _ = io.WriteString(w, strconv.Quote(tr.Symbol))
		_, _ = io.WriteString(w, strconv.Quote(tr.To))
		_, _ = io.WriteString(w, "\n")
	}
	_, _ = io.WriteString(w, "accepting")
	for _, st := range t.AcceptingStates() {
		_, _ = io.WriteString(w, strconv.Quote(st))
	}
	_, _ = io.WriteString(w, "initial")
	for _, st := range initial.Sorted() {
		_, _ = io.WriteString(w, strconv.Quote(st))
	}
}
