package dsl

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsa/pkg/adapters/memory"
	"github.com/aretw0/fsa/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	name    string
	initial string
	states  map[string]*StateBuilder
	order   []string
}

// New creates a new automaton builder with the given source name and initial state.
func New(name, initial string) *Builder {
	b := &Builder{
		name:    name,
		initial: initial,
		states:  make(map[string]*StateBuilder),
	}
	if initial != "" {
		b.State(initial)
	}
	return b
}

// State returns the builder of a state, creating it on first use.
func (b *Builder) State(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Source compiles the automaton into a domain source.
// States and transitions keep their declaration order.
func (b *Builder) Source() (*domain.Source, error) {
	if b.initial == "" {
		return nil, fmt.Errorf("%w: %s: missing initial state", domain.ErrEmptySource, b.name)
	}

	src := &domain.Source{Name: b.name, Initial: b.initial}
	var errs []string
	for _, id := range b.order {
		sb := b.states[id]
		if err := checkLabel(id); err != nil {
			errs = append(errs, fmt.Sprintf("state %q: %v", id, err))
		}
		for _, edge := range sb.edges {
			src.Records = append(src.Records, domain.Record{From: id, Symbol: edge.symbol, To: edge.to})
		}
		if sb.accepting {
			src.Accepting = append(src.Accepting, id)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s:\n- %s", domain.ErrInvalidInput, b.name, strings.Join(errs, "\n- "))
	}
	return src, nil
}

// Build compiles the automaton into a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	src, err := b.Source()
	if err != nil {
		return nil, err
	}

	loader, err := memory.NewFromSource(*src)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}

// checkLabel rejects labels the line format could not express.
func checkLabel(label string) error {
	if label == "" {
		return fmt.Errorf("empty label")
	}
	if strings.ContainsAny(label, " \t\r\n") {
		return fmt.Errorf("label contains whitespace")
	}
	return nil
}

type edge struct {
	symbol string
	to     string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id        string
	edges     []edge
	accepting bool
	builder   *Builder
}

// On adds a transition from this state to another on symbol.
// The target state is declared implicitly.
func (s *StateBuilder) On(symbol, to string) *StateBuilder {
	s.edges = append(s.edges, edge{symbol: symbol, to: to})
	s.builder.State(to)
	return s
}

// Accepting marks the state as accepting.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.accepting = true
	return s
}

// ID returns the state label.
func (s *StateBuilder) ID() string {
	return s.id
}
