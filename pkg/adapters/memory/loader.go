package memory

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsa/internal/compiler"
	"github.com/aretw0/fsa/pkg/domain"
)

// Loader implements ports.SourceLoader over an in-memory source.
type Loader struct {
	name   string
	source domain.Source
}

// NewLoader creates a Loader from configuration text in the line format
// "<from> <symbol> <to> [*]".
func NewLoader(name, config string) (*Loader, error) {
	src, err := compiler.NewParser(nil).Parse(name, strings.NewReader(config))
	if err != nil {
		return nil, err
	}
	return &Loader{name: name, source: *src}, nil
}

// NewFromRecords creates a Loader from already parsed records.
// This improves DX for tests and embedded automata.
func NewFromRecords(name, initial string, records ...domain.Record) (*Loader, error) {
	if initial == "" {
		return nil, fmt.Errorf("%w: %s: missing initial state", domain.ErrEmptySource, name)
	}
	return &Loader{
		name: name,
		source: domain.Source{
			Name:    name,
			Initial: initial,
			Records: append([]domain.Record(nil), records...),
		},
	}, nil
}

// NewFromSource creates a Loader holding a copy of src.
func NewFromSource(src domain.Source) (*Loader, error) {
	if src.Initial == "" {
		return nil, fmt.Errorf("%w: %s: missing initial state", domain.ErrEmptySource, src.Name)
	}
	src.Records = append([]domain.Record(nil), src.Records...)
	src.Accepting = append([]string(nil), src.Accepting...)
	return &Loader{name: src.Name, source: src}, nil
}

// Load returns a copy of the held source.
func (l *Loader) Load() (*domain.Source, error) {
	src := l.source
	src.Records = append([]domain.Record(nil), l.source.Records...)
	src.Accepting = append([]string(nil), l.source.Accepting...)
	return &src, nil
}

// Name identifies the source.
func (l *Loader) Name() string {
	return l.name
}
