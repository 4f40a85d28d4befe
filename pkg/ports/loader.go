package ports

import "github.com/aretw0/fsa/pkg/domain"

// SourceLoader defines how the interpreter retrieves one automaton definition.
// This allows the storage layer (text files, documents, memory) to be decoupled.
type SourceLoader interface {
	// Load parses the source and returns its records and designated initial state.
	// Missing sources wrap domain.ErrSourceNotFound; unreadable or malformed ones
	// wrap domain.ErrSourceRead, domain.ErrEmptySource or domain.ErrInvalidDocument.
	Load() (*domain.Source, error)

	// Name identifies the source in logs and errors.
	Name() string
}
