package domain

import "errors"

// ErrInvalidInput is returned when the engine is handed a nil table or a nil initial state set.
var ErrInvalidInput = errors.New("invalid input")

// ErrInputTooLong is returned when an input exceeds the configured maximum length.
var ErrInputTooLong = errors.New("input exceeds maximum allowed length")

// ErrNoSources is returned when an interpreter is built without any configuration source.
var ErrNoSources = errors.New("no configuration source provided")

// ErrEmptySource is returned when a configuration source has no non-blank line,
// so no initial state can be designated.
var ErrEmptySource = errors.New("configuration source is empty")

// ErrSourceNotFound is returned when a configuration source does not exist.
var ErrSourceNotFound = errors.New("configuration source not found")

// ErrSourceRead is returned when a configuration source exists but cannot be read.
var ErrSourceRead = errors.New("configuration source could not be read")

// ErrInvalidDocument is returned when a structured (YAML/JSON) automaton document is malformed.
var ErrInvalidDocument = errors.New("invalid automaton document")
