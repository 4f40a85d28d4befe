package cli

import (
	"errors"
	"fmt"

	"github.com/aretw0/fsa/pkg/domain"
)

// Process exit codes.
const (
	ExitOK = 0
	// ExitNoConfiguration means no configuration was given or a source was not found.
	ExitNoConfiguration = 1
	// ExitReadFailed means a configuration or the input could not be read or parsed.
	ExitReadFailed = 2
	// ExitFailure covers every other error, such as a cancelled decision or a failed validation.
	ExitFailure = 3
)

// ExitError carries the exit code an error should terminate the process with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitErrorf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrNoSources), errors.Is(err, domain.ErrSourceNotFound):
		return ExitNoConfiguration
	case errors.Is(err, domain.ErrSourceRead),
		errors.Is(err, domain.ErrEmptySource),
		errors.Is(err, domain.ErrInvalidDocument),
		errors.Is(err, domain.ErrInputTooLong):
		return ExitReadFailed
	default:
		return ExitFailure
	}
}
