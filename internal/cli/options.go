package cli

import (
	"io"
	"os"
)

// RunOptions contains the configuration shared by every command.
// Pointer fields are command-line overrides; nil leaves the configuration file value.
type RunOptions struct {
	Sources        []string
	ConfigPath     string
	ConfigRequired bool

	Memoize        *bool
	MaxInputLength *int
	RedisURL       *string
	Addr           *string

	Raw     bool
	NoColor bool
	Debug   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) stdin() io.Reader {
	if o.Stdin == nil {
		return os.Stdin
	}
	return o.Stdin
}

func (o *RunOptions) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o *RunOptions) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}
