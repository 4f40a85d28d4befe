package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/aretw0/fsa/internal/compiler"
	"github.com/aretw0/fsa/internal/logging"
	"github.com/aretw0/fsa/pkg/domain"
)

// Loader implements ports.SourceLoader for text configuration files
// in the line format "<from> <symbol> <to> [*]".
type Loader struct {
	Path   string
	logger *slog.Logger
}

// Option configures the Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report dropped records.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader for the given path.
func New(path string, opts ...Option) *Loader {
	l := &Loader{Path: path, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load opens and parses the file.
// A missing file wraps domain.ErrSourceNotFound; any other open or read
// failure wraps domain.ErrSourceRead.
func (l *Loader) Load() (*domain.Source, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, l.Path)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceRead, l.Path, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", domain.ErrSourceRead, l.Path)
	}

	return compiler.NewParser(l.logger).Parse(l.Path, f)
}

// Name returns the file path.
func (l *Loader) Name() string {
	return l.Path
}
