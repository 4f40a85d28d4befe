package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/fsa/internal/compiler"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the structure of a YAML or JSON automaton document.
//
//	initial: q0
//	accepting: [q2]
//	transitions:
//	  - "q0 ab q2 *"
//	  - {from: q0, symbol: a, to: q1}
type File struct {
	Initial     string   `yaml:"initial" json:"initial"`
	Accepting   []string `yaml:"accepting" json:"accepting"`
	Transitions []any    `yaml:"transitions" json:"transitions"`
}

// Loader implements ports.SourceLoader for YAML and JSON automaton documents.
type Loader struct {
	Path string
}

// New creates a Loader for the given path.
func New(path string) *Loader {
	return &Loader{Path: path}
}

// Supports reports whether the path has a document extension (.yaml, .yml, .json).
func Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Load reads and decodes the document.
func (l *Loader) Load() (*domain.Source, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, l.Path)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceRead, l.Path, err)
	}
	return Decode(l.Path, data)
}

// Name returns the file path.
func (l *Loader) Name() string {
	return l.Path
}

// Decode parses a document. JSON is used for ".json" names, YAML otherwise.
func Decode(name string, data []byte) (*domain.Source, error) {
	var doc File
	if strings.ToLower(filepath.Ext(name)) == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidDocument, name, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidDocument, name, err)
		}
	}

	src := &domain.Source{
		Name:      name,
		Initial:   doc.Initial,
		Accepting: doc.Accepting,
		Records:   make([]domain.Record, 0, len(doc.Transitions)),
	}

	for i, entry := range doc.Transitions {
		rec, err := decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: transition %d: %v", domain.ErrInvalidDocument, name, i, err)
		}
		src.Records = append(src.Records, rec)
	}

	if src.Initial == "" {
		if len(src.Records) == 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmptySource, name)
		}
		src.Initial = src.Records[0].From
	}

	return src, nil
}

func decodeEntry(entry any) (domain.Record, error) {
	switch v := entry.(type) {
	case string:
		// Line form, same grammar as text configurations.
		rec, ok := compiler.ParseLine(v)
		if !ok {
			return domain.Record{}, fmt.Errorf("malformed line %q", v)
		}
		return rec, nil

	case map[string]any, map[any]any:
		var rec domain.Record
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &rec,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			return domain.Record{}, err
		}
		if err := decoder.Decode(v); err != nil {
			return domain.Record{}, err
		}
		if rec.From == "" || rec.To == "" {
			return domain.Record{}, fmt.Errorf("transition needs both 'from' and 'to'")
		}
		return rec, nil

	default:
		return domain.Record{}, fmt.Errorf("invalid transition definition type: %T", v)
	}
}
