package compiler

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/fsa/internal/logging"
	"github.com/aretw0/fsa/pkg/domain"
)

// AcceptMarker is the fourth token that marks a transition's output state as accepting.
const AcceptMarker = "*"

// MaxLineSize caps a single configuration line.
const MaxLineSize = 1024 * 1024

// Parser is responsible for converting configuration text into a Source.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new parser instance.
// A nil logger discards diagnostics.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{logger: logger}
}

// ParseLine tokenizes one configuration line.
// It returns false when the line does not hold 3 or 4 tokens; such lines are dropped.
// A fourth token other than "*" is ignored, the transition is still kept.
func ParseLine(line string) (domain.Record, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 || len(tokens) > 4 {
		return domain.Record{}, false
	}
	return domain.Record{
		From:      tokens[0],
		Symbol:    tokens[1],
		To:        tokens[2],
		Accepting: len(tokens) == 4 && tokens[3] == AcceptMarker,
	}, true
}

// Parse reads a whole configuration.
// The initial state is the first token of the first non-blank line,
// even when that line is dropped for having the wrong number of tokens.
func (p *Parser) Parse(name string, r io.Reader) (*domain.Source, error) {
	src := &domain.Source{Name: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	lineNo := 0
	haveInitial := false
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if !haveInitial {
			src.Initial = tokens[0]
			haveInitial = true
		}

		rec, ok := ParseLine(line)
		if !ok {
			p.logger.Debug("dropping malformed record", "source", name, "line", lineNo, "tokens", len(tokens))
			continue
		}
		src.Records = append(src.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceRead, name, err)
	}

	if !haveInitial {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptySource, name)
	}

	p.logger.Debug("parsed source", "source", name, "initial", src.Initial, "records", len(src.Records))
	return src, nil
}
