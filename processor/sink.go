package processor

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"typstfmt/entities"
)

// Sink delivers formatted documents to the selected output.
type Sink struct {
	output entities.Output
	stdout io.Writer
	logger zerolog.Logger
}

// NewSink returns a sink for output. stdout receives entities.OutputStdout
// writes.
func NewSink(output entities.Output, stdout io.Writer, logger zerolog.Logger) *Sink {
	return &Sink{output: output, stdout: stdout, logger: logger}
}

// Write handles one document and its formatted text. Only check mode
// reports entities.OutcomeMismatch; write failures are returned as errors.
// verbose only adds the delimiter header to stdout output; informational
// messages are filtered by the logger level.
func (s *Sink) Write(doc entities.Document, formatted string, verbose bool) (entities.Outcome, error) {
	switch s.output.Kind {
	case entities.OutputInPlace:
		return s.writeInPlace(doc, formatted)
	case entities.OutputCheck:
		return s.check(doc, formatted), nil
	case entities.OutputStdout:
		return s.writeStdout(doc, formatted, verbose)
	case entities.OutputFile:
		return s.writeFile(formatted)
	default:
		return entities.OutcomeUnchanged, errors.Errorf("unknown output kind %d", s.output.Kind)
	}
}

func (s *Sink) writeInPlace(doc entities.Document, formatted string) (entities.Outcome, error) {
	// Leave unchanged files alone so their mtime stays put.
	if formatted == doc.Content {
		s.logger.Info().Str("path", doc.Name).Msg("up to date")
		return entities.OutcomeUnchanged, nil
	}

	if err := writeFile(doc.Name, formatted); err != nil {
		return entities.OutcomeUnchanged, err
	}
	s.logger.Info().Str("path", doc.Name).Msg("overwritten")
	return entities.OutcomeWritten, nil
}

func (s *Sink) check(doc entities.Document, formatted string) entities.Outcome {
	if formatted != doc.Content {
		s.logger.Info().Str("path", doc.Name).Msg("needs formatting")
		return entities.OutcomeMismatch
	}
	s.logger.Info().Str("path", doc.Name).Msg("already formatted")
	return entities.OutcomeUnchanged
}

func (s *Sink) writeStdout(doc entities.Document, formatted string, verbose bool) (entities.Outcome, error) {
	if verbose {
		if _, err := fmt.Fprintf(s.stdout, "=== %q ===\n", doc.Name); err != nil {
			return entities.OutcomeUnchanged, errors.Wrap(err, "writing to stdout")
		}
	}
	if _, err := io.WriteString(s.stdout, formatted); err != nil {
		return entities.OutcomeUnchanged, errors.Wrap(err, "writing to stdout")
	}
	return entities.OutcomeWritten, nil
}

func (s *Sink) writeFile(formatted string) (entities.Outcome, error) {
	if err := writeFile(s.output.Path, formatted); err != nil {
		return entities.OutcomeUnchanged, err
	}
	s.logger.Info().Str("path", s.output.Path).Msg("written")
	return entities.OutcomeWritten, nil
}

// writeFile creates or truncates path and writes content to it.
func writeFile(path, content string) error {
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		return errors.Wrapf(err, "writing file %q", path)
	}
	return nil
}
