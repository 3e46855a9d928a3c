package processor

import (
	"io"

	"github.com/rs/zerolog"

	"typstfmt/config"
	"typstfmt/entities"
)

// FormatFunc turns document content into its formatted form. It must be pure.
type FormatFunc func(content string, cfg *config.Config) string

// Processor runs the read, format, write cycle over all documents of an
// input.
type Processor struct {
	Config  *config.Config
	Format  FormatFunc
	Stdin   io.Reader
	Stdout  io.Writer
	Verbose bool
	Logger  zerolog.Logger
}

// Run formats every document of input and hands it to output. In-place
// output for stdin is written to Stdout instead. It returns
// entities.ExitNeedsFormatting if check mode found any unformatted
// document. The first error stops the run; documents already written stay
// written.
func (p *Processor) Run(input entities.Input, output entities.Output) (entities.ExitCode, error) {
	output = entities.ResolveOutput(input, output)
	if err := entities.CheckTargets(input, output); err != nil {
		return entities.ExitFatal, err
	}

	source := NewSource(input, p.Stdin)
	sink := NewSink(output, p.Stdout, p.Logger)

	status := entities.ExitOK
	for {
		doc, ok, err := source.Next()
		if err != nil {
			return entities.ExitFatal, err
		}
		if !ok {
			break
		}

		formatted := p.Format(doc.Content, p.Config)

		outcome, err := sink.Write(doc, formatted, p.Verbose)
		if err != nil {
			return entities.ExitFatal, err
		}
		if outcome == entities.OutcomeMismatch {
			status = entities.ExitNeedsFormatting
		}
		p.Logger.Debug().Str("path", doc.Name).Stringer("outcome", outcome).Msg("processed")
	}

	return status, nil
}
