package entities

import (
	"github.com/pkg/errors"
)

// StdinName is the display name of the document read from standard input.
const StdinName = "stdin"

// ErrSingleOutputManyInputs is returned when one output file would receive
// the result of several inputs.
var ErrSingleOutputManyInputs = errors.New("multiple inputs were given with --output, but one output file cannot receive the result of many files")

// Document is one unit of text read from an input.
type Document struct {
	Name    string // Path to the file or "stdin".
	Content string
}

// InputKind tells where documents are read from.
type InputKind int

const (
	InputStdin InputKind = iota
	InputFiles
)

func (k InputKind) String() string {
	switch k {
	case InputStdin:
		return "stdin"
	case InputFiles:
		return "files"
	default:
		return "unknown"
	}
}

// Input selects the origin of documents. Paths is only used by InputFiles.
type Input struct {
	Kind  InputKind
	Paths []string
}

// StdinInput reads a single document from standard input.
func StdinInput() Input {
	return Input{Kind: InputStdin}
}

// FilesInput reads one document per path, in order.
func FilesInput(paths ...string) Input {
	return Input{Kind: InputFiles, Paths: paths}
}

// Add appends a positional path. The first call switches a stdin input to
// a file list.
func (in Input) Add(path string) Input {
	paths := make([]string, 0, len(in.Paths)+1)
	if in.Kind == InputFiles {
		paths = append(paths, in.Paths...)
	}
	return Input{Kind: InputFiles, Paths: append(paths, path)}
}

// Count returns the number of documents the input will produce.
func (in Input) Count() int {
	if in.Kind == InputStdin {
		return 1
	}
	return len(in.Paths)
}

// OutputKind tells what happens with a formatted document.
type OutputKind int

const (
	OutputInPlace OutputKind = iota // Overwrite the source when it changed.
	OutputCheck                     // Report only.
	OutputStdout
	OutputFile
)

func (k OutputKind) String() string {
	switch k {
	case OutputInPlace:
		return "in-place"
	case OutputCheck:
		return "check"
	case OutputStdout:
		return "stdout"
	case OutputFile:
		return "file"
	default:
		return "unknown"
	}
}

// Output selects the destination. Path is only used by OutputFile.
type Output struct {
	Kind OutputKind
	Path string
}

// Outcome is the result of writing one document.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeWritten
	OutcomeMismatch // Check mode found a difference.
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeWritten:
		return "written"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// ExitCode is the process exit status.
type ExitCode int

const (
	ExitOK              ExitCode = 0
	ExitNeedsFormatting ExitCode = 1
	ExitFatal           ExitCode = 2
)

// ResolveOutput replaces in-place output with stdout when reading stdin,
// since there is no file to overwrite.
func ResolveOutput(in Input, out Output) Output {
	if in.Kind == InputStdin && out.Kind == OutputInPlace {
		return Output{Kind: OutputStdout}
	}
	return out
}

// CheckTargets validates that input and output can be combined. It must run
// before any document is read.
func CheckTargets(in Input, out Output) error {
	if out.Kind == OutputFile && in.Count() > 1 {
		return errors.Wrapf(ErrSingleOutputManyInputs, "%d inputs for %s", in.Count(), out.Path)
	}
	return nil
}
