package processor

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"typstfmt/entities"
)

// Source produces documents from an input one at a time. It is single-pass:
// every document is read on demand by Next and never again.
type Source struct {
	input entities.Input
	stdin io.Reader
	next  int
}

// NewSource returns a source over input. stdin is only read for
// entities.InputStdin.
func NewSource(input entities.Input, stdin io.Reader) *Source {
	return &Source{input: input, stdin: stdin}
}

// Next reads the next document. It returns false once the input is
// exhausted. Any read error is fatal for the run.
func (s *Source) Next() (entities.Document, bool, error) {
	switch s.input.Kind {
	case entities.InputStdin:
		if s.next > 0 {
			return entities.Document{}, false, nil
		}
		s.next++

		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return entities.Document{}, false, errors.Wrap(err, "reading stdin")
		}
		return entities.Document{Name: entities.StdinName, Content: string(data)}, true, nil

	case entities.InputFiles:
		if s.next >= len(s.input.Paths) {
			return entities.Document{}, false, nil
		}
		path := s.input.Paths[s.next]
		s.next++

		doc, err := readFile(path)
		if err != nil {
			return entities.Document{}, false, err
		}
		return doc, true, nil

	default:
		return entities.Document{}, false, errors.Errorf("unknown input kind %d", s.input.Kind)
	}
}

func readFile(path string) (entities.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return entities.Document{}, errors.Wrapf(err, "opening file %q", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return entities.Document{}, errors.Wrapf(err, "reading file %q", path)
	}
	return entities.Document{Name: path, Content: string(data)}, nil
}
