package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "typstfmt.toml"

// ErrInvalid marks a config file that exists but cannot be used.
var ErrInvalid = errors.New("config file invalid")

// Config holds the formatting settings shared by every document of a run.
type Config struct {
	// Number of spaces a leading tab expands to.
	IndentSpace int `toml:"indent_space"`

	// Longest run of consecutive blank lines that is kept.
	MaxBlankLines int `toml:"max_blank_lines"`

	// End non-empty documents with exactly one newline.
	FinalNewline bool `toml:"final_newline"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		IndentSpace:   2,
		MaxBlankLines: 1,
		FinalNewline:  true,
	}
}

// Load reads the config file at path. A file that cannot be opened is not
// an error: the defaults are used instead.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %q", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: you may have to delete it and use -C to create a default config file", path)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%v", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.IndentSpace < 0 {
		return errors.Wrapf(ErrInvalid, "indent_space must not be negative, got %d", c.IndentSpace)
	}
	if c.MaxBlankLines < 0 {
		return errors.Wrapf(ErrInvalid, "max_blank_lines must not be negative, got %d", c.MaxBlankLines)
	}
	return nil
}

// DefaultTOML renders the built-in configuration as a config file.
func DefaultTOML() ([]byte, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return nil, errors.Wrap(err, "encoding default config")
	}
	return data, nil
}

// CreateDefault writes the default config to path. It fails if the file
// already exists.
func CreateDefault(path string) error {
	data, err := DefaultTOML()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrapf(err, "creating config file at %s", path)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing config file %s", path)
	}
	return errors.Wrapf(f.Close(), "closing config file %s", path)
}
