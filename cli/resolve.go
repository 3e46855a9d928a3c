package cli

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"typstfmt/config"
	"typstfmt/entities"
)

// Action is what the command does after parsing.
type Action int

const (
	ActionRun Action = iota // Format the inputs.
	ActionVersion
	ActionHelp
	ActionMakeDefaultConfig
	ActionUnexpected // Print a usage hint and stop.
)

// Options is the resolved command line.
type Options struct {
	Action     Action
	Input      entities.Input
	Output     entities.Output
	Verbose    bool
	ConfigPath string

	// Unexpected describes the argument that caused ActionUnexpected.
	Unexpected string
}

const usageHeader = `Format Typst code

usage: typstfmt [options] [file...]

If no file is specified, stdin will be used.
Files will be overwritten unless --output is passed.

Options:
`

// HelpText returns the usage message printed by --help.
func HelpText() string {
	var opts Options
	return usageHeader + newFlagSet(&opts).FlagUsages()
}

// Resolve parses command line arguments. Output flags override each other,
// the last one wins. The first of --version, --help and
// --make-default-config ends parsing. An unknown flag is not an error: it
// yields ActionUnexpected.
func Resolve(args []string) (Options, error) {
	opts := Options{Input: entities.StdinInput()}

	fs := newFlagSet(&opts)
	err := fs.Parse(args)

	// Anything after an immediate action is ignored, including bad flags.
	if opts.Action != ActionRun {
		return opts, nil
	}
	if err != nil {
		if isUnknownFlag(err) {
			opts.Action = ActionUnexpected
			opts.Unexpected = err.Error()
			return opts, nil
		}
		return opts, errors.Wrap(err, "parsing arguments")
	}

	for _, path := range fs.Args() {
		opts.Input = opts.Input.Add(path)
	}

	opts.Output = entities.ResolveOutput(opts.Input, opts.Output)
	if err := entities.CheckTargets(opts.Input, opts.Output); err != nil {
		return opts, err
	}
	return opts, nil
}

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("typstfmt", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.VarP(&outputValue{target: &opts.Output}, "output", "o", "If not specified, files will be overwritten. '-' for stdout.")
	switchFlag(fs, &modeValue{target: &opts.Output, mode: entities.Output{Kind: entities.OutputStdout}}, "stdout", "",
		"Same as '--output -' (deprecated, here for compatibility).")
	switchFlag(fs, &modeValue{target: &opts.Output, mode: entities.Output{Kind: entities.OutputCheck}}, "check", "",
		"Run in 'check' mode. Exits with 0 if input is formatted correctly, with 1 if formatting is required.")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Increase verbosity to non errors.")
	fs.StringVarP(&opts.ConfigPath, "config", "c", config.DefaultFileName, "Path to typstfmt.toml, defaults to the current folder.")
	switchFlag(fs, &actionValue{target: &opts.Action, action: ActionVersion}, "version", "v", "Print the current version.")
	switchFlag(fs, &actionValue{target: &opts.Action, action: ActionHelp}, "help", "h", "Print this help.")
	switchFlag(fs, &actionValue{target: &opts.Action, action: ActionMakeDefaultConfig}, "make-default-config", "C",
		"Create a default config file at "+config.DefaultFileName+".")

	return fs
}

// switchFlag registers a flag that takes no value.
func switchFlag(fs *pflag.FlagSet, value pflag.Value, name, shorthand, usage string) {
	fs.VarPF(value, name, shorthand, usage).NoOptDefVal = "true"
}

func isUnknownFlag(err error) bool {
	var notExist *pflag.NotExistError
	return errors.As(err, &notExist)
}

// outputValue implements --output: "-" selects stdout, anything else a file.
type outputValue struct {
	target *entities.Output
}

func (v *outputValue) String() string {
	if v.target.Kind == entities.OutputFile {
		return v.target.Path
	}
	return ""
}

func (v *outputValue) Set(s string) error {
	if s == "-" {
		*v.target = entities.Output{Kind: entities.OutputStdout}
		return nil
	}
	*v.target = entities.Output{Kind: entities.OutputFile, Path: s}
	return nil
}

func (v *outputValue) Type() string {
	return "path"
}

// modeValue selects a fixed output when the flag is given.
type modeValue struct {
	target *entities.Output
	mode   entities.Output
}

func (v *modeValue) String() string {
	return strconv.FormatBool(*v.target == v.mode)
}

func (v *modeValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*v.target = v.mode
	}
	return nil
}

func (v *modeValue) Type() string {
	return "bool"
}

// actionValue records an immediate action. Only the first one is kept.
type actionValue struct {
	target *Action
	action Action
}

func (v *actionValue) String() string {
	return strconv.FormatBool(*v.target == v.action)
}

func (v *actionValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on && *v.target == ActionRun {
		*v.target = v.action
	}
	return nil
}

func (v *actionValue) Type() string {
	return "bool"
}
