// Package cli wires command line arguments to the formatter run.
package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"typstfmt/config"
	"typstfmt/entities"
	"typstfmt/formatter"
	"typstfmt/logging"
	"typstfmt/processor"
)

// Version is printed by --version. It is set from main at build time.
var Version = "dev"

// exitError ends the command with a status that needs no message, such as
// check mode finding unformatted input.
type exitError struct {
	code entities.ExitCode
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCommand creates the typstfmt command. Flags are parsed by Resolve,
// not by cobra, so that unknown flags and flag order behave as documented.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "typstfmt [options] [file...]",
		Short: "Format Typst code",

		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := Resolve(args)
			if err != nil {
				return err
			}
			return runAction(cmd, opts)
		},
	}
}

func runAction(cmd *cobra.Command, opts Options) error {
	out := cmd.OutOrStdout()

	switch opts.Action {
	case ActionVersion:
		fmt.Fprintf(out, "version: %s\n", Version)
		return nil

	case ActionHelp:
		fmt.Fprint(out, HelpText())
		return nil

	case ActionMakeDefaultConfig:
		if err := config.CreateDefault(config.DefaultFileName); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created config file at: %s\n", config.DefaultFileName)
		return nil

	case ActionUnexpected:
		fmt.Fprintln(out, opts.Unexpected)
		fmt.Fprintln(out, "use -h or --help")
		return nil

	case ActionRun:
		return runFormat(cmd, opts)

	default:
		return errors.Errorf("unknown action %d", opts.Action)
	}
}

func runFormat(cmd *cobra.Command, opts Options) error {
	logger := logging.New(cmd.ErrOrStderr(), opts.Verbose)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	p := &processor.Processor{
		Config:  cfg,
		Format:  formatter.Format,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
		Logger:  logging.GetLogger(logger, "processor"),
	}

	code, err := p.Run(opts.Input, opts.Output)
	if err != nil {
		return err
	}
	if code != entities.ExitOK {
		return &exitError{code: code}
	}
	return nil
}

// Execute runs typstfmt with args and returns the process exit status.
// Fatal errors are reported on stderr.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return int(entities.ExitOK)
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return int(exitErr.code)
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return int(entities.ExitFatal)
}
