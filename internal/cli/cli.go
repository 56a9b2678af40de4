// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/ibfgo/internal/options"
)

// ParseFlags parses command line flags and returns program and session options
func ParseFlags() (options.Program, options.Session, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (options.Program, options.Session, error) {
	flags := flag.NewFlagSet("ibfgo", flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, options.Session{}, &UsageError{flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	if err := validateArgs(opts, rest); err != nil {
		return opts, options.Session{}, err
	}
	if len(rest) == 1 {
		opts.Input = rest[0]
	}

	return opts, options.NewSession(), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: ibfgo [options] [-c cmd | file | -]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that the execution modes are not mixed up
func validateArgs(opts options.Program, args []string) error {
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("unexpected argument %s, only one script file can be run", args[1]),
		}
	}
	if opts.Command != "" && len(args) > 0 {
		return &UsageError{
			msg: "the -c option and a script file can not be combined",
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Command, "c", "", "program passed in as string, executed as one-shot command")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.DumpState, "dump", false, "dump the interpreter state after each line")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print version and exit")
}
