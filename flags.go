package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/slidefix/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

const _defaultJobs = 4

// params holds all arguments for slidefix.
type params struct {
	version bool
	help    Help

	Config string
	Debug  bool

	InPlace   bool
	OutputDir string
	Jobs      int

	NoRelocate bool

	Highlight bool
	Style     string
	Classes   bool
	CSSFile   string
	Keywords  []flagvalue.Keywords

	Files []string
}

// cliParser parses the command line arguments for slidefix.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("slidefix", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Output:
	flag.BoolVar(&p.InPlace, "w", false, "")
	flag.StringVar(&p.OutputDir, "out", "", "")
	flag.IntVar(&p.Jobs, "j", _defaultJobs, "")

	// Attributes:
	flag.BoolVar(&p.NoRelocate, "no-relocate", false, "")

	// Highlighting:
	flag.BoolVar(&p.Highlight, "highlight", false, "")
	flag.StringVar(&p.Style, "style", "plain", "")
	flag.BoolVar(&p.Classes, "classes", false, "")
	flag.StringVar(&p.CSSFile, "css", "", "")
	flag.Var(flagvalue.ListOf(&p.Keywords), "keywords", "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.BoolVar(&p.Debug, "debug", false, "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

// Parse parses the command line arguments,
// falling back to SLIDEFIX_* environment variables
// and the file named by -config for flags that were not set.
func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix("SLIDEFIX"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		// The flag package has already reported parse errors.
		// Errors from the environment or config file have not been.
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "slidefix", _version)
		return nil, errHelp
	}

	args = p.help.Resolve(args)

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	p.Files = args
	if len(p.Files) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.InPlace && p.OutputDir != "" {
		fmt.Fprintln(cmd.Stderr, "Cannot use -w and -out together.")
		return nil, errInvalidArguments
	}

	if (p.InPlace || p.OutputDir != "") && slices.Contains(p.Files, "-") {
		fmt.Fprintln(cmd.Stderr, "Cannot read stdin with -w or -out.")
		return nil, errInvalidArguments
	}

	if len(p.Files) > 1 && !p.InPlace && p.OutputDir == "" {
		fmt.Fprintln(cmd.Stderr, "Multiple files require -w or -out.")
		return nil, errInvalidArguments
	}

	if p.Jobs < 1 {
		p.Jobs = 1
	}

	return p, nil
}
