package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/slidefix/internal/errdefer"
	"go.abhg.dev/slidefix/internal/flagvalue"
	"go.abhg.dev/slidefix/internal/highlight"
	"go.abhg.dev/slidefix/internal/relocate"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("slidefix: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	debugLog := log.New(io.Discard, "", 0)
	if opts.Debug {
		debugLog = cmd.log
	}

	fixer := Fixer{Log: debugLog}
	if !opts.NoRelocate {
		fixer.Relocator = &relocate.Relocator{Log: debugLog}
	}

	if opts.Highlight {
		engine := highlight.Engine{
			Log:      cmd.log,
			DebugLog: debugLog,
		}
		// Keywords are added once up front.
		// Files are highlighted concurrently afterwards,
		// and only read from the engine.
		engine.AddKeywords(flagvalue.KeywordMap(opts.Keywords))

		h := &highlight.Highlighter{
			Engine:     &engine,
			Style:      highlight.Style(opts.Style),
			UseClasses: opts.Classes,
		}
		if opts.CSSFile != "" {
			if err := writeCSS(opts.CSSFile, h); err != nil {
				return errtrace.Wrap(err)
			}
		}
		fixer.Highlighter = h
	} else if len(opts.Keywords) > 0 {
		cmd.log.Printf("warning: -keywords has no effect without -highlight")
	}

	if !opts.InPlace && opts.OutputDir == "" {
		// The parser guarantees a single file here.
		// "-" reads from stdin.
		src := cmd.Stdin
		if name := opts.Files[0]; name != "-" {
			f, err := os.Open(name)
			if err != nil {
				return errtrace.Wrap(err)
			}
			defer f.Close()
			src = f
		}
		return errtrace.Wrap(fixer.Fix(cmd.Stdout, src))
	}

	return errtrace.Wrap(fixer.FixFiles(context.Background(), FileRequest{
		Files:   opts.Files,
		InPlace: opts.InPlace,
		OutDir:  opts.OutputDir,
		Jobs:    opts.Jobs,
	}))
}

func writeCSS(path string, h *highlight.Highlighter) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(h.WriteCSS(f))
}
