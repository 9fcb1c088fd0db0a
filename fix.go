package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"go.abhg.dev/slidefix/internal/highlight"
	"go.abhg.dev/slidefix/internal/relocate"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Relocator moves attributes from code block wrappers
// onto their contents.
type Relocator interface {
	Relocate(*html.Node) int
}

var _ Relocator = (*relocate.Relocator)(nil)

// Highlighter syntax highlights code blocks.
type Highlighter interface {
	HighlightAll(*html.Node) (int, error)
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Fixer post-processes rendered HTML documents.
//
// In terms of code organization,
// Fixer's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Fixer struct {
	Log *log.Logger // required

	// Relocator, if set, moves attributes from <pre> to <code>.
	Relocator Relocator

	// Highlighter, if set, highlights code blocks
	// after attributes have been moved.
	Highlighter Highlighter
}

// Fix reads an HTML document from r, fixes it up,
// and writes the result to w.
func (f *Fixer) Fix(w io.Writer, r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return errtrace.Errorf("parse: %w", err)
	}

	if f.Relocator != nil {
		n := f.Relocator.Relocate(doc)
		f.Log.Printf("Moved %d attribute(s)", n)
	}

	if f.Highlighter != nil {
		n, err := f.Highlighter.HighlightAll(doc)
		if err != nil {
			return errtrace.Errorf("highlight: %w", err)
		}
		f.Log.Printf("Highlighted %d code block(s)", n)
	}

	return errtrace.Wrap(html.Render(w, doc))
}

// FixFile fixes the HTML document at src and writes it to dst.
// src and dst may be the same file.
func (f *Fixer) FixFile(src, dst string) error {
	f.Log.Printf("Fixing %v", src)

	body, err := os.ReadFile(src)
	if err != nil {
		return errtrace.Wrap(err)
	}

	// Render to memory first so that a failure
	// doesn't leave a partially written file behind.
	var out bytes.Buffer
	if err := f.Fix(&out, bytes.NewReader(body)); err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(os.WriteFile(dst, out.Bytes(), 0o644))
}

// FileRequest is a request to fix many files.
type FileRequest struct {
	Files []string

	// InPlace rewrites each file with its fixed contents.
	InPlace bool

	// OutDir receives fixed files if InPlace is unset.
	OutDir string

	// Jobs is the maximum number of files fixed at the same time.
	Jobs int
}

// FixFiles fixes the requested files concurrently.
// It stops at the first failure.
func (f *Fixer) FixFiles(ctx context.Context, req FileRequest) error {
	if !req.InPlace {
		if req.OutDir == "" {
			return errtrace.Wrap(errors.New("either InPlace or OutDir is required"))
		}
		if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
			return errtrace.Wrap(err)
		}
	}

	dsts := make(map[string]string, len(req.Files))
	for _, src := range req.Files {
		dst := src
		if !req.InPlace {
			dst = filepath.Join(req.OutDir, filepath.Base(src))
		}
		if other, ok := dsts[dst]; ok {
			return errtrace.Errorf("%v and %v would both be written to %v", other, src, dst)
		}
		dsts[dst] = src
	}

	g, ctx := errgroup.WithContext(ctx)
	if req.Jobs > 0 {
		g.SetLimit(req.Jobs)
	}
	for dst, src := range dsts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errtrace.Wrap(err)
			}
			if err := f.FixFile(src, dst); err != nil {
				return errtrace.Errorf("fix %v: %w", src, err)
			}
			return nil
		})
	}
	return errtrace.Wrap(g.Wait())
}
