// Package iotest routes program output into test logs.
package iotest

import (
	"bytes"
	"io"
	"log"
	"sync"
	"testing"
)

// Writer builds an io.Writer that writes to the given testing.TB,
// one t.Logf call per line.
// Partial lines are held until a newline arrives.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

// Logger builds a *log.Logger that logs to the given testing.TB.
func Logger(t testing.TB) *log.Logger {
	return log.New(Writer(t), "", 0)
}

type writer struct {
	t testing.TB

	mu   sync.Mutex // guards buff
	buff bytes.Buffer
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx], bs[idx+1:]
		if w.buff.Len() > 0 {
			w.buff.Write(line)
			line = w.buff.Bytes()
		}
		w.t.Logf("%s", line)
		w.buff.Reset()
	}
	return total, nil
}
