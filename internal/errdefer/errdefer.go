// Package errdefer folds errors from deferred cleanup
// into a function's named error return.
package errdefer

import (
	"errors"
	"io"

	"braces.dev/errtrace"
)

// Close closes c and joins its error, if any, into *err.
// An error already in *err is kept.
//
//	f, err := os.Create(path)
//	if err != nil {
//		return err
//	}
//	defer errdefer.Close(&err, f)
//
// err must be a named return for the result to reach the caller.
func Close(err *error, c io.Closer) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, errtrace.Wrap(cerr))
	}
}
