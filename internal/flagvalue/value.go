// Package flagvalue provides flag.Value implementations
// for slidefix's command line and configuration file.
package flagvalue

import "flag"

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter, such as *Keywords.
type Getter[T any] interface {
	*T
	flag.Getter
}

var _ flag.Getter = ListOf(new([]Keywords))
