package flagvalue

import (
	"strings"

	"braces.dev/errtrace"
)

// List accepts a flag any number of times,
// parsing each occurrence with T's Set method.
//
// Occurrences from the command line, environment,
// and configuration file all land in the same list.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice to a repeatable flag.
//
//	var kws []flagvalue.Keywords
//	flag.Var(flagvalue.ListOf(&kws), "keywords", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the parsed values as a []T.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String joins the String form of each value with "; ".
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i := range *lv {
		items[i] = PT(&(*lv)[i]).String()
	}
	return strings.Join(items, "; ")
}

// Set parses one occurrence of the flag and appends it.
// The list is unchanged if s is rejected.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
