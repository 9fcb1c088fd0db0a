// Package sliceutil holds generic slice helpers.
package sliceutil

// Union returns the items of a followed by the items of b,
// keeping only the first occurrence of each item.
//
// The result is a new slice; neither input is modified.
func Union[T comparable](a, b []T) []T {
	seen := make(map[T]struct{}, len(a)+len(b))
	out := make([]T, 0, len(a)+len(b))
	for _, items := range [][]T{a, b} {
		for _, item := range items {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
