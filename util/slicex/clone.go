package slicex

// Clone returns a copy of s, or nil if s is nil.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
