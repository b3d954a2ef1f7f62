package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// FirstOr returns the first element of the slice, or def if the slice is empty.
func FirstOr[S ~[]E, E any](s S, def E) E {
	if v, ok := First(s); ok {
		return v
	}

	return def
}

// Map applies fn to every element of s and returns the results in order.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	if s == nil {
		return nil
	}

	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}

	return out
}
