package common

// Names lists the name of every element of s, in order.
func Names[S ~[]E, E any](s S, name func(E) string) []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = name(e)
	}

	return out
}

// Sole returns the element of a one-element slice. It reports false for an
// empty slice and for one with several elements.
func Sole[S ~[]E, E any](s S) (E, bool) {
	if len(s) != 1 {
		var zero E
		return zero, false
	}

	return s[0], true
}
