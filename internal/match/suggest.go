package match

import "strings"

// MinSimilarity is the lowest score Closest accepts.
const MinSimilarity = 0.5

// Closest returns the candidate most similar to name, compared
// case-insensitively. It reports false when no candidate scores at least
// MinSimilarity. Ties go to the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
	)

	lower := strings.ToLower(name)

	for _, c := range candidates {
		score := Similarity(lower, strings.ToLower(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint formats the suggestion for name as a message suffix, or returns "".
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok && c != name {
		return "; did you mean " + `"` + c + `"?`
	}

	return ""
}
