package utils

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// BestMatch returns the index of the candidate closest to query by edit distance,
// ignoring case and surrounding whitespace. Ties keep the earliest candidate.
// Returns -1 when there are no candidates.
func BestMatch(query string, candidates []string) int {
	q := normalize(query)
	best, bestDistance := -1, 0
	for i, candidate := range candidates {
		d := levenshtein.ComputeDistance(q, normalize(candidate))
		if best == -1 || d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
