package match

import "strings"

// Closest picks the candidate nearest to name by edit distance over
// case- and separator-insensitive forms. It returns false when no
// candidate is close enough to be a plausible misspelling.
func Closest(name string, candidates []string) (string, bool) {
	norm := normalize(name)

	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := Levenshtein(norm, normalize(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	if bestDist < 0 || bestDist > maxPlausible(norm) {
		return "", false
	}

	return best, true
}

// maxPlausible scales the accepted distance with the name length, so
// short names only tolerate a single edit and one- or two-letter names
// must match exactly.
func maxPlausible(name string) int {
	if len(name) <= 2 {
		return 0
	}

	if len(name) <= 4 {
		return 1
	}

	if len(name) <= 8 {
		return 2
	}

	return 3
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", "")
}
