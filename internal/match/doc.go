// Package match provides Levenshtein distance calculation and
// closest-name ranking, used to suggest corrections for misspelled
// parameter names.
package match
