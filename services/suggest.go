package services

import (
	"strings"
	"unicode/utf8"

	"property-search/models"
)

const (
	minSuggestQuery = 3
	maxSuggestions  = 5
)

// Suggest returns up to five distinct titles or locations containing query,
// ignoring case, in catalogue order. Queries shorter than three characters
// give no suggestions.
func Suggest(records []models.Property, query string) []string {
	q := strings.ToLower(normaliseText(query))
	if utf8.RuneCountInString(q) < minSuggestQuery {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(s string) bool {
		if _, dup := seen[s]; dup || !strings.Contains(strings.ToLower(s), q) {
			return false
		}
		seen[s] = struct{}{}
		out = append(out, s)
		return len(out) == maxSuggestions
	}

	for _, r := range records {
		if add(r.Title) || add(r.Location) {
			break
		}
	}
	return out
}
