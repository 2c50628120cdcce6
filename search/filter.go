package search

import (
	"strings"

	"waymark/models"
)

// FilterLocations returns the locations matching a free-text query. An
// empty or whitespace-only query matches everything; otherwise a location
// is kept when the lowercased query is a substring of its name, category,
// state, or any key or value of its custom-field bag. Input order is
// preserved and the input slice is never modified.
func FilterLocations(locations []models.Location, query string) []models.Location {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return locations
	}

	out := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		if matches(loc, query) {
			out = append(out, loc)
		}
	}
	return out
}

func matches(loc models.Location, query string) bool {
	if strings.Contains(strings.ToLower(loc.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(loc.Category), query) {
		return true
	}
	if strings.Contains(strings.ToLower(loc.State), query) {
		return true
	}
	// CustomFieldMap degrades corrupt JSON to an empty map, so a bad bag
	// only fails this test and never the whole filter.
	for k, v := range loc.CustomFieldMap() {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}
