// Package importer parses the line-oriented bulk-upload format for
// locations: one record per line, five comma-separated fields
// (City, State, Category, Visit Date, Name). Parsing is optimistic per
// line; a bad line is reported and skipped, never aborting the batch.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"waymark/models"
)

// Vocabulary is the set of category slugs a bulk import may reference,
// plus the display names used in validation messages.
type Vocabulary struct {
	slugs map[string]struct{}
	names []string
}

// NewVocabulary builds the import vocabulary from the current categories.
func NewVocabulary(categories []models.Category) Vocabulary {
	v := Vocabulary{slugs: make(map[string]struct{}, len(categories))}
	for _, cat := range categories {
		v.slugs[cat.Slug] = struct{}{}
		v.names = append(v.names, cat.Name)
	}
	return v
}

func (v Vocabulary) Contains(slug string) bool {
	_, ok := v.slugs[slug]
	return ok
}

func (v Vocabulary) DisplayNames() string {
	return strings.Join(v.names, ", ")
}

// Slugify normalizes a raw category name: lowercase, runs of whitespace
// collapsed to a single hyphen, leading/trailing hyphens trimmed.
func Slugify(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = strings.Join(strings.Fields(slug), "-")
	return strings.Trim(slug, "-")
}

// CreateFunc persists one parsed location. An error fails that line only,
// and its text is reported verbatim.
type CreateFunc func(models.Location) error

// ParseBulkImport processes the whole upload. Lines that are blank after
// trimming are skipped; error messages reference the 1-indexed line number
// within the original input, blank lines included. Field handling is
// positional: the first five comma-separated fields are used and anything
// after the fifth is ignored.
func ParseBulkImport(content string, vocab Vocabulary, create CreateFunc) models.BulkImportResult {
	result := models.BulkImportResult{Errors: []string{}}

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 5 {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("Line %d: Invalid format - expected 5 fields, got %d", lineNo, len(parts)))
			continue
		}

		city, state, categoryRaw, visitDate, name := parts[0], parts[1], parts[2], parts[3], parts[4]

		category := Slugify(categoryRaw)
		if !vocab.Contains(category) {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("Line %d: Invalid category \"%s\" - must be one of: %s", lineNo, categoryRaw, vocab.DisplayNames()))
			continue
		}

		taggedDate, err := normalizeVisitDate(visitDate)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("Line %d: Invalid date format \"%s\" - expected MM/DD/YYYY", lineNo, visitDate))
			continue
		}

		loc := models.Location{
			Name:         name,
			City:         city,
			State:        state,
			Category:     category,
			TaggedDate:   taggedDate,
			CustomFields: "{}",
		}
		if err := create(loc); err != nil {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("Line %d: %s", lineNo, err.Error()))
			continue
		}
		result.Success++
	}

	return result
}

// normalizeVisitDate converts MM/DD/YYYY to YYYY-MM-DD with zero-padded
// month and day. Exactly three numeric slash-separated parts are required.
func normalizeVisitDate(visitDate string) (string, error) {
	parts := strings.Split(visitDate, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("expected 3 date parts, got %d", len(parts))
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", err
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", err
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%02d-%02d", parts[2], month, day), nil
}
