package importer

import (
	"errors"
	"strings"
	"testing"

	"waymark/models"
)

func testVocabulary() Vocabulary {
	return NewVocabulary([]models.Category{
		{Slug: "muffler-men", Name: "Muffler Men"},
		{Slug: "worlds-largest", Name: "World's Largest"},
		{Slug: "unique-finds", Name: "Unique Finds"},
	})
}

func collect(created *[]models.Location) CreateFunc {
	return func(loc models.Location) error {
		*created = append(*created, loc)
		return nil
	}
}

func TestParseBulkImportValidLine(t *testing.T) {
	var created []models.Location
	result := ParseBulkImport("Chicago, IL, muffler-men, 01/15/2024, Giant Paul Bunyan", testVocabulary(), collect(&created))

	if result.Success != 1 || result.Failed != 0 {
		t.Fatalf("got success=%d failed=%d, want 1/0 (errors: %v)", result.Success, result.Failed, result.Errors)
	}
	if len(created) != 1 {
		t.Fatalf("got %d created locations, want 1", len(created))
	}

	loc := created[0]
	if loc.Name != "Giant Paul Bunyan" {
		t.Errorf("name = %q", loc.Name)
	}
	if loc.City != "Chicago" || loc.State != "IL" {
		t.Errorf("city/state = %q/%q", loc.City, loc.State)
	}
	if loc.Category != "muffler-men" {
		t.Errorf("category = %q", loc.Category)
	}
	if loc.TaggedDate != "2024-01-15" {
		t.Errorf("taggedDate = %q, want 2024-01-15", loc.TaggedDate)
	}
	if loc.CustomFields != "{}" {
		t.Errorf("customFields = %q, want {}", loc.CustomFields)
	}
}

func TestParseBulkImportNormalizesCategoryName(t *testing.T) {
	var created []models.Location
	result := ParseBulkImport("Cawker City, KS, Worlds Largest, 06/01/2023, Ball of Twine", testVocabulary(), collect(&created))

	if result.Success != 1 {
		t.Fatalf("got success=%d, errors: %v", result.Success, result.Errors)
	}
	if created[0].Category != "worlds-largest" {
		t.Errorf("category = %q, want worlds-largest", created[0].Category)
	}
}

func TestParseBulkImportTooFewFields(t *testing.T) {
	var created []models.Location
	result := ParseBulkImport("Chicago, IL, muffler-men", testVocabulary(), collect(&created))

	if result.Success != 0 || result.Failed != 1 {
		t.Fatalf("got success=%d failed=%d, want 0/1", result.Success, result.Failed)
	}
	want := "Line 1: Invalid format - expected 5 fields, got 3"
	if len(result.Errors) != 1 || result.Errors[0] != want {
		t.Fatalf("errors = %v, want [%q]", result.Errors, want)
	}
	if len(created) != 0 {
		t.Fatalf("created %d locations, want 0", len(created))
	}
}

func TestParseBulkImportExtraFieldsIgnored(t *testing.T) {
	var created []models.Location
	result := ParseBulkImport("Chicago, IL, muffler-men, 01/15/2024, Giant, extra, junk", testVocabulary(), collect(&created))

	if result.Success != 1 || result.Failed != 0 {
		t.Fatalf("got success=%d failed=%d, errors: %v", result.Success, result.Failed, result.Errors)
	}
	if created[0].Name != "Giant" {
		t.Errorf("name = %q, want Giant", created[0].Name)
	}
}

func TestParseBulkImportUnknownCategory(t *testing.T) {
	result := ParseBulkImport("Chicago, IL, giant-robots, 01/15/2024, Robot", testVocabulary(), func(models.Location) error { return nil })

	if result.Failed != 1 {
		t.Fatalf("got failed=%d, want 1", result.Failed)
	}
	want := `Line 1: Invalid category "giant-robots" - must be one of: Muffler Men, World's Largest, Unique Finds`
	if result.Errors[0] != want {
		t.Fatalf("error = %q\nwant    %q", result.Errors[0], want)
	}
}

func TestParseBulkImportBadDate(t *testing.T) {
	cases := []string{"2024-01-15", "01/15", "aa/bb/cccc", "1/2/3/4"}
	for _, date := range cases {
		result := ParseBulkImport("Chicago, IL, muffler-men, "+date+", Giant", testVocabulary(), func(models.Location) error { return nil })
		if result.Failed != 1 {
			t.Fatalf("date %q: got failed=%d, want 1", date, result.Failed)
		}
		want := `Line 1: Invalid date format "` + date + `" - expected MM/DD/YYYY`
		if result.Errors[0] != want {
			t.Fatalf("date %q: error = %q, want %q", date, result.Errors[0], want)
		}
	}
}

func TestParseBulkImportDatePadding(t *testing.T) {
	var created []models.Location
	result := ParseBulkImport("Chicago, IL, muffler-men, 6/4/2023, Giant", testVocabulary(), collect(&created))

	if result.Success != 1 {
		t.Fatalf("got success=%d, errors: %v", result.Success, result.Errors)
	}
	if created[0].TaggedDate != "2023-06-04" {
		t.Errorf("taggedDate = %q, want 2023-06-04", created[0].TaggedDate)
	}
}

func TestParseBulkImportMixedBatch(t *testing.T) {
	content := strings.Join([]string{
		"Chicago, IL, muffler-men, 01/15/2024, Giant One",
		"bad line",
		"Atlanta, GA, unique-finds, 03/20/2024, Giant Two",
	}, "\n")

	var created []models.Location
	result := ParseBulkImport(content, testVocabulary(), collect(&created))

	if result.Success != 2 || result.Failed != 1 {
		t.Fatalf("got success=%d failed=%d, want 2/1", result.Success, result.Failed)
	}
	if !strings.HasPrefix(result.Errors[0], "Line 2:") {
		t.Fatalf("error = %q, want Line 2 prefix", result.Errors[0])
	}
	if len(created) != 2 {
		t.Fatalf("created %d locations, want 2", len(created))
	}
}

func TestParseBulkImportBlankLinesCountTowardLineNumbers(t *testing.T) {
	content := "Chicago, IL, muffler-men, 01/15/2024, Giant\n\n\nbad line"

	result := ParseBulkImport(content, testVocabulary(), func(models.Location) error { return nil })

	if result.Success != 1 || result.Failed != 1 {
		t.Fatalf("got success=%d failed=%d, want 1/1", result.Success, result.Failed)
	}
	if !strings.HasPrefix(result.Errors[0], "Line 4:") {
		t.Fatalf("error = %q, want Line 4 prefix", result.Errors[0])
	}
}

func TestParseBulkImportCreateErrorReportedPerLine(t *testing.T) {
	result := ParseBulkImport("Chicago, IL, muffler-men, 01/15/2024, Giant", testVocabulary(),
		func(models.Location) error { return errors.New("storage unavailable") })

	if result.Success != 0 || result.Failed != 1 {
		t.Fatalf("got success=%d failed=%d, want 0/1", result.Success, result.Failed)
	}
	if result.Errors[0] != "Line 1: storage unavailable" {
		t.Fatalf("error = %q", result.Errors[0])
	}
}

func TestParseBulkImportEmptyContent(t *testing.T) {
	result := ParseBulkImport("", testVocabulary(), func(models.Location) error { return nil })

	if result.Success != 0 || result.Failed != 0 || len(result.Errors) != 0 {
		t.Fatalf("got %+v, want zero result", result)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Muffler Men":       "muffler-men",
		"  Worlds  Largest": "worlds-largest",
		"UNIQUE FINDS":      "unique-finds",
		"already-slugged":   "already-slugged",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
