package search

import (
	"testing"

	"waymark/models"
)

func sampleLocations() []models.Location {
	return []models.Location{
		{
			LocationID:   "l1",
			Name:         "Gemini Giant",
			Category:     "muffler-men",
			State:        "IL",
			CustomFields: `{"height": "30 feet", "material": "fiberglass"}`,
		},
		{
			LocationID:   "l2",
			Name:         "World's Largest Ball of Twine",
			Category:     "worlds-largest",
			State:        "KS",
			CustomFields: `{"weight": "19000 lbs"}`,
		},
		{
			LocationID:   "l3",
			Name:         "Mystery Spot",
			Category:     "unique-finds",
			State:        "CA",
			CustomFields: "not json at all",
		},
	}
}

func ids(locs []models.Location) []string {
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.LocationID)
	}
	return out
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	locs := sampleLocations()

	for _, q := range []string{"", "   ", "\t"} {
		got := FilterLocations(locs, q)
		if len(got) != len(locs) {
			t.Fatalf("query %q: got %d locations, want %d", q, len(got), len(locs))
		}
	}
}

func TestFilterByName(t *testing.T) {
	got := FilterLocations(sampleLocations(), "gemini")
	if len(got) != 1 || got[0].LocationID != "l1" {
		t.Fatalf("got %v, want [l1]", ids(got))
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	got := FilterLocations(sampleLocations(), "GEMINI")
	if len(got) != 1 || got[0].LocationID != "l1" {
		t.Fatalf("got %v, want [l1]", ids(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterLocations(sampleLocations(), "muffler")
	if len(got) != 1 || got[0].LocationID != "l1" {
		t.Fatalf("got %v, want [l1]", ids(got))
	}
}

func TestFilterByState(t *testing.T) {
	got := FilterLocations(sampleLocations(), "ks")
	if len(got) != 1 || got[0].LocationID != "l2" {
		t.Fatalf("got %v, want [l2]", ids(got))
	}
}

func TestFilterByCustomFieldKeyAndValue(t *testing.T) {
	got := FilterLocations(sampleLocations(), "material")
	if len(got) != 1 || got[0].LocationID != "l1" {
		t.Fatalf("key match: got %v, want [l1]", ids(got))
	}

	got = FilterLocations(sampleLocations(), "fiberglass")
	if len(got) != 1 || got[0].LocationID != "l1" {
		t.Fatalf("value match: got %v, want [l1]", ids(got))
	}
}

func TestFilterCorruptCustomFieldsDoesNotPanic(t *testing.T) {
	// l3 carries a custom-field bag that is not valid JSON; its name
	// still matches, the bag simply contributes nothing.
	got := FilterLocations(sampleLocations(), "mystery")
	if len(got) != 1 || got[0].LocationID != "l3" {
		t.Fatalf("got %v, want [l3]", ids(got))
	}

	// and a query that could only hit the corrupt bag matches nothing
	got = FilterLocations(sampleLocations(), "not json")
	if len(got) != 0 {
		t.Fatalf("got %v, want no matches", ids(got))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	locs := sampleLocations()
	// "s" appears in all three: World's, Mystery Spot, and l1's fiberglass
	got := FilterLocations(locs, "s")
	if len(got) != 3 {
		t.Fatalf("got %d locations, want 3", len(got))
	}
	for i := range got {
		if got[i].LocationID != locs[i].LocationID {
			t.Fatalf("order changed: got %v", ids(got))
		}
	}
}

func TestFilterNoMatches(t *testing.T) {
	got := FilterLocations(sampleLocations(), "zzz-no-such-thing")
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", ids(got))
	}
}

func TestFilterQueryIsTrimmed(t *testing.T) {
	got := FilterLocations(sampleLocations(), "  gemini  ")
	if len(got) != 1 || got[0].LocationID != "l1" {
		t.Fatalf("got %v, want [l1]", ids(got))
	}
}
