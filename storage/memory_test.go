package storage

import (
	"context"
	"errors"
	"testing"

	"waymark/models"
)

func TestMemStoreLocationLifecycle(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	loc, err := s.CreateLocation(ctx, models.Location{
		Name:     "Gemini Giant",
		Category: "muffler-men",
		State:    "IL",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if loc.LocationID == "" {
		t.Fatal("create: empty id")
	}
	if loc.CustomFields != "{}" {
		t.Fatalf("create: customFields = %q, want {}", loc.CustomFields)
	}

	got, err := s.GetLocation(ctx, loc.LocationID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Gemini Giant" {
		t.Fatalf("get: name = %q", got.Name)
	}

	newName := "Gemini Giant (restored)"
	updated, err := s.UpdateLocation(ctx, loc.LocationID, models.LocationUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("update: name = %q", updated.Name)
	}
	if updated.Category != "muffler-men" {
		t.Fatalf("update clobbered category: %q", updated.Category)
	}

	if err := s.DeleteLocation(ctx, loc.LocationID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetLocation(ctx, loc.LocationID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestMemStoreLocationListOrder(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		if _, err := s.CreateLocation(ctx, models.Location{Name: n, Category: "unique-finds", State: "CA"}); err != nil {
			t.Fatalf("create %s: %v", n, err)
		}
	}

	list, err := s.ListLocations(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list: got %d, want 3", len(list))
	}
	for i, n := range names {
		if list[i].Name != n {
			t.Fatalf("list[%d] = %q, want %q (insertion order)", i, list[i].Name, n)
		}
	}
}

func TestMemStoreNotFound(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.GetLocation(ctx, "lmissing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetLocation: %v", err)
	}
	if _, err := s.UpdateLocation(ctx, "lmissing", models.LocationUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if err := s.DeleteLocation(ctx, "lmissing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteLocation: %v", err)
	}
	if _, err := s.GetUserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if _, err := s.GetCategoryBySlug(ctx, "no-such-slug"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetCategoryBySlug: %v", err)
	}
	if _, err := s.GetSetting(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetSetting: %v", err)
	}
}

func TestMemStoreCategoriesSortedByDisplayOrder(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	for _, c := range []models.Category{
		{Name: "Unique Finds", Slug: "unique-finds", DisplayOrder: 3},
		{Name: "Muffler Men", Slug: "muffler-men", DisplayOrder: 1},
		{Name: "World's Largest", Slug: "worlds-largest", DisplayOrder: 2},
	} {
		if _, err := s.CreateCategory(ctx, c); err != nil {
			t.Fatalf("create %s: %v", c.Slug, err)
		}
	}

	list, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"muffler-men", "worlds-largest", "unique-finds"}
	for i, slug := range want {
		if list[i].Slug != slug {
			t.Fatalf("list[%d] = %q, want %q", i, list[i].Slug, slug)
		}
	}

	got, err := s.GetCategoryBySlug(ctx, "muffler-men")
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	if got.Name != "Muffler Men" {
		t.Fatalf("by slug: name = %q", got.Name)
	}
}

func TestMemStoreSettingsUpsert(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	first, err := s.SetSetting(ctx, models.Setting{Key: "site_title", Value: "Roadside Finds", UpdatedBy: "u1"})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if first.UpdatedAt.IsZero() {
		t.Fatal("set: UpdatedAt not stamped")
	}

	if _, err := s.SetSetting(ctx, models.Setting{Key: "site_title", Value: "Waymark", UpdatedBy: "u2"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := s.GetSetting(ctx, "site_title")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Value != "Waymark" || got.UpdatedBy != "u2" {
		t.Fatalf("get: %+v", got)
	}

	list, err := s.ListSettings(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list: got %d settings, want 1 (upsert, not append)", len(list))
	}
}

func TestMemStoreUserPassword(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, models.User{Username: "admin", Password: "hash1", Role: []string{"admin"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.UpdateUserPassword(ctx, u.UserID, "hash2"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	got, err := s.GetUser(ctx, u.UserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Password != "hash2" {
		t.Fatalf("password = %q, want hash2", got.Password)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	cats, _ := s.ListCategories(ctx)
	locs, _ := s.ListLocations(ctx)
	if len(cats) == 0 || len(locs) == 0 {
		t.Fatalf("seed produced %d categories, %d locations", len(cats), len(locs))
	}

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	cats2, _ := s.ListCategories(ctx)
	locs2, _ := s.ListLocations(ctx)
	if len(cats2) != len(cats) || len(locs2) != len(locs) {
		t.Fatalf("reseed grew data: %d->%d categories, %d->%d locations",
			len(cats), len(cats2), len(locs), len(locs2))
	}

	admin, err := s.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin user: %v", err)
	}
	if len(admin.Role) == 0 || admin.Role[0] != "admin" {
		t.Fatalf("admin roles = %v", admin.Role)
	}
}
