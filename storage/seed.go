package storage

import (
	"context"
	"errors"
	"log"

	"waymark/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the default admin account, the default categories, and a
// handful of sample locations when the store is empty. Safe to call on
// every startup.
func Seed(ctx context.Context, store Store) error {
	if err := seedAdmin(ctx, store); err != nil {
		return err
	}
	if err := seedCategories(ctx, store); err != nil {
		return err
	}
	return seedLocations(ctx, store)
}

func seedAdmin(ctx context.Context, store Store) error {
	_, err := store.GetUserByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = store.CreateUser(ctx, models.User{
		Username: "admin",
		Password: string(hash),
		Role:     []string{"admin"},
	})
	if err == nil {
		log.Println("Default admin account created (username: admin)")
	}
	return err
}

func seedCategories(ctx context.Context, store Store) error {
	existing, err := store.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []models.Category{
		{
			Name:         "Muffler Men",
			Slug:         "muffler-men",
			Description:  "Giant fiberglass figures that once adorned muffler shops and gas stations",
			Icon:         "🗿",
			Color:        "#ef4444",
			DisplayOrder: 1,
		},
		{
			Name:         "World's Largest",
			Slug:         "worlds-largest",
			Description:  "Colossal monuments to American roadside excess",
			Icon:         "🎪",
			Color:        "#3b82f6",
			DisplayOrder: 2,
		},
		{
			Name:         "Unique Finds",
			Slug:         "unique-finds",
			Description:  "Peculiar treasures and oddities that defy categorization",
			Icon:         "✨",
			Color:        "#8b5cf6",
			DisplayOrder: 3,
		},
	}
	for _, cat := range defaults {
		if _, err := store.CreateCategory(ctx, cat); err != nil {
			return err
		}
	}
	return nil
}

func seedLocations(ctx context.Context, store Store) error {
	existing, err := store.ListLocations(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	samples := []models.Location{
		{
			Name:         "Gemini Giant Muffler Man",
			Latitude:     41.1520,
			Longitude:    -88.1792,
			Category:     "muffler-men",
			State:        "Illinois",
			City:         "Wilmington",
			ZipCode:      "60481",
			TaggedDate:   "2024-02-14",
			CustomFields: `{"theme":"space","holding":"rocket"}`,
		},
		{
			Name:         "World's Largest Ball of Twine",
			Latitude:     39.2026,
			Longitude:    -98.4842,
			Category:     "worlds-largest",
			State:        "Kansas",
			City:         "Cawker City",
			ZipCode:      "67430",
			TaggedDate:   "2024-07-20",
			CustomFields: `{"weight":"17,400 pounds","creator":"Frank Stoeber"}`,
		},
		{
			Name:         "World's Largest Catsup Bottle",
			Latitude:     38.6270,
			Longitude:    -90.1994,
			Category:     "worlds-largest",
			State:        "Illinois",
			City:         "Collinsville",
			ZipCode:      "62234",
			TaggedDate:   "2024-10-05",
			CustomFields: `{"brand":"Brooks","height":"170 feet"}`,
		},
		{
			Name:         "Cadillac Ranch",
			Latitude:     35.1872,
			Longitude:    -101.9871,
			Category:     "unique-finds",
			State:        "Texas",
			City:         "Amarillo",
			ZipCode:      "79124",
			TaggedDate:   "2023-10-22",
			CustomFields: `{"type":"art installation","cars":"10 Cadillacs"}`,
		},
		{
			Name:         "Mystery Spot",
			Latitude:     37.0169,
			Longitude:    -122.0255,
			Category:     "unique-finds",
			State:        "California",
			TaggedDate:   "2023-09-15",
			CustomFields: `{"type":"gravitational anomaly","opened":"1939"}`,
		},
	}
	for _, loc := range samples {
		if _, err := store.CreateLocation(ctx, loc); err != nil {
			return err
		}
	}
	return nil
}
