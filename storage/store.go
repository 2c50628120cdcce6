package storage

import (
	"context"
	"errors"
	"os"

	"waymark/db"
	"waymark/models"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence boundary shared by the durable MongoDB
// implementation and the ephemeral in-memory one. The implementation is
// picked once at process start and never mixed at runtime.
type Store interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string) error

	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id string) (models.Location, error)
	CreateLocation(ctx context.Context, loc models.Location) (models.Location, error)
	UpdateLocation(ctx context.Context, id string, upd models.LocationUpdate) (models.Location, error)
	DeleteLocation(ctx context.Context, id string) error

	ListMedia(ctx context.Context) ([]models.Media, error)
	GetMedia(ctx context.Context, id string) (models.Media, error)
	CreateMedia(ctx context.Context, m models.Media) (models.Media, error)
	UpdateMedia(ctx context.Context, id string, upd models.MediaUpdate) (models.Media, error)
	DeleteMedia(ctx context.Context, id string) error

	ListSettings(ctx context.Context) ([]models.Setting, error)
	GetSetting(ctx context.Context, key string) (models.Setting, error)
	SetSetting(ctx context.Context, s models.Setting) (models.Setting, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	CreateCategory(ctx context.Context, c models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, upd models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// Current is the process-wide store, set once by Open.
var Current Store

// Open selects the store implementation from the STORAGE env var
// ("memory" for the ephemeral store, anything else means MongoDB).
func Open() (Store, error) {
	if os.Getenv("STORAGE") == "memory" {
		Current = NewMemStore()
		return Current, nil
	}
	if err := db.Connect(); err != nil {
		return nil, err
	}
	Current = NewMongoStore()
	return Current, nil
}
