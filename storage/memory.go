package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"waymark/models"
	"waymark/utils"
)

// MemStore keeps everything in process memory. Used for tests and for
// running without a database; state is lost on restart.
type MemStore struct {
	mu         sync.RWMutex
	users      map[string]models.User
	locations  map[string]models.Location
	media      map[string]models.Media
	settings   map[string]models.Setting
	categories map[string]models.Category
	order      []string // location insertion order
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:      make(map[string]models.User),
		locations:  make(map[string]models.Location),
		media:      make(map[string]models.Media),
		settings:   make(map[string]models.Setting),
		categories: make(map[string]models.Category),
	}
}

// --- Users ---

func (s *MemStore) GetUser(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemStore) CreateUser(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.UserID == "" {
		u.UserID = "u" + utils.GenerateID(10)
	}
	s.users[u.UserID] = u
	return u, nil
}

func (s *MemStore) UpdateUserPassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Password = passwordHash
	s.users[id] = u
	return nil
}

// --- Locations ---

func (s *MemStore) ListLocations(_ context.Context) ([]models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Location, 0, len(s.locations))
	for _, id := range s.order {
		if loc, ok := s.locations[id]; ok {
			out = append(out, loc)
		}
	}
	return out, nil
}

func (s *MemStore) GetLocation(_ context.Context, id string) (models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loc, ok := s.locations[id]
	if !ok {
		return models.Location{}, ErrNotFound
	}
	return loc, nil
}

func (s *MemStore) CreateLocation(_ context.Context, loc models.Location) (models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loc.LocationID == "" {
		loc.LocationID = "l" + utils.GenerateID(14)
	}
	if loc.CustomFields == "" {
		loc.CustomFields = "{}"
	}
	s.locations[loc.LocationID] = loc
	s.order = append(s.order, loc.LocationID)
	return loc, nil
}

func (s *MemStore) UpdateLocation(_ context.Context, id string, upd models.LocationUpdate) (models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.locations[id]
	if !ok {
		return models.Location{}, ErrNotFound
	}
	upd.Apply(&loc)
	s.locations[id] = loc
	return loc, nil
}

func (s *MemStore) DeleteLocation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.locations[id]; !ok {
		return ErrNotFound
	}
	delete(s.locations, id)
	return nil
}

// --- Media ---

func (s *MemStore) ListMedia(_ context.Context) ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Media, 0, len(s.media))
	for _, m := range s.media {
		out = append(out, m)
	}
	// newest first
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (s *MemStore) GetMedia(_ context.Context, id string) (models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.media[id]
	if !ok {
		return models.Media{}, ErrNotFound
	}
	return m, nil
}

func (s *MemStore) CreateMedia(_ context.Context, m models.Media) (models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.MediaID == "" {
		m.MediaID = "m" + utils.GenerateID(16)
	}
	if m.UploadedAt.IsZero() {
		m.UploadedAt = time.Now()
	}
	s.media[m.MediaID] = m
	return m, nil
}

func (s *MemStore) UpdateMedia(_ context.Context, id string, upd models.MediaUpdate) (models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.media[id]
	if !ok {
		return models.Media{}, ErrNotFound
	}
	upd.Apply(&m)
	s.media[id] = m
	return m, nil
}

func (s *MemStore) DeleteMedia(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.media[id]; !ok {
		return ErrNotFound
	}
	delete(s.media, id)
	return nil
}

// --- Settings ---

func (s *MemStore) ListSettings(_ context.Context) ([]models.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Setting, 0, len(s.settings))
	for _, setting := range s.settings {
		out = append(out, setting)
	}
	return out, nil
}

func (s *MemStore) GetSetting(_ context.Context, key string) (models.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	setting, ok := s.settings[key]
	if !ok {
		return models.Setting{}, ErrNotFound
	}
	return setting, nil
}

func (s *MemStore) SetSetting(_ context.Context, setting models.Setting) (models.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	setting.UpdatedAt = time.Now()
	s.settings[setting.Key] = setting
	return setting, nil
}

// --- Categories ---

func (s *MemStore) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (s *MemStore) GetCategory(_ context.Context, id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	return cat, nil
}

func (s *MemStore) GetCategoryBySlug(_ context.Context, slug string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cat := range s.categories {
		if cat.Slug == slug {
			return cat, nil
		}
	}
	return models.Category{}, ErrNotFound
}

func (s *MemStore) CreateCategory(_ context.Context, cat models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cat.CategoryID == "" {
		cat.CategoryID = "c" + utils.GenerateID(12)
	}
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	s.categories[cat.CategoryID] = cat
	return cat, nil
}

func (s *MemStore) UpdateCategory(_ context.Context, id string, upd models.CategoryUpdate) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	upd.Apply(&cat)
	cat.UpdatedAt = time.Now()
	s.categories[id] = cat
	return cat, nil
}

func (s *MemStore) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(s.categories, id)
	return nil
}
