package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"talentmap/internal/profile/models"
	"talentmap/pkg/platform/sentinel"
)

// InMemoryStore keeps profiles in a map. Used by unit tests and local runs
// without a MongoDB instance.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]*models.Profile)}
}

func (s *InMemoryStore) Insert(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.OwnerID == profile.OwnerID {
			return sentinel.ErrConflict
		}
	}

	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	s.profiles[profile.ID.Hex()] = clone(profile)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(p), nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, ownerID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if p.OwnerID == ownerID {
			return clone(p), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindAll(_ context.Context) ([]*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		result = append(result, clone(p))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.Hex() > result[j].ID.Hex()
	})
	return result, nil
}

func (s *InMemoryStore) Update(_ context.Context, id string, upd models.UpdateProfileRequest, now time.Time) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	upd.Apply(p, now)
	return clone(p), nil
}

func (s *InMemoryStore) SetVerified(_ context.Context, id string, verified bool, now time.Time) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	p.Verified = verified
	p.UpdatedAt = now
	return clone(p), nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.profiles, id)
	return nil
}

// clone guards the map against aliasing through returned pointers.
func clone(p *models.Profile) *models.Profile {
	cp := *p
	if p.Skills != nil {
		cp.Skills = append([]string(nil), p.Skills...)
	}
	if p.Languages != nil {
		cp.Languages = append([]string(nil), p.Languages...)
	}
	if p.Location != nil {
		loc := *p.Location
		if p.Location.Coordinates != nil {
			coords := *p.Location.Coordinates
			loc.Coordinates = &coords
		}
		cp.Location = &loc
	}
	return &cp
}
