// Package store defines persistence for profile documents. All operations are
// single-document; implementations return pkg/platform/sentinel errors so the
// service layer can translate them without knowing the backend.
package store

import (
	"context"
	"time"

	"talentmap/internal/profile/models"
)

// Store is the profile document collection.
type Store interface {
	// Insert persists a new profile and assigns its ID.
	Insert(ctx context.Context, profile *models.Profile) error

	// FindByID returns the profile or sentinel.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Profile, error)

	// FindByOwner returns the owner's profile or sentinel.ErrNotFound.
	FindByOwner(ctx context.Context, ownerID string) (*models.Profile, error)

	// FindAll returns every profile, most recently created first.
	FindAll(ctx context.Context) ([]*models.Profile, error)

	// Update atomically applies the populated fields of upd plus the
	// modification timestamp and returns the updated document. The update is
	// a single $set-style write: concurrent updates are not merged, the last
	// write wins for the fields it touched.
	Update(ctx context.Context, id string, upd models.UpdateProfileRequest, now time.Time) (*models.Profile, error)

	// SetVerified atomically writes exactly the verified flag and the
	// modification timestamp, returning the updated document.
	SetVerified(ctx context.Context, id string, verified bool, now time.Time) (*models.Profile, error)

	// Delete removes the profile or returns sentinel.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
