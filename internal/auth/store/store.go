// Package store persists user credential records. Implementations return
// pkg/platform/sentinel errors; the service layer translates them.
package store

import (
	"context"

	"talentmap/internal/auth/models"
)

// Store is the user credential collection.
type Store interface {
	// Insert persists a new user and assigns its ID. Returns
	// sentinel.ErrConflict when the email is already registered.
	Insert(ctx context.Context, user *models.User) error

	// FindByEmail returns the user or sentinel.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID returns the user or sentinel.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)
}
