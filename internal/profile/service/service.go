// Package service implements the profile lifecycle: create, read, update,
// delete and list. Authorization decisions are delegated to the authz package
// and every mutating operation receives the caller identity explicitly.
package service

import (
	"context"
	"errors"

	"talentmap/internal/identity"
	"talentmap/internal/profile/authz"
	"talentmap/internal/profile/models"
	"talentmap/internal/profile/store"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/platform/sentinel"
	"talentmap/pkg/requestcontext"
)

// Service orchestrates profile operations against the store.
type Service struct {
	profiles store.Store
}

func NewService(profiles store.Store) *Service {
	return &Service{profiles: profiles}
}

// Create builds a profile owned by the caller. Verified is forced to false
// and OwnerID to the caller's id regardless of payload content. A caller that
// already owns a profile gets a conflict.
func (s *Service) Create(ctx context.Context, ident *identity.Identity, req models.CreateProfileRequest) (*models.Profile, error) {
	if ident == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	hasProfile := true
	if _, err := s.profiles.FindByOwner(ctx, ident.UserID); err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check existing profile")
		}
		hasProfile = false
	}
	if !authz.CanCreate(ident, hasProfile) {
		return nil, dErrors.New(dErrors.CodeConflict, "profile already exists")
	}

	profile, err := models.NewProfile(ident.UserID, req, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	if err := s.profiles.Insert(ctx, profile); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			// Lost a creation race against ourselves; same outcome as the
			// existence check.
			return nil, dErrors.New(dErrors.CodeConflict, "profile already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create profile")
	}
	return profile, nil
}

// Get returns a profile by id. Public: all profile fields are public once
// created, so there is no redaction.
func (s *Service) Get(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to fetch profile")
	}
	return profile, nil
}

// List returns all profiles, most recently created first. Public.
func (s *Service) List(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list profiles")
	}
	return profiles, nil
}

// Update applies the allow-listed fields of upd to the profile. Verified,
// OwnerID and store-managed fields are never honored from this path, even for
// admins.
func (s *Service) Update(ctx context.Context, ident *identity.Identity, id string, upd models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to fetch profile")
	}
	if !authz.CanMutate(ident, profile) {
		return nil, mutationDenied(ident)
	}
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.profiles.Update(ctx, id, upd, requestcontext.Now(ctx))
	if err != nil {
		return nil, wrapStoreErr(err, "failed to update profile")
	}
	return updated, nil
}

// Delete removes the profile. Immediate and permanent; a second delete of the
// same id reports not found.
func (s *Service) Delete(ctx context.Context, ident *identity.Identity, id string) error {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return wrapStoreErr(err, "failed to fetch profile")
	}
	if !authz.CanMutate(ident, profile) {
		return mutationDenied(ident)
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		return wrapStoreErr(err, "failed to delete profile")
	}
	return nil
}

func mutationDenied(ident *identity.Identity) error {
	if ident == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return dErrors.New(dErrors.CodeForbidden, "not allowed to modify this profile")
}

func wrapStoreErr(err error, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "profile not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}
