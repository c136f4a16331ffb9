package service

import (
	"context"

	"talentmap/internal/identity"
	"talentmap/internal/profile/authz"
	"talentmap/internal/profile/models"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/requestcontext"
)

// SetVerified is the only legitimate path to change a profile's verified
// flag. It is isolated from Update so owners cannot self-verify: the decision
// depends on role alone, never on ownership.
func (s *Service) SetVerified(ctx context.Context, ident *identity.Identity, id string, verified bool) (*models.Profile, error) {
	if !authz.CanVerify(ident) {
		if ident == nil {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
		}
		return nil, dErrors.New(dErrors.CodeForbidden, "admin role required")
	}

	profile, err := s.profiles.SetVerified(ctx, id, verified, requestcontext.Now(ctx))
	if err != nil {
		return nil, wrapStoreErr(err, "failed to set verified flag")
	}
	return profile, nil
}
