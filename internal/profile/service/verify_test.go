package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmap/internal/profile/models"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/requestcontext"
)

func TestSetVerified(t *testing.T) {
	seed := func(t *testing.T) (*Service, *models.Profile) {
		t.Helper()
		svc, ctx := newTestService()
		profile, err := svc.Create(ctx, owner, models.CreateProfileRequest{
			DisplayName: "Ada Lovelace",
			Headline:    "Engineer",
			Skills:      []string{"go"},
		})
		require.NoError(t, err)
		return svc, profile
	}

	t.Run("admin verifies and only verified plus updatedAt change", func(t *testing.T) {
		svc, before := seed(t)
		verifyTime := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)
		ctx := requestcontext.WithTime(t.Context(), verifyTime)

		after, err := svc.SetVerified(ctx, admin, before.ID.Hex(), true)
		require.NoError(t, err)

		assert.True(t, after.Verified)
		assert.Equal(t, verifyTime, after.UpdatedAt)

		// Everything else is bit-identical.
		after.Verified = before.Verified
		after.UpdatedAt = before.UpdatedAt
		assert.Equal(t, before, after)
	})

	t.Run("admin can unverify", func(t *testing.T) {
		svc, profile := seed(t)
		ctx := t.Context()

		_, err := svc.SetVerified(ctx, admin, profile.ID.Hex(), true)
		require.NoError(t, err)

		after, err := svc.SetVerified(ctx, admin, profile.ID.Hex(), false)
		require.NoError(t, err)
		assert.False(t, after.Verified)
	})

	t.Run("owner without admin role is forbidden", func(t *testing.T) {
		svc, profile := seed(t)

		_, err := svc.SetVerified(t.Context(), owner, profile.ID.Hex(), true)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))

		stored, err := svc.Get(t.Context(), profile.ID.Hex())
		require.NoError(t, err)
		assert.False(t, stored.Verified)
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		svc, profile := seed(t)

		_, err := svc.SetVerified(t.Context(), nil, profile.ID.Hex(), true)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("unknown profile reports not found", func(t *testing.T) {
		svc, _ := seed(t)

		_, err := svc.SetVerified(t.Context(), admin, "ffffffffffffffffffffffff", true)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
