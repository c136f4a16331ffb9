package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmap/internal/identity"
	"talentmap/internal/profile/models"
	"talentmap/internal/profile/store"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/requestcontext"
)

var (
	owner = &identity.Identity{UserID: "user-1", Role: identity.RoleUser}
	other = &identity.Identity{UserID: "user-2", Role: identity.RoleUser}
	admin = &identity.Identity{UserID: "admin-1", Role: identity.RoleAdmin}
)

func newTestService() (*Service, context.Context) {
	svc := NewService(store.NewInMemoryStore())
	ctx := requestcontext.WithTime(context.Background(), time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	return svc, ctx
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	t.Run("assigns owner and forces verified false", func(t *testing.T) {
		svc, ctx := newTestService()

		profile, err := svc.Create(ctx, owner, models.CreateProfileRequest{
			DisplayName: "Ada Lovelace",
			Skills:      []string{"go", " go ", "rust"},
		})
		require.NoError(t, err)

		assert.Equal(t, "user-1", profile.OwnerID)
		assert.False(t, profile.Verified)
		assert.False(t, profile.ID.IsZero())
		assert.Equal(t, []string{"go", "rust"}, profile.Skills, "skills are trimmed and de-duplicated")
		assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc, ctx := newTestService()

		_, err := svc.Create(ctx, nil, models.CreateProfileRequest{DisplayName: "Ada"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("empty displayName fails validation", func(t *testing.T) {
		svc, ctx := newTestService()

		_, err := svc.Create(ctx, owner, models.CreateProfileRequest{DisplayName: "   "})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("second profile for the same owner conflicts regardless of payload", func(t *testing.T) {
		svc, ctx := newTestService()

		_, err := svc.Create(ctx, owner, models.CreateProfileRequest{DisplayName: "Ada"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, owner, models.CreateProfileRequest{DisplayName: "Completely Different"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func TestUpdate(t *testing.T) {
	seed := func(t *testing.T) (*Service, context.Context, *models.Profile) {
		t.Helper()
		svc, ctx := newTestService()
		profile, err := svc.Create(ctx, owner, models.CreateProfileRequest{
			DisplayName: "Ada Lovelace",
			Headline:    "Engineer",
		})
		require.NoError(t, err)
		return svc, ctx, profile
	}

	t.Run("owner updates content fields", func(t *testing.T) {
		svc, ctx, profile := seed(t)
		later := requestcontext.WithTime(ctx, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))

		updated, err := svc.Update(later, owner, profile.ID.Hex(), models.UpdateProfileRequest{
			Headline: strPtr("Staff Engineer"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Staff Engineer", updated.Headline)
		assert.Equal(t, "Ada Lovelace", updated.DisplayName, "absent fields stay unchanged")
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("admin updates someone else's profile", func(t *testing.T) {
		svc, ctx, profile := seed(t)

		updated, err := svc.Update(ctx, admin, profile.ID.Hex(), models.UpdateProfileRequest{
			Bio: strPtr("curated bio"),
		})
		require.NoError(t, err)
		assert.Equal(t, "curated bio", updated.Bio)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc, ctx, profile := seed(t)

		_, err := svc.Update(ctx, other, profile.ID.Hex(), models.UpdateProfileRequest{
			Bio: strPtr("vandalism"),
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		svc, ctx, profile := seed(t)

		_, err := svc.Update(ctx, nil, profile.ID.Hex(), models.UpdateProfileRequest{})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("update never touches the verified flag", func(t *testing.T) {
		svc, ctx, profile := seed(t)

		verified, err := svc.SetVerified(ctx, admin, profile.ID.Hex(), true)
		require.NoError(t, err)
		require.True(t, verified.Verified)

		updated, err := svc.Update(ctx, owner, profile.ID.Hex(), models.UpdateProfileRequest{
			Headline: strPtr("new headline"),
		})
		require.NoError(t, err)
		assert.True(t, updated.Verified, "content update must leave verified as-is")
	})

	t.Run("empty displayName is rejected and profile unchanged", func(t *testing.T) {
		svc, ctx, profile := seed(t)

		_, err := svc.Update(ctx, owner, profile.ID.Hex(), models.UpdateProfileRequest{
			DisplayName: strPtr("  "),
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

		stored, err := svc.Get(ctx, profile.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", stored.DisplayName)
	})

	t.Run("unknown profile reports not found", func(t *testing.T) {
		svc, ctx := newTestService()

		_, err := svc.Update(ctx, owner, "ffffffffffffffffffffffff", models.UpdateProfileRequest{})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner deletes, second delete reports not found", func(t *testing.T) {
		svc, ctx := newTestService()
		profile, err := svc.Create(ctx, owner, models.CreateProfileRequest{DisplayName: "Ada"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, owner, profile.ID.Hex()))

		err = svc.Delete(ctx, owner, profile.ID.Hex())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("admin deletes someone else's profile", func(t *testing.T) {
		svc, ctx := newTestService()
		profile, err := svc.Create(ctx, owner, models.CreateProfileRequest{DisplayName: "Ada"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, admin, profile.ID.Hex()))
	})

	t.Run("non-owner is forbidden and profile survives", func(t *testing.T) {
		svc, ctx := newTestService()
		profile, err := svc.Create(ctx, owner, models.CreateProfileRequest{DisplayName: "Ada"})
		require.NoError(t, err)

		err = svc.Delete(ctx, other, profile.ID.Hex())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))

		_, err = svc.Get(ctx, profile.ID.Hex())
		assert.NoError(t, err)
	})
}

func TestList(t *testing.T) {
	svc := NewService(store.NewInMemoryStore())

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	idents := []*identity.Identity{owner, other, admin}
	for i, ident := range idents {
		ctx := requestcontext.WithTime(context.Background(), base.Add(time.Duration(i)*time.Hour))
		_, err := svc.Create(ctx, ident, models.CreateProfileRequest{DisplayName: "Profile " + ident.UserID})
		require.NoError(t, err)
	}

	profiles, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	for i := 1; i < len(profiles); i++ {
		assert.False(t, profiles[i].CreatedAt.After(profiles[i-1].CreatedAt),
			"profiles must be ordered most recently created first")
	}
}
