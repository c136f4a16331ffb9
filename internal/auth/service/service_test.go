package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmap/internal/auth/store"
	"talentmap/internal/identity"
	dErrors "talentmap/pkg/domain-errors"
)

func newTestAuth() *Service {
	return NewService(store.NewInMemoryStore(), NewTokenManager("test-signing-key", time.Hour))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with USER role and hashed password", func(t *testing.T) {
		svc := newTestAuth()

		user, err := svc.Register(ctx, "Ada@Example.com", "correct horse", "Ada")
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", user.Email, "email is normalized")
		assert.Equal(t, identity.RoleUser, user.Role)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "correct horse", user.PasswordHash)
		assert.False(t, user.ID.IsZero())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := newTestAuth()

		_, err := svc.Register(ctx, "ada@example.com", "correct horse", "Ada")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "ada@example.com", "other password", "Impostor")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := newTestAuth()

		_, err := svc.Register(ctx, "not-an-email", "correct horse", "Ada")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

		_, err = svc.Register(ctx, "ada@example.com", "short", "Ada")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

		_, err = svc.Register(ctx, "ada@example.com", "correct horse", "  ")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials yield a token that resolves the identity", func(t *testing.T) {
		svc := newTestAuth()
		user, err := svc.Register(ctx, "ada@example.com", "correct horse", "Ada")
		require.NoError(t, err)

		token, loggedIn, err := svc.Login(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)

		ident, err := svc.tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), ident.UserID)
		assert.Equal(t, identity.RoleUser, ident.Role)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		svc := newTestAuth()
		_, err := svc.Register(ctx, "ada@example.com", "correct horse", "Ada")
		require.NoError(t, err)

		_, _, errWrong := svc.Login(ctx, "ada@example.com", "wrong password")
		_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "whatever pass")

		assert.True(t, dErrors.HasCode(errWrong, dErrors.CodeUnauthorized))
		assert.True(t, dErrors.HasCode(errUnknown, dErrors.CodeUnauthorized))
	})
}
