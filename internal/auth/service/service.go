// Package service implements registration and login for the authentication
// context. The rest of the core consumes only the resulting identity; session
// mechanics stay behind this boundary.
package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"talentmap/internal/auth/models"
	"talentmap/internal/auth/store"
	"talentmap/internal/identity"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/platform/sentinel"
	"talentmap/pkg/requestcontext"
)

const minPasswordLength = 8

// Service orchestrates user registration and login.
type Service struct {
	users  store.Store
	tokens *TokenManager
}

func NewService(users store.Store, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a user with the default USER role. Admins are provisioned
// out of band, never through this endpoint.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || !strings.Contains(email, "@") {
		return nil, dErrors.New(dErrors.CodeBadRequest, "a valid email is required")
	}
	if len(password) < minPasswordLength {
		return nil, dErrors.New(dErrors.CodeBadRequest, "password must be at least 8 characters")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         identity.RoleUser,
		CreatedAt:    requestcontext.Now(ctx),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the same error so the endpoint does not leak which
// accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return "", nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.Issue(user, requestcontext.Now(ctx))
	if err != nil {
		return "", nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	return token, user, nil
}
