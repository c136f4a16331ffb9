package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"talentmap/internal/auth/models"
	"talentmap/internal/identity"
)

// Claims carried in access tokens. Role travels as a custom claim so the
// middleware can rebuild the identity without a store lookup.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates access tokens.
type TokenManager struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenManager(signingKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{signingKey: []byte(signingKey), ttl: ttl}
}

// Issue creates a signed access token for the user.
func (m *TokenManager) Issue(user *models.User, now time.Time) (string, error) {
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning the caller identity.
// Implements middleware.TokenValidator.
func (m *TokenManager) ValidateToken(tokenString string) (*identity.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token missing subject")
	}

	role := identity.Role(claims.Role)
	if role != identity.RoleAdmin {
		role = identity.RoleUser
	}
	return &identity.Identity{UserID: claims.Subject, Role: role}, nil
}
