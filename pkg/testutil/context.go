package testutil

import (
	"net/http"

	"talentmap/internal/identity"
	"talentmap/pkg/requestcontext"
)

// WithIdentity adds a caller identity to the request context. This simulates
// what the auth middleware would do for authenticated requests.
func WithIdentity(req *http.Request, userID string, role identity.Role) *http.Request {
	ident := &identity.Identity{UserID: userID, Role: role}
	ctx := requestcontext.WithIdentity(req.Context(), ident)
	return req.WithContext(ctx)
}

// AsUser adds a regular user identity to the request context.
func AsUser(req *http.Request, userID string) *http.Request {
	return WithIdentity(req, userID, identity.RoleUser)
}

// AsAdmin adds an admin identity to the request context.
func AsAdmin(req *http.Request, userID string) *http.Request {
	return WithIdentity(req, userID, identity.RoleAdmin)
}
