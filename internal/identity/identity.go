// Package identity defines the caller identity resolved by the authentication
// layer. Core services receive an *Identity as an explicit parameter on every
// call; a nil pointer means the caller is anonymous. No operation reaches for
// ambient session state.
package identity

// Role partitions callers into regular users and administrators.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Identity is the (userId, role) pair for the current caller. It is produced
// per request, never persisted, and immutable for the request's lifetime.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
