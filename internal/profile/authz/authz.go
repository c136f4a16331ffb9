// Package authz holds the pure authorization decisions for profile mutation.
// Functions here never error and never touch the store; callers fetch first
// and translate a false result into an authorization failure.
package authz

import (
	"talentmap/internal/identity"
	"talentmap/internal/profile/models"
)

// CanCreate reports whether ident may create a profile. hasProfile is the
// result of the caller's existence check for ident's own profile.
func CanCreate(ident *identity.Identity, hasProfile bool) bool {
	return ident != nil && !hasProfile
}

// CanMutate reports whether ident may update or delete the profile. Owners
// and admins may; anonymous callers never may. This single rule governs both
// update and delete.
func CanMutate(ident *identity.Identity, profile *models.Profile) bool {
	if ident == nil {
		return false
	}
	return ident.UserID == profile.OwnerID || ident.Role == identity.RoleAdmin
}

// CanVerify reports whether ident may change a profile's verified flag. Only
// the role matters; ownership is irrelevant, so an owner can never verify
// their own profile unless they hold the admin role.
func CanVerify(ident *identity.Identity) bool {
	return ident != nil && ident.Role == identity.RoleAdmin
}
