package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"talentmap/internal/identity"
)

// User is a credential record owned by the authentication context. The
// password hash never leaves this package's consumers: the JSON tag strips it
// at every serialization boundary.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         identity.Role      `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Identity derives the request identity for this user.
func (u *User) Identity() *identity.Identity {
	return &identity.Identity{UserID: u.ID.Hex(), Role: u.Role}
}
