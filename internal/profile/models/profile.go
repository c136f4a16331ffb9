package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	dErrors "talentmap/pkg/domain-errors"
	pstrings "talentmap/pkg/platform/strings"
)

// Coordinates is a latitude/longitude pair. Either field may be absent; a
// profile is plottable only when both are present.
type Coordinates struct {
	Lat *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng *float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Location is optional geodata. Partially populated is valid: city without
// coordinates, coordinates without country, and so on.
type Location struct {
	City        string       `bson:"city,omitempty" json:"city,omitempty"`
	Country     string       `bson:"country,omitempty" json:"country,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// Profile is the central entity of the directory.
//
// Invariants:
//   - OwnerID is set once at creation and never reassigned
//   - At most one profile exists per OwnerID (enforced at creation)
//   - DisplayName is non-empty
//   - Verified changes only through the verification workflow, never through
//     the general update path
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      string             `bson:"ownerId" json:"ownerId"`
	DisplayName  string             `bson:"displayName" json:"displayName"`
	Headline     string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Projects     string             `bson:"projects,omitempty" json:"projects,omitempty"`
	Availability string             `bson:"availability,omitempty" json:"availability,omitempty"`
	Skills       []string           `bson:"skills" json:"skills"`
	Languages    []string           `bson:"languages" json:"languages"`
	Location     *Location          `bson:"location,omitempty" json:"location,omitempty"`
	IsRemote     bool               `bson:"isRemote" json:"isRemote"`
	Verified     bool               `bson:"verified" json:"verified"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateProfileRequest carries the owner-supplied fields for profile creation.
// OwnerID and Verified are never part of the payload; the lifecycle manager
// assigns both.
type CreateProfileRequest struct {
	DisplayName  string    `json:"displayName"`
	Headline     string    `json:"headline"`
	Bio          string    `json:"bio"`
	Projects     string    `json:"projects"`
	Availability string    `json:"availability"`
	Skills       []string  `json:"skills"`
	Languages    []string  `json:"languages"`
	Location     *Location `json:"location"`
	IsRemote     bool      `json:"isRemote"`
}

// NewProfile constructs a profile with defaults enforced at the boundary:
// Verified is always false and OwnerID comes from the acting identity, never
// from the payload.
func NewProfile(ownerID string, req CreateProfileRequest, now time.Time) (*Profile, error) {
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "displayName is required")
	}

	return &Profile{
		OwnerID:      ownerID,
		DisplayName:  displayName,
		Headline:     strings.TrimSpace(req.Headline),
		Bio:          strings.TrimSpace(req.Bio),
		Projects:     strings.TrimSpace(req.Projects),
		Availability: strings.TrimSpace(req.Availability),
		Skills:       pstrings.DedupeAndTrim(req.Skills),
		Languages:    pstrings.DedupeAndTrim(req.Languages),
		Location:     req.Location,
		IsRemote:     req.IsRemote,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateProfileRequest is the explicit allow-list of mutable fields. A nil
// pointer means "leave unchanged". Verified, OwnerID and the store-managed
// timestamps have no representation here, so they can never leak through the
// update path regardless of what the external payload contains.
type UpdateProfileRequest struct {
	DisplayName  *string   `json:"displayName"`
	Headline     *string   `json:"headline"`
	Bio          *string   `json:"bio"`
	Projects     *string   `json:"projects"`
	Availability *string   `json:"availability"`
	Skills       []string  `json:"skills"`
	Languages    []string  `json:"languages"`
	Location     *Location `json:"location"`
	IsRemote     *bool     `json:"isRemote"`
}

// Validate rejects updates that would violate profile invariants.
func (u UpdateProfileRequest) Validate() error {
	if u.DisplayName != nil && strings.TrimSpace(*u.DisplayName) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "displayName must not be empty")
	}
	return nil
}

// Apply copies the populated fields onto p and bumps the modification
// timestamp. Call Validate first.
func (u UpdateProfileRequest) Apply(p *Profile, now time.Time) {
	if u.DisplayName != nil {
		p.DisplayName = strings.TrimSpace(*u.DisplayName)
	}
	if u.Headline != nil {
		p.Headline = strings.TrimSpace(*u.Headline)
	}
	if u.Bio != nil {
		p.Bio = strings.TrimSpace(*u.Bio)
	}
	if u.Projects != nil {
		p.Projects = strings.TrimSpace(*u.Projects)
	}
	if u.Availability != nil {
		p.Availability = strings.TrimSpace(*u.Availability)
	}
	if u.Skills != nil {
		p.Skills = pstrings.DedupeAndTrim(u.Skills)
	}
	if u.Languages != nil {
		p.Languages = pstrings.DedupeAndTrim(u.Languages)
	}
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.IsRemote != nil {
		p.IsRemote = *u.IsRemote
	}
	p.UpdatedAt = now
}

// SetDocument builds the partial update document the store applies. Only the
// populated allow-list fields appear; verified and ownerId can never be part
// of the write.
func (u UpdateProfileRequest) SetDocument(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if u.DisplayName != nil {
		set["displayName"] = strings.TrimSpace(*u.DisplayName)
	}
	if u.Headline != nil {
		set["headline"] = strings.TrimSpace(*u.Headline)
	}
	if u.Bio != nil {
		set["bio"] = strings.TrimSpace(*u.Bio)
	}
	if u.Projects != nil {
		set["projects"] = strings.TrimSpace(*u.Projects)
	}
	if u.Availability != nil {
		set["availability"] = strings.TrimSpace(*u.Availability)
	}
	if u.Skills != nil {
		set["skills"] = pstrings.DedupeAndTrim(u.Skills)
	}
	if u.Languages != nil {
		set["languages"] = pstrings.DedupeAndTrim(u.Languages)
	}
	if u.Location != nil {
		set["location"] = u.Location
	}
	if u.IsRemote != nil {
		set["isRemote"] = *u.IsRemote
	}
	return set
}

// HasCoordinates reports whether the profile carries both a latitude and a
// longitude, making it eligible for plotting.
func (p *Profile) HasCoordinates() bool {
	return p.Location != nil &&
		p.Location.Coordinates != nil &&
		p.Location.Coordinates.Lat != nil &&
		p.Location.Coordinates.Lng != nil
}
