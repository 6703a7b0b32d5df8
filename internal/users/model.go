package users

import (
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/interests"
)

// StoredUser is the canonical record held by the identity store. A user
// exists from first login; the profile stays nil until onboarding saves one.
type StoredUser struct {
	UserID   string       `json:"userId"`
	Username string       `json:"username"`
	Profile  *UserProfile `json:"profile"`
}

// UserProfile is the whole-record profile replaced on every save.
type UserProfile struct {
	UserID          string               `json:"userId"`
	Username        string               `json:"username"`
	FullName        string               `json:"fullName"`
	ProfilePhotoURL *string              `json:"profilePhotoUrl"`
	Location        string               `json:"location"`
	Org             string               `json:"org"`
	Workspace       string               `json:"workspace"`
	Interests       []interests.Interest `json:"interests"`
	Bio             string               `json:"bio,omitempty"`
	Goals           string               `json:"goals,omitempty"`
}

// ProfilePayload carries everything a save supplies besides the identity
// fields, which always come from the stored user.
type ProfilePayload struct {
	FullName        string
	ProfilePhotoURL *string
	Location        string
	Org             string
	Workspace       string
	Interests       []interests.Interest
	Bio             string
	Goals           string
}

// Clone returns a deep copy so callers cannot mutate store state.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	clone := *p
	if p.ProfilePhotoURL != nil {
		url := *p.ProfilePhotoURL
		clone.ProfilePhotoURL = &url
	}
	clone.Interests = make([]interests.Interest, len(p.Interests))
	copy(clone.Interests, p.Interests)
	return &clone
}

func (u *StoredUser) clone() StoredUser {
	return StoredUser{
		UserID:   u.UserID,
		Username: u.Username,
		Profile:  u.Profile.Clone(),
	}
}
