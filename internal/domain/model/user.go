package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	maxUsernameLength = 32
	maxBioLength      = 1000
)

var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrUsernameTooLong = errors.New("username exceeds maximum length of 32 characters")
	ErrBioTooLong      = errors.New("bio exceeds maximum length of 1000 characters")
)

// User holds identity and profile data. PasswordHash is opaque credential
// material written by the auth collaborator; it never crosses the API
// boundary.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	DisplayName  string
	AvatarKey    string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public projection of a User, enriched with the derived
// subscriber count.
type Profile struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	AvatarKey   string
	Bio         string
	Subscribers int64
	CreatedAt   time.Time
}

func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

func ValidateBio(bio string) error {
	if len(bio) > maxBioLength {
		return ErrBioTooLong
	}
	return nil
}

// PublicProfile strips credential material from a User.
func (u *User) PublicProfile(subscribers int64) *Profile {
	return &Profile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarKey:   u.AvatarKey,
		Bio:         u.Bio,
		Subscribers: subscribers,
		CreatedAt:   u.CreatedAt,
	}
}
