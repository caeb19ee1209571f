package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email, used to log in
	FirstName    string    `json:"first_name" db:"first_name"` // First name
	LastName     string    `json:"last_name" db:"last_name"`   // Last name
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash
	Avatar       *string   `json:"avatar" db:"avatar"`         // Avatar URL, nil when unset
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// DisplayName returns "first last", falling back to the username when both are empty.
func (u *UserDB) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}

// NewUser holds the fields required to register a user.
type NewUser struct {
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

// UserProfile is a user as seen by another (possibly anonymous) user.
type UserProfile struct {
	UserDB
	IsSubscribed bool `json:"is_subscribed"`
}
