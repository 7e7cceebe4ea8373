package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// PasswordHash must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialised to JSON.
	PasswordHash string `json:"-"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// Phone is an optional contact number.
	Phone *string `json:"phone"`

	// Role is the access level of the account.
	Role Role `json:"role"`

	// ProfileImage is an optional URL or path of the avatar.
	ProfileImage *string `json:"profile_image"`

	// IsActive is false for disabled accounts. Disabled accounts cannot log in
	// and their previously issued tokens are rejected.
	IsActive bool `json:"is_active"`

	// EmailVerified reports whether the email address was confirmed.
	EmailVerified bool `json:"email_verified"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
