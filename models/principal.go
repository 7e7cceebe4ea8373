package models

// Principal is the identity established for a single request after its bearer
// token was verified and its subject re-resolved against the user store.
//
// A Principal is built per request and never shared across requests.
type Principal struct {
	UserID        int64   `json:"user_id"`
	Email         string  `json:"email"`
	FullName      string  `json:"full_name"`
	Phone         *string `json:"phone"`
	Role          Role    `json:"role"`
	ProfileImage  *string `json:"profile_image"`
	IsActive      bool    `json:"-"`
	EmailVerified bool    `json:"email_verified"`
}

// NewPrincipal materialises a Principal from a resolved user record.
func NewPrincipal(user User) Principal {
	return Principal{
		UserID:        user.UserID,
		Email:         user.Email,
		FullName:      user.FullName,
		Phone:         user.Phone,
		Role:          user.Role,
		ProfileImage:  user.ProfileImage,
		IsActive:      user.IsActive,
		EmailVerified: user.EmailVerified,
	}
}

// HasRole reports whether the principal's role is a known role contained in
// allowed. An unknown or empty role never matches.
func (p Principal) HasRole(allowed ...Role) bool {
	if !p.Role.IsValid() {
		return false
	}
	for _, role := range allowed {
		if role == p.Role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
