package auth

import "errors"

var (
	// ErrNoToken means the Authorization header is absent or is not
	// "Bearer <token>".
	ErrNoToken = errors.New("no bearer token provided")

	// ErrInvalidToken covers every verification failure. The specific reason
	// is logged, never returned.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrPrincipalNotFound means the token subject has no user record.
	ErrPrincipalNotFound = errors.New("user not found")

	// ErrPrincipalDisabled means the user record exists but is inactive.
	ErrPrincipalDisabled = errors.New("user account is inactive")

	// ErrForbidden means the principal's role is not allowed.
	ErrForbidden = errors.New("insufficient permissions")
)
