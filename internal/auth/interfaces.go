package auth

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/gatherly/models"
)

// TokenVerifier checks a signed bearer token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (models.Claims, error)
}

// UserFinder resolves a token subject to its current user record.
// It returns store.ErrNoUserWasFound when no record exists.
type UserFinder interface {
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}
