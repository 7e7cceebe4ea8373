// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/store"
	"github.com/MKhiriev/gatherly/models"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
)

// Guard authenticates and authorizes requests carrying bearer tokens.
type Guard struct {
	verifier TokenVerifier
	users    UserFinder
}

// NewGuard creates a Guard that verifies tokens with verifier and resolves
// their subjects with users.
func NewGuard(verifier TokenVerifier, users UserFinder) *Guard {
	return &Guard{
		verifier: verifier,
		users:    users,
	}
}

// Authenticate resolves the principal of r.
//
// It fails with ErrNoToken, ErrInvalidToken, ErrPrincipalNotFound or
// ErrPrincipalDisabled. A failing user lookup is returned wrapped and also
// rejects the request.
func (g *Guard) Authenticate(r *http.Request) (models.Principal, error) {
	log := logger.FromRequest(r)

	tokenString, err := BearerToken(r.Header.Get(authorizationHeader))
	if err != nil {
		return models.Principal{}, err
	}

	claims, err := g.verifier.Verify(tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("token verification failed")
		return models.Principal{}, ErrInvalidToken
	}
	if claims.Subject <= 0 {
		log.Warn().Int64("subject", claims.Subject).Msg("token carries no valid subject")
		return models.Principal{}, ErrInvalidToken
	}

	user, err := g.users.FindUserByID(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Int64("user_id", claims.Subject).Msg("token subject does not exist")
			return models.Principal{}, ErrPrincipalNotFound
		}
		log.Err(err).Int64("user_id", claims.Subject).Msg("error resolving token subject")
		return models.Principal{}, fmt.Errorf("resolving token subject: %w", err)
	}

	if !user.IsActive {
		log.Warn().Int64("user_id", user.UserID).Msg("token subject is inactive")
		return models.Principal{}, ErrPrincipalDisabled
	}

	return models.NewPrincipal(user), nil
}

// Authorize authenticates r and then requires the principal's role to be one
// of allowed. An empty allow-list, an unknown role or an empty role all fail
// with ErrForbidden.
func (g *Guard) Authorize(r *http.Request, allowed ...models.Role) (models.Principal, error) {
	principal, err := g.Authenticate(r)
	if err != nil {
		return models.Principal{}, err
	}

	if !principal.HasRole(allowed...) {
		logger.FromRequest(r).Warn().
			Int64("user_id", principal.UserID).
			Str("role", principal.Role.String()).
			Msg("role not permitted")
		return models.Principal{}, ErrForbidden
	}

	return principal, nil
}

// BearerToken extracts the token from an Authorization header value of the
// form "Bearer <token>". The scheme is matched case-insensitively and may be
// followed by any amount of whitespace.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if len(header) <= len(bearerScheme) {
		return "", ErrNoToken
	}

	scheme, rest := header[:len(bearerScheme)], header[len(bearerScheme):]
	if !strings.EqualFold(scheme, bearerScheme) || !isSpace(rest[0]) {
		return "", ErrNoToken
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
