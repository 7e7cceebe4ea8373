// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/gatherly/models"
	"github.com/golang-jwt/jwt/v5"
)

// header is serialised byte for byte as clients expect it.
const header = `{"typ":"JWT","alg":"HS256"}`

var (
	encoding      = base64.RawURLEncoding
	headerSegment = encoding.EncodeToString([]byte(header))
	signingMethod = jwt.SigningMethodHS256
)

// Codec issues and verifies bearer tokens with a shared secret.
type Codec struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// Option configures a [Codec].
type Option func(*Codec)

// WithClock replaces the clock used for issued-at, expiry and verification.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// NewCodec constructs a Codec signing with secret. defaultTTL is the lifetime
// of tokens issued without an explicit ttl.
//
// Returns ErrEmptySecret when secret is empty.
func NewCodec(secret string, defaultTTL time.Duration, opts ...Option) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if defaultTTL <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", defaultTTL)
	}

	c := &Codec{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Issue mints a token for claims.
//
// IssuedAt is set to the current instant truncated to seconds and ExpiresAt to
// IssuedAt+ttl, overwriting whatever the caller put there. A non-positive ttl
// selects the default lifetime.
//
// The returned token carries the exact claims that were signed.
func (c *Codec) Issue(claims models.Claims, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	issuedAt := time.Unix(c.now().Unix(), 0).UTC()
	claims.IssuedAt = issuedAt
	claims.ExpiresAt = issuedAt.Add(ttl)

	payload, err := json.Marshal(claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("error encoding token claims: %w", err)
	}

	signingString := headerSegment + "." + encoding.EncodeToString(payload)
	signature, err := signingMethod.Sign(signingString, c.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token: %w", err)
	}

	return models.Token{
		Claims:       claims,
		SignedString: signingString + "." + encoding.EncodeToString(signature),
	}, nil
}

// Verify checks tokenString and returns its claims.
//
// Checks run in this order and stop at the first failure:
//  1. three non-empty dot-separated segments, else ErrMalformedToken;
//  2. signature matches (constant-time), else ErrBadSignature;
//  3. claims decode and carry an expiry, else ErrMalformedToken;
//  4. expiry strictly after now, else ErrTokenExpired.
//
// Verify performs no I/O.
func (c *Codec) Verify(tokenString string) (models.Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return models.Claims{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}
	for _, part := range parts {
		if part == "" {
			return models.Claims{}, fmt.Errorf("%w: empty segment", ErrMalformedToken)
		}
	}

	signature, err := encoding.DecodeString(parts[2])
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}
	signingString := parts[0] + "." + parts[1]
	if err = signingMethod.Verify(signingString, signature, c.secret); err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	payload, err := encoding.DecodeString(parts[1])
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	var claims models.Claims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if !claims.ExpiresAt.After(c.now()) {
		return models.Claims{}, ErrTokenExpired
	}

	return claims, nil
}

// DefaultTTL returns the lifetime applied when Issue gets no ttl.
func (c *Codec) DefaultTTL() time.Duration {
	return c.defaultTTL
}
