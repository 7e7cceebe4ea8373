// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Wire names of the claims every token carries. They match the names used by
// tokens already held by clients, so they must not change.
const (
	ClaimSubject   = "user_id"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"

	ClaimEmail = "email"
	ClaimRole  = "role"
)

// ErrMissingExpiry is returned when decoded claims carry no expiry claim.
var ErrMissingExpiry = errors.New("claims have no expiry")

// Claims is the payload of a bearer token.
//
// Subject, IssuedAt and ExpiresAt are structurally guaranteed. Any other
// claim (email, role, or whatever a caller adds) lives in Extra and is
// carried opaquely. Extra values that went through JSON come back with JSON
// types: strings, bools, float64 numbers, []any and map[string]any.
type Claims struct {
	// Subject identifies the user the token was issued for.
	Subject int64

	// IssuedAt is the minting instant, second precision, UTC.
	IssuedAt time.Time

	// ExpiresAt is the instant after which the token is rejected.
	ExpiresAt time.Time

	// Extra holds every other claim.
	Extra map[string]any
}

// NewClaims creates claims for subject with the given additional claims.
// Reserved keys inside extra are ignored when serialising.
func NewClaims(subject int64, extra map[string]any) Claims {
	c := Claims{Subject: subject, Extra: make(map[string]any, len(extra))}
	for k, v := range extra {
		c.Extra[k] = v
	}
	return c
}

// Role returns the role claim or an empty role when it is absent or not a
// string.
func (c Claims) Role() Role {
	role, _ := c.Extra[ClaimRole].(string)
	return Role(role)
}

// Email returns the email claim or an empty string.
func (c Claims) Email() string {
	email, _ := c.Extra[ClaimEmail].(string)
	return email
}

// MarshalJSON serialises the claims as one flat JSON object. The reserved
// claims always win over same-named keys in Extra.
func (c Claims) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(c.Extra)+3)
	for k, v := range c.Extra {
		payload[k] = v
	}
	payload[ClaimSubject] = c.Subject
	payload[ClaimIssuedAt] = c.IssuedAt.Unix()
	payload[ClaimExpiresAt] = c.ExpiresAt.Unix()

	return json.Marshal(payload)
}

// UnmarshalJSON parses a flat JSON object into the claims.
//
// The subject may be a JSON number or a numeric string. The expiry claim is
// mandatory; ErrMissingExpiry is returned when it is absent.
func (c *Claims) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("claims must be a JSON object")
	}

	expRaw, ok := raw[ClaimExpiresAt]
	if !ok {
		return ErrMissingExpiry
	}
	exp, err := parseUnixSeconds(expRaw)
	if err != nil {
		return fmt.Errorf("invalid %q claim: %w", ClaimExpiresAt, err)
	}

	var iat time.Time
	if iatRaw, ok := raw[ClaimIssuedAt]; ok {
		if iat, err = parseUnixSeconds(iatRaw); err != nil {
			return fmt.Errorf("invalid %q claim: %w", ClaimIssuedAt, err)
		}
	}

	var subject int64
	if subRaw, ok := raw[ClaimSubject]; ok {
		if subject, err = parseSubject(subRaw); err != nil {
			return fmt.Errorf("invalid %q claim: %w", ClaimSubject, err)
		}
	}

	extra := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == ClaimSubject || k == ClaimIssuedAt || k == ClaimExpiresAt {
			continue
		}
		var value any
		if err := json.Unmarshal(v, &value); err != nil {
			return fmt.Errorf("invalid %q claim: %w", k, err)
		}
		extra[k] = value
	}

	*c = Claims{
		Subject:   subject,
		IssuedAt:  iat,
		ExpiresAt: exp,
		Extra:     extra,
	}
	return nil
}

func parseUnixSeconds(raw json.RawMessage) (time.Time, error) {
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return time.Time{}, err
	}
	if secs, err := n.Int64(); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	f, err := n.Float64()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(f), 0).UTC(), nil
}

func parseSubject(raw json.RawMessage) (int64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseInt(s, 10, 64)
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return 0, err
	}
	return n.Int64()
}
