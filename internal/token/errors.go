// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import "errors"

// Sentinel errors returned by [Codec]. Callers can match against them with
// [errors.Is]. Clients must never see which one occurred.
var (
	// ErrEmptySecret is returned by NewCodec when no signing secret is
	// configured. It is a configuration error.
	ErrEmptySecret = errors.New("token signing secret is empty")

	// ErrMalformedToken is returned when the token is not three non-empty
	// dot-separated segments, or when its claims cannot be decoded or carry
	// no expiry.
	ErrMalformedToken = errors.New("malformed token")

	// ErrBadSignature is returned when the signature segment cannot be
	// decoded or does not match the recomputed signature.
	ErrBadSignature = errors.New("bad token signature")

	// ErrTokenExpired is returned when the expiry is not strictly after the
	// verification instant.
	ErrTokenExpired = errors.New("token is expired")
)
