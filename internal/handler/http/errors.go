// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the endpoint.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidID is returned when an :id path parameter is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidQuery is returned when a numeric query parameter cannot be
	// parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")

	errNoPrincipal = errors.New("no principal in request context")
)
