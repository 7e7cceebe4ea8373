// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// services.
//
// Rules are declared with github.com/go-ozzo/ozzo-validation. A failed check
// returns validation.Errors keyed by the JSON name of each offending field,
// which the HTTP layer renders as the "errors" object of a 422 response.
package validators

import "context"

// Validator validates a request value. When fields are given only errors
// for those JSON field names are reported.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
