// Package auth establishes who is calling a protected endpoint and whether
// they may call it.
//
// A [Guard] turns the bearer token of a request into a [models.Principal]:
// it verifies the token, re-resolves the subject against the user store and
// rejects unknown or disabled accounts. [Guard.Authorize] additionally checks
// the principal's role against an allow-list and fails closed on anything it
// does not recognise.
//
// The resolved principal belongs to a single request. Handlers receive it
// through the request context ([WithPrincipal], [PrincipalFromContext]); the
// package keeps no global state and a Guard is safe for concurrent use.
package auth
