package auth

import (
	"context"

	"github.com/MKhiriev/gatherly/models"
)

type principalCtxKey struct{}

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, principal)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(principalCtxKey{}).(models.Principal)
	return principal, ok
}
