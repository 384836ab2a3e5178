package domain

import (
	"context"

	"github.com/asilingas/fambudg/pkg/access"
)

type principalKey struct{}

// WithPrincipal stores the authenticated principal in the request context.
func WithPrincipal(ctx context.Context, p access.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the authenticated principal from the context.
func PrincipalFromContext(ctx context.Context) (access.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(access.Principal)
	return p, ok
}
