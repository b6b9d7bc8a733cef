package domain

import (
	"context"
	"time"
)

// Identity is the caller decoded from a verified access token. It lives for
// one request only.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// TokenClaims is what the token service hands back after a successful verify.
type TokenClaims struct {
	Identity
	TokenID   string
	ExpiresAt time.Time
}

type claimsKey struct{}

// ContextWithClaims returns a copy of ctx carrying the verified token claims.
func ContextWithClaims(ctx context.Context, c TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext reports the claims stored by ContextWithClaims.
func ClaimsFromContext(ctx context.Context) (TokenClaims, bool) {
	c, ok := ctx.Value(claimsKey{}).(TokenClaims)
	return c, ok
}

// IdentityFromContext reports the caller identity of an authenticated request.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	c, ok := ClaimsFromContext(ctx)
	return c.Identity, ok
}
