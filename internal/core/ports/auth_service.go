package ports

import (
	"context"
	"time"

	"github.com/bookingin/booking-api/internal/core/domain"
)

// RegisterInput carries the profile of a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed access token for valid credentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, claims domain.TokenClaims) error
}

// TokenService signs and verifies access tokens.
type TokenService interface {
	Sign(id domain.Identity) (string, error)
	// Verify fails with domain.ErrInvalidToken for malformed, forged or expired tokens.
	Verify(token string) (*domain.TokenClaims, error)
	TTL() time.Duration
}

// TokenRevoker is the logout denylist.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
