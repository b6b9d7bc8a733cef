package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookingin/booking-api/internal/api/metrics"
	"github.com/bookingin/booking-api/internal/core/domain"
)

// AccessTokenCookie is the only credential slot the API reads.
const AccessTokenCookie = "access_token"

// TokenVerifier decodes a signed access token.
type TokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth verifies the access_token cookie and stores the caller claims in the
// request context. A nil checker disables the logout denylist.
func Auth(verifier TokenVerifier, revoked RevocationChecker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			ctx := c.Request().Context()
			if revoked != nil && claims.TokenID != "" {
				isRevoked, err := revoked.IsRevoked(ctx, claims.TokenID)
				if err != nil {
					log.Warn().Err(err).Str("user_id", claims.UserID).Msg("revocation check failed, accepting token")
				} else if isRevoked {
					metrics.AuthRejectionsTotal.WithLabelValues("revoked_token").Inc()
					return domain.ErrInvalidToken
				}
			}

			c.SetRequest(c.Request().WithContext(domain.ContextWithClaims(ctx, *claims)))
			return next(c)
		}
	}
}
