package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bookingin/booking-api/internal/api/metrics"
	"github.com/bookingin/booking-api/internal/core/domain"
)

// RequireAdmin lets only admin callers through. It must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := domain.IdentityFromContext(c.Request().Context())
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !id.IsAdmin {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireOwnerOrAdmin lets through admins and the user whose id is in the
// given path parameter. It must run after Auth.
func RequireOwnerOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := domain.IdentityFromContext(c.Request().Context())
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !id.IsAdmin && id.UserID != c.Param(param) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
