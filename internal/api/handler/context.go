package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookingin/booking-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. Missing
// claims mean the route was wired without Auth.
func ctxClaims(c echo.Context) (domain.TokenClaims, error) {
	claims, ok := domain.ClaimsFromContext(c.Request().Context())
	if !ok || claims.UserID == "" {
		return domain.TokenClaims{}, domain.ErrUnauthenticated
	}
	return claims, nil
}

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
