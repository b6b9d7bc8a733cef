package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookingin/booking-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Errors is
// a single message or, for validation failures, the list of field messages.
type errorResponse struct {
	Errors any `json:"errors"`
}

type publicError struct {
	target  error
	code    int
	message string
}

// publicErrors maps domain errors to the status and message shown to clients.
var publicErrors = []publicError{
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "You are not authenticated"},
	{domain.ErrInvalidToken, http.StatusForbidden, "Token is not valid"},
	{domain.ErrForbidden, http.StatusForbidden, "You are not authorized"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
	{domain.ErrEmailTaken, http.StatusBadRequest, "email is already registered"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user is not found"},
	{domain.ErrPropertyNotFound, http.StatusNotFound, "property is not found"},
	{domain.ErrRoomNotFound, http.StatusNotFound, "room is not found"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and public message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"errors": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Errors: body})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Fields
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, err)
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, pe := range publicErrors {
		if errors.Is(err, pe.target) {
			return pe.code, pe.message
		}
	}

	logUnhandled(log, c, err)
	return http.StatusInternalServerError, "internal server error"
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
