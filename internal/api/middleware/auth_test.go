package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/service"
)

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[tokenID], nil
}

func newTokens() *service.TokenService {
	return service.NewTokenService("secret", time.Hour)
}

func signed(t *testing.T, id domain.Identity) string {
	t.Helper()
	token, err := newTokens().Sign(id)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newCtx(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	c, rec := newCtx(signed(t, domain.Identity{UserID: "user-1", IsAdmin: true}))

	called := false
	mw := Auth(newTokens(), &stubRevocations{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		id, ok := domain.IdentityFromContext(c.Request().Context())
		if !ok {
			t.Fatalf("identity not set")
		}
		if id.UserID != "user-1" || !id.IsAdmin {
			t.Fatalf("unexpected identity: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	c, _ := newCtx("")

	mw := Auth(newTokens(), nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthMiddleware_AuthorizationHeaderIsIgnored(t *testing.T) {
	c, _ := newCtx("")
	c.Request().Header.Set("Authorization", "Bearer "+signed(t, domain.Identity{UserID: "user-1"}))

	mw := Auth(newTokens(), nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	c, _ := newCtx("salah")

	mw := Auth(newTokens(), nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	token := signed(t, domain.Identity{UserID: "user-1"})
	claims, _ := newTokens().Verify(token)
	c, _ := newCtx(token)

	mw := Auth(newTokens(), &stubRevocations{revoked: map[string]bool{claims.TokenID: true}}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_RevocationCheckErrorAcceptsToken(t *testing.T) {
	c, _ := newCtx(signed(t, domain.Identity{UserID: "user-1"}))

	called := false
	mw := Auth(newTokens(), &stubRevocations{err: errors.New("redis timeout")}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("expected request to proceed when the denylist is unreachable")
	}
}
