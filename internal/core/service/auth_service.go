package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

// AuthService implements registration, login and logout.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	revoker ports.TokenRevoker
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, revoker ports.TokenRevoker, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoker: revoker, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)

	n, err := s.users.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(domain.Identity{UserID: user.ID, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout denylists the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims domain.TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt)
	if s.revoker == nil || claims.TokenID == "" || ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return err
	}

	s.log.Info().Str("user_id", claims.UserID).Msg("token revoked")
	return nil
}

// EnsureAdmin promotes the account with the given email to admin, creating it
// when it does not exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user, err = s.Register(ctx, ports.RegisterInput{
			FirstName: "Admin",
			LastName:  "BookingIn",
			Email:     email,
			Password:  password,
		})
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case user.IsAdmin:
		return user, nil
	}

	user.IsAdmin = true
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("admin account ensured")
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
