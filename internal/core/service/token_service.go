package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bookingin/booking-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// accessClaims is the JWT payload: the caller identity plus registered claims.
type accessClaims struct {
	UserID  string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens with a shared secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL reports how long freshly signed tokens stay valid.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Sign issues a token for id that expires after the configured TTL.
func (s *TokenService) Sign(id domain.Identity) (string, error) {
	now := s.now()
	claims := accessClaims{
		UserID:  id.UserID,
		IsAdmin: id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry and decodes the identity.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := &accessClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{
		Identity:  domain.Identity{UserID: claims.UserID, IsAdmin: claims.IsAdmin},
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
