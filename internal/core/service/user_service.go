package service

import (
	"context"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// profile is the subset of a user record a patch may touch.
type profile struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
}

// Update merges the non-empty fields of patch into the stored user. A new
// password is hashed before it reaches the repository.
func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := profile{
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
		Email:     normalizeEmail(patch.Email),
		Phone:     patch.Phone,
	}

	if changes.Email != "" && changes.Email != user.Email {
		n, err := s.repo.CountByEmail(ctx, changes.Email)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, domain.ErrEmailTaken
		}
	}

	if patch.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = string(hash)
	}

	current := profile{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
	}
	if err := mergo.Merge(&current, changes, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge user patch: %w", err)
	}

	user.FirstName = current.FirstName
	user.LastName = current.LastName
	user.Email = current.Email
	user.Phone = current.Phone
	user.PasswordHash = current.PasswordHash
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Bool("password_changed", patch.Password != "").Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
