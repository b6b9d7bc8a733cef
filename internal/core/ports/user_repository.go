package ports

import (
	"context"

	"github.com/bookingin/booking-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Lookups of a missing record return domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update overwrites every mutable column of the stored record.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
