package ports

import (
	"context"

	"github.com/bookingin/booking-api/internal/core/domain"
)

// PropertyRepository defines persistence operations for properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	// Delete removes the property together with its rooms and reviews.
	Delete(ctx context.Context, id string) error
	UpdateRating(ctx context.Context, id string, rating float64) error
}

// RoomRepository defines persistence operations for rooms. Every lookup is
// scoped to the owning property.
type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	FindByID(ctx context.Context, propertyID, roomID string) (*domain.Room, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	Delete(ctx context.Context, propertyID, roomID string) error
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.Review, error)
	// AverageRating returns 0 for a property without reviews.
	AverageRating(ctx context.Context, propertyID string) (float64, error)
}
