package ports

import (
	"context"

	"github.com/bookingin/booking-api/internal/core/domain"
)

// PropertyInput holds the editable fields of a property.
type PropertyInput struct {
	Name          string
	Type          string
	City          string
	Address       string
	Description   string
	CheapestPrice int
	Featured      bool
}

// RoomInput holds the editable fields of a room.
type RoomInput struct {
	Title       string
	Description string
	Price       int
	MaxPeople   int
}

// ReviewInput is a new review. UserID comes from the caller identity, never
// from the request body.
type ReviewInput struct {
	PropertyID string
	UserID     string
	Rating     int
	Comment    string
}

type PropertyService interface {
	List(ctx context.Context) ([]*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, input PropertyInput) (*domain.Property, error)
	Update(ctx context.Context, id string, input PropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
}

type RoomService interface {
	List(ctx context.Context, propertyID string) ([]*domain.Room, error)
	Create(ctx context.Context, propertyID string, input RoomInput) (*domain.Room, error)
	Update(ctx context.Context, propertyID, roomID string, input RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, propertyID, roomID string) error
}

type ReviewService interface {
	List(ctx context.Context, propertyID string) ([]*domain.Review, error)
	Create(ctx context.Context, input ReviewInput) (*domain.Review, error)
}
