package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type RoomService struct {
	properties ports.PropertyRepository
	rooms      ports.RoomRepository
	logger     zerolog.Logger
}

func NewRoomService(properties ports.PropertyRepository, rooms ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{properties: properties, rooms: rooms, logger: logger}
}

func (s *RoomService) List(ctx context.Context, propertyID string) ([]*domain.Room, error) {
	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return s.rooms.ListByProperty(ctx, propertyID)
}

func (s *RoomService) Create(ctx context.Context, propertyID string, in ports.RoomInput) (*domain.Room, error) {
	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r := &domain.Room{
		ID:          uuid.NewString(),
		PropertyID:  propertyID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		MaxPeople:   in.MaxPeople,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.rooms.Create(ctx, r); err != nil {
		s.logger.Error().Err(err).Str("property_id", propertyID).Msg("failed to create room")
		return nil, err
	}

	s.logger.Info().Str("property_id", propertyID).Str("room_id", r.ID).Msg("room created")
	return r, nil
}

// Update fails with domain.ErrRoomNotFound when the room exists but belongs
// to another property.
func (s *RoomService) Update(ctx context.Context, propertyID, roomID string, in ports.RoomInput) (*domain.Room, error) {
	r, err := s.rooms.FindByID(ctx, propertyID, roomID)
	if err != nil {
		return nil, err
	}

	r.Title = in.Title
	r.Description = in.Description
	r.Price = in.Price
	r.MaxPeople = in.MaxPeople
	r.UpdatedAt = time.Now().UTC()

	if err := s.rooms.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RoomService) Delete(ctx context.Context, propertyID, roomID string) error {
	return s.rooms.Delete(ctx, propertyID, roomID)
}
