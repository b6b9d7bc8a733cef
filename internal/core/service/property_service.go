package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

func (s *PropertyService) List(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) Create(ctx context.Context, in ports.PropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	p := &domain.Property{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	applyPropertyInput(p, in)

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", p.ID).Str("city", p.City).Msg("property created")
	return p, nil
}

// Update replaces every editable field. Rating is derived from reviews and is
// left untouched.
func (s *PropertyService) Update(ctx context.Context, id string, in ports.PropertyInput) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPropertyInput(p, in)
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return nil
}

func applyPropertyInput(p *domain.Property, in ports.PropertyInput) {
	p.Name = in.Name
	p.Type = in.Type
	p.City = in.City
	p.Address = in.Address
	p.Description = in.Description
	p.CheapestPrice = in.CheapestPrice
	p.Featured = in.Featured
}
