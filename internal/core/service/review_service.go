package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type ReviewService struct {
	properties ports.PropertyRepository
	reviews    ports.ReviewRepository
	log        zerolog.Logger
}

func NewReviewService(properties ports.PropertyRepository, reviews ports.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{properties: properties, reviews: reviews, log: log}
}

func (s *ReviewService) List(ctx context.Context, propertyID string) ([]*domain.Review, error) {
	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return s.reviews.ListByProperty(ctx, propertyID)
}

// Create stores the review and refreshes the property's average rating.
func (s *ReviewService) Create(ctx context.Context, in ports.ReviewInput) (*domain.Review, error) {
	if _, err := s.properties.FindByID(ctx, in.PropertyID); err != nil {
		return nil, err
	}

	r := &domain.Review{
		ID:         uuid.NewString(),
		PropertyID: in.PropertyID,
		UserID:     in.UserID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}

	// Rating refresh is non-fatal on failure.
	avg, err := s.reviews.AverageRating(ctx, in.PropertyID)
	if err != nil {
		s.log.Warn().Err(err).Str("property_id", in.PropertyID).Msg("failed to compute rating")
	} else if err := s.properties.UpdateRating(ctx, in.PropertyID, roundRating(avg)); err != nil {
		s.log.Warn().Err(err).Str("property_id", in.PropertyID).Msg("failed to update rating")
	}

	s.log.Info().
		Str("property_id", in.PropertyID).
		Str("user_id", in.UserID).
		Int("rating", in.Rating).
		Msg("review created")

	return r, nil
}

// roundRating keeps one decimal place.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
