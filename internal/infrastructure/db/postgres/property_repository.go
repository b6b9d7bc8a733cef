package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookingin/booking-api/internal/core/domain"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := propertyModelFromEntity(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row propertyModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return row.toEntity(), nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []propertyModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	out := make([]*domain.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&propertyModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":           p.Name,
		"type":           p.Type,
		"city":           p.City,
		"address":        p.Address,
		"description":    p.Description,
		"cheapest_price": p.CheapestPrice,
		"featured":       p.Featured,
		"updated_at":     p.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("update property: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) UpdateRating(ctx context.Context, id string, rating float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&propertyModel{}).Where("id = ?", id).Update("rating", rating)
	if res.Error != nil {
		return fmt.Errorf("update property rating: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// Delete removes the property with its rooms and reviews in one transaction.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&reviewModel{}).Error; err != nil {
			return fmt.Errorf("delete property reviews: %w", err)
		}
		if err := tx.Where("property_id = ?", id).Delete(&roomModel{}).Error; err != nil {
			return fmt.Errorf("delete property rooms: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&propertyModel{})
		if res.Error != nil {
			return fmt.Errorf("delete property: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrPropertyNotFound
		}
		return nil
	})
}
