package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookingin/booking-api/internal/core/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := roomModelFromEntity(room)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, propertyID, roomID string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row roomModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND property_id = ?", roomID, propertyID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return row.toEntity(), nil
}

func (r *RoomRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []roomModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := make([]*domain.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("id = ? AND property_id = ?", room.ID, room.PropertyID).
		Updates(map[string]any{
			"title":       room.Title,
			"description": room.Description,
			"price":       room.Price,
			"max_people":  room.MaxPeople,
			"updated_at":  room.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, propertyID, roomID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Where("id = ? AND property_id = ?", roomID, propertyID).
		Delete(&roomModel{})
	if res.Error != nil {
		return fmt.Errorf("delete room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}
