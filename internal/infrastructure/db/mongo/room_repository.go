package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookingin/booking-api/internal/core/domain"
)

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, roomDocFromEntity(room)); err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, propertyID, roomID string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roomDoc
	err := r.col.FindOne(ctx, bson.M{"_id": roomID, "property_id": propertyID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *RoomRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"property_id": propertyID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	var docs []roomDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	out := make([]*domain.Room, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": room.ID, "property_id": room.PropertyID},
		bson.M{"$set": bson.M{
			"title":       room.Title,
			"description": room.Description,
			"price":       room.Price,
			"max_people":  room.MaxPeople,
			"updated_at":  room.UpdatedAt.UTC(),
		}})
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, propertyID, roomID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": roomID, "property_id": propertyID})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}
