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

type PropertyRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{db: db, col: db.Collection(collectionProperties)}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, propertyDocFromEntity(p)); err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc propertyDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	var docs []propertyDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	out := make([]*domain.Property, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.set(ctx, p.ID, bson.M{
		"name":           p.Name,
		"type":           p.Type,
		"city":           p.City,
		"address":        p.Address,
		"description":    p.Description,
		"cheapest_price": p.CheapestPrice,
		"featured":       p.Featured,
		"updated_at":     p.UpdatedAt.UTC(),
	})
}

func (r *PropertyRepository) UpdateRating(ctx context.Context, id string, rating float64) error {
	return r.set(ctx, id, bson.M{"rating": rating})
}

func (r *PropertyRepository) set(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// Delete removes the property first, then its rooms and reviews.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}

	for _, name := range []string{collectionRooms, collectionReviews} {
		if _, err := r.db.Collection(name).DeleteMany(ctx, bson.M{"property_id": id}); err != nil {
			return fmt.Errorf("delete property %s: %w", name, err)
		}
	}
	return nil
}
