package mongo

import (
	"time"

	"github.com/bookingin/booking-api/internal/core/domain"
)

const (
	collectionUsers      = "users"
	collectionProperties = "properties"
	collectionRooms      = "rooms"
	collectionReviews    = "reviews"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	Email        string    `bson:"email"`
	Phone        string    `bson:"phone"`
	PasswordHash string    `bson:"password_hash"`
	IsAdmin      bool      `bson:"is_admin"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func userDocFromEntity(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func (d userDoc) toEntity() *domain.User {
	return &domain.User{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type propertyDoc struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Type          string    `bson:"type"`
	City          string    `bson:"city"`
	Address       string    `bson:"address"`
	Description   string    `bson:"description"`
	CheapestPrice int       `bson:"cheapest_price"`
	Featured      bool      `bson:"featured"`
	Rating        float64   `bson:"rating"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func propertyDocFromEntity(p *domain.Property) propertyDoc {
	return propertyDoc{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		City:          p.City,
		Address:       p.Address,
		Description:   p.Description,
		CheapestPrice: p.CheapestPrice,
		Featured:      p.Featured,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
}

func (d propertyDoc) toEntity() *domain.Property {
	return &domain.Property{
		ID:            d.ID,
		Name:          d.Name,
		Type:          d.Type,
		City:          d.City,
		Address:       d.Address,
		Description:   d.Description,
		CheapestPrice: d.CheapestPrice,
		Featured:      d.Featured,
		Rating:        d.Rating,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

type roomDoc struct {
	ID          string    `bson:"_id"`
	PropertyID  string    `bson:"property_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Price       int       `bson:"price"`
	MaxPeople   int       `bson:"max_people"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func roomDocFromEntity(r *domain.Room) roomDoc {
	return roomDoc{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		MaxPeople:   r.MaxPeople,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func (d roomDoc) toEntity() *domain.Room {
	return &domain.Room{
		ID:          d.ID,
		PropertyID:  d.PropertyID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		MaxPeople:   d.MaxPeople,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type reviewDoc struct {
	ID         string    `bson:"_id"`
	PropertyID string    `bson:"property_id"`
	UserID     string    `bson:"user_id"`
	Rating     int       `bson:"rating"`
	Comment    string    `bson:"comment"`
	CreatedAt  time.Time `bson:"created_at"`
}

func reviewDocFromEntity(r *domain.Review) reviewDoc {
	return reviewDoc{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

func (d reviewDoc) toEntity() *domain.Review {
	return &domain.Review{
		ID:         d.ID,
		PropertyID: d.PropertyID,
		UserID:     d.UserID,
		Rating:     d.Rating,
		Comment:    d.Comment,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}
