package postgres

import (
	"time"

	"github.com/bookingin/booking-api/internal/core/domain"
)

type userModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Phone        string    `gorm:"column:phone"`
	PasswordHash string    `gorm:"column:password_hash"`
	IsAdmin      bool      `gorm:"column:is_admin"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromEntity(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m userModel) toEntity() *domain.User {
	return &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type propertyModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Type          string    `gorm:"column:type"`
	City          string    `gorm:"column:city"`
	Address       string    `gorm:"column:address"`
	Description   string    `gorm:"column:description"`
	CheapestPrice int       `gorm:"column:cheapest_price"`
	Featured      bool      `gorm:"column:featured"`
	Rating        float64   `gorm:"column:rating"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (propertyModel) TableName() string {
	return "properties"
}

func propertyModelFromEntity(p *domain.Property) propertyModel {
	return propertyModel{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		City:          p.City,
		Address:       p.Address,
		Description:   p.Description,
		CheapestPrice: p.CheapestPrice,
		Featured:      p.Featured,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m propertyModel) toEntity() *domain.Property {
	return &domain.Property{
		ID:            m.ID,
		Name:          m.Name,
		Type:          m.Type,
		City:          m.City,
		Address:       m.Address,
		Description:   m.Description,
		CheapestPrice: m.CheapestPrice,
		Featured:      m.Featured,
		Rating:        m.Rating,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type roomModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	PropertyID  string    `gorm:"column:property_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Price       int       `gorm:"column:price"`
	MaxPeople   int       `gorm:"column:max_people"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string {
	return "rooms"
}

func roomModelFromEntity(r *domain.Room) roomModel {
	return roomModel{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		MaxPeople:   r.MaxPeople,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m roomModel) toEntity() *domain.Room {
	return &domain.Room{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		MaxPeople:   m.MaxPeople,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type reviewModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	PropertyID string    `gorm:"column:property_id;index"`
	UserID     string    `gorm:"column:user_id"`
	Rating     int       `gorm:"column:rating"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string {
	return "reviews"
}

func reviewModelFromEntity(r *domain.Review) reviewModel {
	return reviewModel{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func (m reviewModel) toEntity() *domain.Review {
	return &domain.Review{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		UserID:     m.UserID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}
