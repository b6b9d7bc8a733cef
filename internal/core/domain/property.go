package domain

import "time"

// Property is a bookable place (hotel, apartment, villa, ...).
type Property struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	City          string    `json:"city"`
	Address       string    `json:"address"`
	Description   string    `json:"description"`
	CheapestPrice int       `json:"cheapestPrice"`
	Featured      bool      `json:"featured"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Room belongs to exactly one property.
type Room struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	MaxPeople   int       `json:"maxPeople"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Review is a user's rating of a property.
type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}
