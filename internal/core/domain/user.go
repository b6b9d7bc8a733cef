package domain

import "time"

// User models a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch carries the profile fields a caller may change. Empty values mean
// "leave unchanged".
type UserPatch struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}
