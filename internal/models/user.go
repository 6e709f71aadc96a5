// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. The password column holds only a
// bcrypt hash and is excluded from every JSON response.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile is the public shape of a user returned by the API.
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserSummary is the denormalized owner attribution attached to posts and
// events on read.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() *UserProfile {
	return &UserProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Summary returns the owner attribution projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{Name: u.Name, Email: u.Email}
}
