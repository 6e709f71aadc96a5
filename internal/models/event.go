package models

import "time"

// Event is a user-created event. All descriptive fields are free-form
// strings; Date is not parsed server-side.
type Event struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	Owner       *User  `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	// User is not persisted; attached at query time by the owner enricher.
	User      *UserSummary `gorm:"-" json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
