package models

import "time"

// Post is a user-authored text post. OwnerID is a foreign key to users.id,
// enforced at the database level; deleting a referenced user is restricted.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Body    string `gorm:"not null" json:"body"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	// User is not persisted; attached at query time by the owner enricher.
	User      *UserSummary `gorm:"-" json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
