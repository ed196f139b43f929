package models

import (
	"time"

	"moneta/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Two records are the same
// entity iff their IDs are equal; field values never participate in identity.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records unless the caller
// supplied an ID.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
