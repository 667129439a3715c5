package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document carries the store-generated string ID plus timestamps shared by
// every persisted entity. IDs are assigned on create, never by callers.
type Document struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
