package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is an in-app notification addressed to a single owner.
type Message struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerRefs   `gorm:"embedded"`
	IsRead      bool      `json:"isRead" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}
