package models

import "time"

// Tip is one tip-of-the-day line for a child of the given age in days.
type Tip struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Day           int       `json:"day" gorm:"index"`
	Text          string    `json:"text"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" gorm:"autoUpdateTime"`
}
