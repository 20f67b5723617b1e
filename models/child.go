package models

import (
	"time"

	"gorm.io/gorm"
)

type ChildType string

const (
	ChildBoy  ChildType = "BOY"
	ChildGirl ChildType = "GIRL"
)

type Child struct {
	ID       string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string     `json:"name"`
	Avatar   *string    `json:"avatar,omitempty"`
	Type     ChildType  `json:"type"`
	Birthday *time.Time `json:"birthday"`
	Height   float64    `json:"height"`
	Weight   float64    `json:"weight"`
	Parents  []Parent   `json:"-" gorm:"many2many:parent_children"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Child) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// GrowthEntry is one height/weight measurement. Height is in centimetres.
type GrowthEntry struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	ChildID   string    `json:"childId" gorm:"type:uuid;index"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g *GrowthEntry) BeforeCreate(tx *gorm.DB) error {
	assignID(&g.ID)
	return nil
}
