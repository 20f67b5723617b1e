package models

import (
	"time"

	"gorm.io/gorm"
)

type ParentType string

const (
	ParentFather ParentType = "FATHER"
	ParentMother ParentType = "MOTHER"
)

type Parent struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"uniqueIndex"`
	Password    string     `json:"-"`
	Type        ParentType `json:"type"`
	Avatar      *string    `json:"avatar,omitempty"`
	IsVerified  bool       `json:"isVerified" gorm:"default:false"`
	GoogleUID   *string    `json:"-" gorm:"uniqueIndex"`
	DeviceToken *string    `json:"-"`
	Children    []Child    `json:"children,omitempty" gorm:"many2many:parent_children"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Parent) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
