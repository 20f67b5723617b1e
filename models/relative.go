package models

import (
	"time"

	"gorm.io/gorm"
)

// ChildRelation is a relative account created by a parent for one child.
type ChildRelation struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"uniqueIndex:idx_child_relations_email,where:is_deleted = false"`
	Password    string     `json:"-"`
	Relation    string     `json:"relation"`
	DateOfBirth time.Time  `json:"dateOfBirth"`
	DateOfDeath *time.Time `json:"dateOfDeath,omitempty"`
	ChildID     string     `json:"childId" gorm:"type:uuid;index"`
	ParentID    string     `json:"parentId" gorm:"type:uuid;index"`
	IsVerified  bool       `json:"isVerified" gorm:"default:true"`
	DeviceToken *string    `json:"-"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *ChildRelation) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}
