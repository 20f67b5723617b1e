package models

import (
	"time"

	"gorm.io/gorm"
)

type Milestone struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string         `json:"title"`
	Month         int            `json:"month" gorm:"index"`
	SubMilestones []SubMilestone `json:"subMilestones" gorm:"foreignKey:MilestoneID"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}

type SubMilestone struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	MilestoneID string `json:"milestoneId" gorm:"type:uuid;index"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *SubMilestone) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

type ChildMilestoneProgress struct {
	ID             string     `json:"id" gorm:"type:uuid;primaryKey"`
	ChildID        string     `json:"childId" gorm:"type:uuid;uniqueIndex:idx_child_sub_milestone"`
	SubMilestoneID string     `json:"subMilestoneId" gorm:"type:uuid;uniqueIndex:idx_child_sub_milestone"`
	Achieved       bool       `json:"achieved"`
	AchievedAt     *time.Time `json:"achievedAt"`
	Note           *string    `json:"note"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (p *ChildMilestoneProgress) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
