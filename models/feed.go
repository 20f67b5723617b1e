package models

import (
	"time"

	"gorm.io/gorm"
)

type FeedSchedule struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	ChildID     string     `json:"childId" gorm:"type:uuid;index"`
	ParentID    string     `json:"parentId" gorm:"type:uuid;index"`
	Title       string     `json:"title"`
	Date        time.Time  `json:"date"`
	RepeatDaily bool       `json:"repeatDaily" gorm:"default:true"`
	InUsed      bool       `json:"inUsed" gorm:"default:false"`
	FeedSlots   []FeedSlot `json:"feedSlots" gorm:"foreignKey:ScheduleID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (f *FeedSchedule) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}

// FeedSlot is one planned feed. ActivityID points at the latest logged feed.
type FeedSlot struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	ScheduleID string    `json:"scheduleId" gorm:"type:uuid;index"`
	FeedTime   time.Time `json:"feedTime"`
	FeedType   string    `json:"feedType"`
	FeedName   string    `json:"feedName"`
	Amount     float64   `json:"amount"`
	ActivityID *string   `json:"activityId" gorm:"type:uuid"`
	Activity   *Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID"`
}

func (f *FeedSlot) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}
