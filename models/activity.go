package models

import (
	"time"

	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivitySleep       ActivityType = "SLEEP"
	ActivityFeed        ActivityType = "FEED"
	ActivityTemperature ActivityType = "TEMPERATURE"
)

type SleepType string

const (
	SleepNight SleepType = "NIGHT"
	SleepNap   SleepType = "NAP"
)

// Activity is the typed record a child's log entries hang off. FEED rows carry
// the feed columns directly.
type Activity struct {
	ID         string       `json:"id" gorm:"type:uuid;primaryKey"`
	ChildID    string       `json:"childId" gorm:"type:uuid;index"`
	Type       ActivityType `json:"type" gorm:"index"`
	OwnerRefs  `gorm:"embedded"`
	FeedTime   *time.Time `json:"feedTime,omitempty"`
	FeedAmount *float64   `json:"feedAmount,omitempty"`
	FeedType   *string    `json:"feedType,omitempty"`
	FeedName   *string    `json:"feedName,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// BabySleep is open while AwakeTime is nil; Duration is set in minutes when it ends.
type BabySleep struct {
	ID         string     `json:"id" gorm:"type:uuid;primaryKey"`
	ActivityID string     `json:"activityId" gorm:"type:uuid;index"`
	ChildID    string     `json:"childId" gorm:"type:uuid;index"`
	SleepType  SleepType  `json:"sleepType"`
	SleepTime  time.Time  `json:"sleepTime" gorm:"index"`
	AwakeTime  *time.Time `json:"awakeTime"`
	Duration   *int       `json:"duration"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (s *BabySleep) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

func (s BabySleep) IsOpen() bool {
	return s.AwakeTime == nil
}

type TemperatureReading struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	ActivityID  string    `json:"activityId" gorm:"type:uuid;index"`
	ChildID     string    `json:"childId" gorm:"type:uuid;index"`
	Temperature float64   `json:"temperature"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (t *TemperatureReading) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}
