package models

import (
	"time"

	"gorm.io/gorm"
)

type QueryStatus string

const (
	QueryPending    QueryStatus = "PENDING"
	QueryInProgress QueryStatus = "IN_PROGRESS"
	QueryResolved   QueryStatus = "RESOLVED"
	QueryClosed     QueryStatus = "CLOSED"
)

func (s QueryStatus) Valid() bool {
	switch s {
	case QueryPending, QueryInProgress, QueryResolved, QueryClosed:
		return true
	}
	return false
}

type QueryPriority string

const (
	PriorityLow    QueryPriority = "LOW"
	PriorityMedium QueryPriority = "MEDIUM"
	PriorityHigh   QueryPriority = "HIGH"
)

func (p QueryPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SupportQuery is a question a parent sends to the admins.
type SupportQuery struct {
	ID        string        `json:"id" gorm:"type:uuid;primaryKey"`
	ParentID  string        `json:"parentId" gorm:"type:uuid;index"`
	Parent    *Parent       `json:"parent,omitempty"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    QueryStatus   `json:"status" gorm:"default:PENDING;index"`
	Priority  QueryPriority `json:"priority" gorm:"default:LOW"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (q *SupportQuery) BeforeCreate(tx *gorm.DB) error {
	assignID(&q.ID)
	return nil
}
