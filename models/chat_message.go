package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SenderParent        = "PARENT"
	SenderChildRelation = "CHILD_RELATION"
)

type Chat struct {
	ID           string            `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string            `json:"title"`
	CreatorID    string            `json:"creatorId" gorm:"type:uuid"`
	Participants []ChatParticipant `json:"chatParticipants"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt" gorm:"index"`
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// ChatParticipant holds either a parent or a relative.
type ChatParticipant struct {
	ID         string  `json:"id" gorm:"type:uuid;primaryKey"`
	ChatID     string  `json:"chatId" gorm:"type:uuid;index"`
	ParentID   *string `json:"parentId,omitempty" gorm:"type:uuid;index"`
	RelativeID *string `json:"relativeId,omitempty" gorm:"type:uuid;index"`
}

func (p *ChatParticipant) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func (p ChatParticipant) MemberID() string {
	if p.ParentID != nil {
		return *p.ParentID
	}
	if p.RelativeID != nil {
		return *p.RelativeID
	}
	return ""
}

type ChatMessage struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	ChatID     string    `json:"chatId" gorm:"type:uuid;index"`
	SenderID   string    `json:"senderId" gorm:"type:uuid"`
	SenderType string    `json:"senderType"`
	SenderName string    `json:"senderName"`
	Message    *string   `json:"message"`
	ImageURL   *string   `json:"imageUrl"`
	VoiceURL   *string   `json:"voiceUrl"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}
