package models

import (
	"time"

	"github.com/google/uuid"
)

// SoftDelete is embedded by every entity that is never physically removed.
type SoftDelete struct {
	IsDeleted bool       `json:"isDeleted" gorm:"default:false;index"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// MarkDeleted flags the row as deleted at the given instant.
func (s *SoftDelete) MarkDeleted(at time.Time) {
	s.IsDeleted = true
	s.DeletedAt = &at
}

// SoftDeleteColumns is the update map used by bulk cascades.
func SoftDeleteColumns(at time.Time) map[string]interface{} {
	return map[string]interface{}{"is_deleted": true, "deleted_at": at}
}

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
