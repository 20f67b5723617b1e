package repositories

import (
	"context"

	"BabyNest/models"
)

type FeedRepository interface {
	CreateSchedule(ctx context.Context, schedule *models.FeedSchedule) error
	ListSchedules(ctx context.Context, childID, title string) ([]models.FeedSchedule, error)
	FindSchedule(ctx context.Context, childID, scheduleID string) (models.FeedSchedule, error)
	ActiveSchedule(ctx context.Context, childID string) (*models.FeedSchedule, error)
	// SwitchActive leaves exactly the given schedule in use for the child.
	SwitchActive(ctx context.Context, childID, scheduleID string) error
	DeleteSchedule(ctx context.Context, childID, scheduleID string) error
	FindSlot(ctx context.Context, childID, slotID string) (models.FeedSlot, error)
	// LogFeed inserts the FEED activity and links it to the slot.
	LogFeed(ctx context.Context, activity *models.Activity, slotID string) error
}
