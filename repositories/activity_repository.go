package repositories

import (
	"context"
	"time"

	"BabyNest/models"
)

type ActivityRepository interface {
	// StartSleep reuses the child's SLEEP activity for the day or creates one, then opens the session.
	StartSleep(ctx context.Context, sleep *models.BabySleep, owner models.Owner, dayStart, dayEnd time.Time) error
	FindSleep(ctx context.Context, childID, sleepID string) (models.BabySleep, error)
	FindOpenSleep(ctx context.Context, childID string) (*models.BabySleep, error)
	SaveSleep(ctx context.Context, sleep *models.BabySleep) error
	// ListSleeps returns sessions by sleep time ascending; a nil window returns all.
	ListSleeps(ctx context.Context, childID string, from, to *time.Time) ([]models.BabySleep, error)
	SleepsSince(ctx context.Context, childID string, since time.Time) ([]models.BabySleep, error)
	LatestSleep(ctx context.Context, childID string) (*models.BabySleep, error)

	CreateTemperature(ctx context.Context, reading *models.TemperatureReading, owner models.Owner) error
	ListTemperatures(ctx context.Context, childID string, from, to *time.Time) ([]models.TemperatureReading, error)
	LatestTemperature(ctx context.Context, childID string) (*models.TemperatureReading, error)

	FeedsBetween(ctx context.Context, childID string, from, to time.Time) ([]models.Activity, error)
}
