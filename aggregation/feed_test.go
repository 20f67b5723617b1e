package aggregation

import (
	"testing"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeFeedProgress(t *testing.T) {
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)
	today := DayWindow(now)

	schedule := models.FeedSchedule{
		ID:    "sched-1",
		Title: "Weekday",
		FeedSlots: []models.FeedSlot{
			{ID: "s1", Amount: 120, Activity: &models.Activity{FeedTime: timePtr(now.Add(-6 * time.Hour)), FeedAmount: floatPtr(110)}},
			{ID: "s2", Amount: 120, Activity: &models.Activity{FeedTime: timePtr(now.Add(-2 * time.Hour)), FeedAmount: floatPtr(90)}},
			{ID: "s3", Amount: 120, Activity: &models.Activity{FeedTime: timePtr(now.AddDate(0, 0, -1)), FeedAmount: floatPtr(100)}},
			{ID: "s4", Amount: 120},
		},
	}

	progress := ComputeFeedProgress(schedule, today)

	assert.Equal(t, "sched-1", progress.ScheduleID)
	assert.Equal(t, 4, progress.TotalPlanned)
	assert.Equal(t, 2, progress.TotalTaken)
	assert.Equal(t, 200.0, progress.TotalAmount)
	assert.Nil(t, progress.Slots[2].Activity, "yesterday's feed must not count for today")
	assert.NotNil(t, schedule.FeedSlots[2].Activity, "input schedule is left untouched")
}

func TestActiveScheduleNone(t *testing.T) {
	assert.Nil(t, ActiveSchedule([]models.FeedSchedule{{ID: "a"}, {ID: "b"}}))
	active := ActiveSchedule([]models.FeedSchedule{{ID: "a"}, {ID: "b", InUsed: true}})
	assert.Equal(t, "b", active.ID)
}

func TestFeedsWithin(t *testing.T) {
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{ID: "today", Type: models.ActivityFeed, FeedTime: timePtr(now)},
		{ID: "yesterday", Type: models.ActivityFeed, FeedTime: timePtr(now.AddDate(0, 0, -1))},
		{ID: "sleep", Type: models.ActivitySleep},
	}

	feeds := FeedsWithin(activities, DayWindow(now))

	assert.Len(t, feeds, 1)
	assert.Equal(t, "today", feeds[0].ID)
}
