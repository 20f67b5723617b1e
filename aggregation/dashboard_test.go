package aggregation

import (
	"testing"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboardWithEmptyRecords(t *testing.T) {
	d := BuildDashboard(ChildRecords{}, time.Now())

	assert.Nil(t, d.GrowthSummary.Latest)
	assert.Nil(t, d.LatestSleep)
	assert.Nil(t, d.CurrentFeed)
	assert.Equal(t, 0, d.TotalSleepMinutesLast7Days)
	assert.Nil(t, d.Milestones.Next)
	assert.Equal(t, 0, d.Vaccinations.RemainingVaccinations)
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)
	nap := endedSleep(models.SleepNap, now.Add(-3*time.Hour), 60)
	records := ChildRecords{
		Growth:      []models.GrowthEntry{{ID: "g", Weight: 16, Height: 100, CreatedAt: now}},
		LatestSleep: &nap,
		Sleeps: []models.BabySleep{
			nap,
			endedSleep(models.SleepNight, now.AddDate(0, 0, -2), 480),
		},
		Schedules: []models.FeedSchedule{
			{ID: "old", Title: "Old"},
			{ID: "cur", Title: "Current", InUsed: true, FeedSlots: []models.FeedSlot{
				{ID: "s1", Activity: &models.Activity{FeedTime: timePtr(now.Add(-time.Hour)), FeedAmount: floatPtr(80)}},
				{ID: "s2"},
			}},
		},
	}

	d := BuildDashboard(records, now)

	assert.Equal(t, BMIHealthy, *d.GrowthSummary.BMIStatus)
	assert.Equal(t, 540, d.TotalSleepMinutesLast7Days)
	assert.Equal(t, 60, d.TodaySleep.TotalNapSleep)
	assert.Equal(t, models.SleepNap, d.LatestSleep.SleepType)
	assert.Equal(t, "Current", d.CurrentFeed.Title)
	assert.Equal(t, 2, d.CurrentFeed.FeedPerDay)
	assert.Equal(t, 1, d.CurrentFeed.Progress.TotalTaken)
	assert.Equal(t, 80.0, d.CurrentFeed.Progress.TotalAmount)
}

func TestBuildDashboardKeepsOlderLatestSleep(t *testing.T) {
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)
	old := endedSleep(models.SleepNight, now.AddDate(0, 0, -20), 420)

	d := BuildDashboard(ChildRecords{LatestSleep: &old}, now)

	require.NotNil(t, d.LatestSleep)
	assert.Equal(t, old.SleepTime, d.LatestSleep.SleepTime)
	assert.Equal(t, 0, d.TotalSleepMinutesLast7Days)
}
