package aggregation

import (
	"testing"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func endedSleep(kind models.SleepType, start time.Time, minutes int) models.BabySleep {
	awake := start.Add(time.Duration(minutes) * time.Minute)
	return models.BabySleep{
		SleepType: kind,
		SleepTime: start,
		AwakeTime: &awake,
		Duration:  intPtr(SleepDuration(start, awake)),
		CreatedAt: start,
	}
}

func TestSleepDurationRounds(t *testing.T) {
	start := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 90, SleepDuration(start, start.Add(90*time.Minute)))
	assert.Equal(t, 2, SleepDuration(start, start.Add(90*time.Second)))
	assert.Equal(t, 1, SleepDuration(start, start.Add(89*time.Second)))
}

func TestSummarizeSleepSplitsByType(t *testing.T) {
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	sessions := []models.BabySleep{
		endedSleep(models.SleepNap, day.Add(10*time.Hour), 45),
		endedSleep(models.SleepNap, day.Add(14*time.Hour), 30),
		endedSleep(models.SleepNight, day.Add(20*time.Hour), 240),
	}

	summary := SummarizeSleep(sessions, DayWindow(day.Add(12*time.Hour)))

	assert.Equal(t, 75, summary.TotalNapSleep)
	assert.Equal(t, 240, summary.TotalNightSleep)
	assert.Equal(t, summary.TotalNapSleep+summary.TotalNightSleep, summary.TotalSleepMinutes)
}

func TestSummarizeSleepOverlapWindow(t *testing.T) {
	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	window := DayWindow(day)

	crossesMidnight := endedSleep(models.SleepNight, day.Add(-2*time.Hour), 480)
	endedYesterday := endedSleep(models.SleepNap, day.Add(-5*time.Hour), 60)
	tomorrow := endedSleep(models.SleepNap, day.AddDate(0, 0, 1), 60)
	open := models.BabySleep{SleepType: models.SleepNap, SleepTime: day.Add(9 * time.Hour)}

	sessions := []models.BabySleep{crossesMidnight, endedYesterday, tomorrow, open}

	assert.True(t, window.Overlaps(crossesMidnight))
	assert.False(t, window.Overlaps(endedYesterday))
	assert.False(t, window.Overlaps(tomorrow))
	assert.True(t, window.Overlaps(open))
	assert.Len(t, FilterOverlapping(sessions, window), 2)

	summary := SummarizeSleep(sessions, window)
	assert.Equal(t, 480, summary.TotalNightSleep)
	assert.Equal(t, 0, summary.TotalNapSleep)
}

func TestSummarizeSleepIgnoresNegativeDurations(t *testing.T) {
	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	bad := endedSleep(models.SleepNap, day.Add(3*time.Hour), 10)
	bad.Duration = intPtr(-10)

	summary := SummarizeSleep([]models.BabySleep{bad}, DayWindow(day))

	assert.Equal(t, 0, summary.TotalSleepMinutes)
}

func TestTotalSleepSince(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	sessions := []models.BabySleep{
		endedSleep(models.SleepNight, now.AddDate(0, 0, -8), 600),
		endedSleep(models.SleepNight, now.AddDate(0, 0, -6), 500),
		endedSleep(models.SleepNap, now.AddDate(0, 0, -1), 40),
		{SleepType: models.SleepNap, SleepTime: now, CreatedAt: now},
	}

	assert.Equal(t, 540, TotalSleepSince(sessions, now.AddDate(0, 0, -7)))
}

func TestDayWindowUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2025, 5, 2, 1, 0, 0, 0, loc)

	w := DayWindow(now)

	assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2025, 5, 3, 0, 0, 0, 0, loc), w.End)
	assert.True(t, w.Contains(w.Start))
	assert.False(t, w.Contains(w.End))
}
