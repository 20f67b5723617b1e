package aggregation

import (
	"math"
	"time"

	"BabyNest/models"
)

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow covers the calendar day of t in t's location.
func DayWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Overlaps reports whether a sleep session touches the window. Open sessions
// overlap every window that starts before "now".
func (w Window) Overlaps(s models.BabySleep) bool {
	if !s.SleepTime.Before(w.End) {
		return false
	}
	return s.AwakeTime == nil || s.AwakeTime.After(w.Start)
}

type SleepSummary struct {
	TotalNightSleep   int `json:"totalNightSleep"`
	TotalNapSleep     int `json:"totalNapSleep"`
	TotalSleepMinutes int `json:"totalSleepMinutes"`
}

// SleepDuration is the session length in whole minutes, rounded.
func SleepDuration(sleepTime, awakeTime time.Time) int {
	ms := awakeTime.Sub(sleepTime).Milliseconds()
	return int(math.Round(float64(ms) / 60000))
}

// SummarizeSleep totals the durations of the sessions overlapping w.
// Open sessions and negative durations contribute nothing.
func SummarizeSleep(sessions []models.BabySleep, w Window) SleepSummary {
	var summary SleepSummary
	for _, s := range sessions {
		if !w.Overlaps(s) {
			continue
		}
		d := sessionMinutes(s)
		switch s.SleepType {
		case models.SleepNight:
			summary.TotalNightSleep += d
		case models.SleepNap:
			summary.TotalNapSleep += d
		}
	}
	summary.TotalSleepMinutes = summary.TotalNightSleep + summary.TotalNapSleep
	return summary
}

// TotalSleepSince sums durations of sessions recorded at or after since.
func TotalSleepSince(sessions []models.BabySleep, since time.Time) int {
	total := 0
	for _, s := range sessions {
		if s.CreatedAt.Before(since) {
			continue
		}
		total += sessionMinutes(s)
	}
	return total
}

// FilterOverlapping keeps the sessions touching w, preserving order.
func FilterOverlapping(sessions []models.BabySleep, w Window) []models.BabySleep {
	out := make([]models.BabySleep, 0, len(sessions))
	for _, s := range sessions {
		if w.Overlaps(s) {
			out = append(out, s)
		}
	}
	return out
}

func sessionMinutes(s models.BabySleep) int {
	if s.AwakeTime == nil || s.Duration == nil || *s.Duration < 0 {
		return 0
	}
	return *s.Duration
}
