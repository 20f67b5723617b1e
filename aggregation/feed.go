package aggregation

import (
	"time"

	"BabyNest/models"
)

type FeedProgress struct {
	ScheduleID   string            `json:"scheduleId"`
	Title        string            `json:"title"`
	Date         time.Time         `json:"date"`
	TotalPlanned int               `json:"totalPlanned"`
	TotalTaken   int               `json:"totalTaken"`
	TotalAmount  float64           `json:"totalAmount"`
	Slots        []models.FeedSlot `json:"slots"`
}

// ComputeFeedProgress counts the schedule's slots and the ones whose linked
// feed was logged inside today. Slots keep their activity only when it
// belongs to today.
func ComputeFeedProgress(schedule models.FeedSchedule, today Window) FeedProgress {
	progress := FeedProgress{
		ScheduleID:   schedule.ID,
		Title:        schedule.Title,
		Date:         schedule.Date,
		TotalPlanned: len(schedule.FeedSlots),
		Slots:        make([]models.FeedSlot, 0, len(schedule.FeedSlots)),
	}
	for _, slot := range schedule.FeedSlots {
		s := slot
		if s.Activity != nil && s.Activity.FeedTime != nil && today.Contains(*s.Activity.FeedTime) {
			progress.TotalTaken++
			if s.Activity.FeedAmount != nil {
				progress.TotalAmount += *s.Activity.FeedAmount
			}
		} else {
			s.Activity = nil
		}
		progress.Slots = append(progress.Slots, s)
	}
	return progress
}

// ActiveSchedule returns the schedule flagged in use, if any.
func ActiveSchedule(schedules []models.FeedSchedule) *models.FeedSchedule {
	for i := range schedules {
		if schedules[i].InUsed {
			return &schedules[i]
		}
	}
	return nil
}

// FeedsWithin keeps FEED activities whose feed time falls inside w.
func FeedsWithin(activities []models.Activity, w Window) []models.Activity {
	out := make([]models.Activity, 0)
	for _, a := range activities {
		if a.Type == models.ActivityFeed && a.FeedTime != nil && w.Contains(*a.FeedTime) {
			out = append(out, a)
		}
	}
	return out
}
