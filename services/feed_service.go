package services

import (
	"context"
	"strings"
	"time"

	"BabyNest/aggregation"
	"BabyNest/models"
	"BabyNest/repositories"
)

type FeedSlotInput struct {
	FeedTime time.Time
	FeedType string
	FeedName string
	Amount   float64
}

type ScheduleInput struct {
	Title       string
	Date        time.Time
	RepeatDaily *bool
	Feeds       []FeedSlotInput
}

type FeedService struct {
	Feeds repositories.FeedRepository
	Clock Clock
}

func NewFeedService(feeds repositories.FeedRepository, clock Clock) *FeedService {
	return &FeedService{Feeds: feeds, Clock: clock}
}

func (s *FeedService) CreateSchedule(ctx context.Context, parentID string, child models.Child, in ScheduleInput) (models.FeedSchedule, error) {
	if len(in.Feeds) == 0 {
		return models.FeedSchedule{}, Invalid("At least one feed is required")
	}
	repeat := true
	if in.RepeatDaily != nil {
		repeat = *in.RepeatDaily
	}
	schedule := models.FeedSchedule{
		ChildID:     child.ID,
		ParentID:    parentID,
		Title:       strings.TrimSpace(in.Title),
		Date:        in.Date,
		RepeatDaily: repeat,
		InUsed:      false,
	}
	for _, f := range in.Feeds {
		schedule.FeedSlots = append(schedule.FeedSlots, models.FeedSlot{
			FeedTime: f.FeedTime,
			FeedType: f.FeedType,
			FeedName: f.FeedName,
			Amount:   f.Amount,
		})
	}
	if err := s.Feeds.CreateSchedule(ctx, &schedule); err != nil {
		return models.FeedSchedule{}, err
	}
	return schedule, nil
}

func (s *FeedService) ListSchedules(ctx context.Context, child models.Child, title string) ([]models.FeedSchedule, error) {
	return s.Feeds.ListSchedules(ctx, child.ID, strings.TrimSpace(title))
}

func (s *FeedService) GetSchedule(ctx context.Context, child models.Child, scheduleID string) (models.FeedSchedule, error) {
	schedule, err := s.Feeds.FindSchedule(ctx, child.ID, scheduleID)
	if err != nil {
		return models.FeedSchedule{}, notFoundOr(err, "Feed schedule not found")
	}
	return schedule, nil
}

// SwitchSchedule makes scheduleID the only schedule in use for the child.
func (s *FeedService) SwitchSchedule(ctx context.Context, child models.Child, scheduleID string) (models.FeedSchedule, error) {
	if err := s.Feeds.SwitchActive(ctx, child.ID, scheduleID); err != nil {
		return models.FeedSchedule{}, notFoundOr(err, "Feed schedule not found")
	}
	return s.GetSchedule(ctx, child, scheduleID)
}

func (s *FeedService) DeleteSchedule(ctx context.Context, child models.Child, scheduleID string) error {
	if err := s.Feeds.DeleteSchedule(ctx, child.ID, scheduleID); err != nil {
		return notFoundOr(err, "Feed schedule not found")
	}
	return nil
}

// LogFeed records that a planned slot was fed at actualTime.
func (s *FeedService) LogFeed(ctx context.Context, caller models.Owner, child models.Child, slotID string, actualTime time.Time) (models.Activity, error) {
	slot, err := s.Feeds.FindSlot(ctx, child.ID, slotID)
	if err != nil {
		return models.Activity{}, notFoundOr(err, "Feed slot not found")
	}
	amount := slot.Amount
	feedType := slot.FeedType
	feedName := slot.FeedName
	activity := models.Activity{
		ChildID:    child.ID,
		Type:       models.ActivityFeed,
		OwnerRefs:  models.NewOwnerRefs(caller),
		FeedTime:   &actualTime,
		FeedAmount: &amount,
		FeedType:   &feedType,
		FeedName:   &feedName,
	}
	if err := s.Feeds.LogFeed(ctx, &activity, slot.ID); err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

// Progress reports today's progress for a schedule, or the active one when
// scheduleID is empty.
func (s *FeedService) Progress(ctx context.Context, child models.Child, scheduleID string) (aggregation.FeedProgress, error) {
	var schedule models.FeedSchedule
	if scheduleID == "" {
		active, err := s.Feeds.ActiveSchedule(ctx, child.ID)
		if err != nil {
			return aggregation.FeedProgress{}, err
		}
		if active == nil {
			return aggregation.FeedProgress{}, NotFound("No feed schedule in use")
		}
		schedule = *active
	} else {
		found, err := s.GetSchedule(ctx, child, scheduleID)
		if err != nil {
			return aggregation.FeedProgress{}, err
		}
		schedule = found
	}
	return aggregation.ComputeFeedProgress(schedule, aggregation.DayWindow(s.Clock())), nil
}
