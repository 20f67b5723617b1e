package services

import (
	"context"
	"time"

	"BabyNest/aggregation"
	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
)

type EndSleepResult struct {
	UpdatedSleep models.BabySleep         `json:"updatedSleep"`
	SleepSummary aggregation.SleepSummary `json:"sleepSummary"`
}

type SleepList struct {
	Sleeps  []models.BabySleep       `json:"sleeps"`
	Summary aggregation.SleepSummary `json:"summary"`
}

type LatestActivities struct {
	LatestSleep       *models.BabySleep          `json:"latestSleep"`
	TodaySleep        aggregation.SleepSummary   `json:"todaySleep"`
	LatestTemperature *models.TemperatureReading `json:"latestTemperature"`
	TodayFeeds        []models.Activity          `json:"todayFeeds"`
	CurrentFeed       *aggregation.FeedProgress  `json:"currentFeed"`
}

type ActivityService struct {
	Activities repositories.ActivityRepository
	Feeds      repositories.FeedRepository
	Clock      Clock
	log        *zap.Logger
}

func NewActivityService(activities repositories.ActivityRepository, feeds repositories.FeedRepository, clock Clock, log *zap.Logger) *ActivityService {
	return &ActivityService{Activities: activities, Feeds: feeds, Clock: clock, log: log}
}

func (s *ActivityService) today() aggregation.Window {
	return aggregation.DayWindow(s.Clock())
}

// dayOf places t in the application time zone before taking its calendar day.
func (s *ActivityService) dayOf(t time.Time) aggregation.Window {
	return aggregation.DayWindow(t.In(s.Clock().Location()))
}

func (s *ActivityService) StartSleep(ctx context.Context, caller models.Owner, child models.Child, sleepType models.SleepType, sleepTime time.Time) (models.BabySleep, error) {
	open, err := s.Activities.FindOpenSleep(ctx, child.ID)
	if err != nil {
		return models.BabySleep{}, err
	}
	if open != nil {
		return models.BabySleep{}, Conflict("A sleep session is already in progress")
	}

	sleep := models.BabySleep{ChildID: child.ID, SleepType: sleepType, SleepTime: sleepTime}
	day := s.dayOf(sleepTime)
	if err := s.Activities.StartSleep(ctx, &sleep, caller, day.Start, day.End); err != nil {
		return models.BabySleep{}, err
	}
	return sleep, nil
}

func (s *ActivityService) EndSleep(ctx context.Context, child models.Child, sleepID string, awakeTime time.Time) (EndSleepResult, error) {
	sleep, err := s.Activities.FindSleep(ctx, child.ID, sleepID)
	if err != nil {
		return EndSleepResult{}, notFoundOr(err, "Sleep session not found")
	}
	if !sleep.IsOpen() {
		return EndSleepResult{}, Invalid("Sleep session already ended")
	}
	if !awakeTime.After(sleep.SleepTime) {
		return EndSleepResult{}, Invalid("Awake time must be after sleep time")
	}

	duration := aggregation.SleepDuration(sleep.SleepTime, awakeTime)
	sleep.AwakeTime = &awakeTime
	sleep.Duration = &duration
	if err := s.Activities.SaveSleep(ctx, &sleep); err != nil {
		return EndSleepResult{}, err
	}

	today := s.today()
	sessions, err := s.Activities.ListSleeps(ctx, child.ID, &today.Start, &today.End)
	if err != nil {
		return EndSleepResult{}, err
	}
	return EndSleepResult{UpdatedSleep: sleep, SleepSummary: aggregation.SummarizeSleep(sessions, today)}, nil
}

// ListSleeps returns every session, or those touching date's day when given.
// The summary covers that day, or today without a date.
func (s *ActivityService) ListSleeps(ctx context.Context, child models.Child, date *time.Time) (SleepList, error) {
	window := s.today()
	var from, to *time.Time
	if date != nil {
		window = s.dayOf(*date)
		from, to = &window.Start, &window.End
	}
	sessions, err := s.Activities.ListSleeps(ctx, child.ID, from, to)
	if err != nil {
		return SleepList{}, err
	}
	if date != nil {
		sessions = aggregation.FilterOverlapping(sessions, window)
	}
	return SleepList{Sleeps: sessions, Summary: aggregation.SummarizeSleep(sessions, window)}, nil
}

func (s *ActivityService) AddTemperature(ctx context.Context, caller models.Owner, child models.Child, temperature float64, date *time.Time) (models.TemperatureReading, error) {
	reading := models.TemperatureReading{ChildID: child.ID, Temperature: temperature, Date: s.Clock()}
	if date != nil {
		reading.Date = *date
	}
	if err := s.Activities.CreateTemperature(ctx, &reading, caller); err != nil {
		return models.TemperatureReading{}, err
	}
	return reading, nil
}

func (s *ActivityService) ListTemperatures(ctx context.Context, child models.Child, date *time.Time) ([]models.TemperatureReading, error) {
	if date == nil {
		return s.Activities.ListTemperatures(ctx, child.ID, nil, nil)
	}
	day := s.dayOf(*date)
	return s.Activities.ListTemperatures(ctx, child.ID, &day.Start, &day.End)
}

func (s *ActivityService) Latest(ctx context.Context, child models.Child) (LatestActivities, error) {
	today := s.today()
	var out LatestActivities

	latest, err := s.Activities.LatestSleep(ctx, child.ID)
	if err != nil {
		return out, err
	}
	out.LatestSleep = latest

	sessions, err := s.Activities.ListSleeps(ctx, child.ID, &today.Start, &today.End)
	if err != nil {
		return out, err
	}
	out.TodaySleep = aggregation.SummarizeSleep(sessions, today)

	if out.LatestTemperature, err = s.Activities.LatestTemperature(ctx, child.ID); err != nil {
		return out, err
	}

	feeds, err := s.Activities.FeedsBetween(ctx, child.ID, today.Start, today.End)
	if err != nil {
		return out, err
	}
	out.TodayFeeds = aggregation.FeedsWithin(feeds, today)

	active, err := s.Feeds.ActiveSchedule(ctx, child.ID)
	if err != nil {
		return out, err
	}
	if active != nil {
		progress := aggregation.ComputeFeedProgress(*active, today)
		out.CurrentFeed = &progress
	}
	return out, nil
}
