package services

import (
	"context"
	"testing"
	"time"

	"BabyNest/models"
	"BabyNest/repositories/mocks"
	"BabyNest/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateScheduleRequiresFeeds(t *testing.T) {
	feeds := new(mocks.FeedRepository)
	svc := NewFeedService(feeds, fixedClock(time.Now()))

	_, err := svc.CreateSchedule(context.Background(), "p-1", models.Child{ID: "c-1"}, ScheduleInput{Title: "Day"})
	assert.True(t, IsKind(err, response.KindValidation))
	feeds.AssertNotCalled(t, "CreateSchedule", mock.Anything)
}

func TestCreateScheduleDefaultsToRepeatDaily(t *testing.T) {
	feeds := new(mocks.FeedRepository)
	svc := NewFeedService(feeds, fixedClock(time.Now()))

	feeds.On("CreateSchedule", mock.AnythingOfType("*models.FeedSchedule")).Return(nil)

	schedule, err := svc.CreateSchedule(context.Background(), "p-1", models.Child{ID: "c-1"}, ScheduleInput{
		Title: " Day ",
		Feeds: []FeedSlotInput{{FeedType: "bottle", FeedName: "Formula", Amount: 120}},
	})
	require.NoError(t, err)
	assert.True(t, schedule.RepeatDaily)
	assert.False(t, schedule.InUsed)
	assert.Equal(t, "Day", schedule.Title)
	assert.Len(t, schedule.FeedSlots, 1)
}

func TestLogFeedRejectsSlotOfAnotherChild(t *testing.T) {
	feeds := new(mocks.FeedRepository)
	svc := NewFeedService(feeds, fixedClock(time.Now()))

	// The slot lookup is scoped by child, so a foreign slot is simply missing.
	feeds.On("FindSlot", "c-1", "slot-of-c-2").Return(models.FeedSlot{}, gorm.ErrRecordNotFound)

	_, err := svc.LogFeed(context.Background(), models.ParentOwner("p-1"), models.Child{ID: "c-1"}, "slot-of-c-2", time.Now())
	assert.True(t, IsKind(err, response.KindNotFound))
	feeds.AssertNotCalled(t, "LogFeed", mock.Anything, mock.Anything)
}

func TestLogFeedCopiesSlotPlan(t *testing.T) {
	feeds := new(mocks.FeedRepository)
	svc := NewFeedService(feeds, fixedClock(time.Now()))
	fedAt := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)

	feeds.On("FindSlot", "c-1", "s-1").Return(models.FeedSlot{ID: "s-1", FeedType: "bottle", FeedName: "Formula", Amount: 90}, nil)
	feeds.On("LogFeed", mock.MatchedBy(func(a *models.Activity) bool {
		return a.Type == models.ActivityFeed && a.FeedTime.Equal(fedAt) && *a.FeedAmount == 90
	}), "s-1").Return(nil)

	activity, err := svc.LogFeed(context.Background(), models.ParentOwner("p-1"), models.Child{ID: "c-1"}, "s-1", fedAt)
	require.NoError(t, err)
	assert.Equal(t, "Formula", *activity.FeedName)
	feeds.AssertExpectations(t)
}

func TestProgressWithoutActiveSchedule(t *testing.T) {
	feeds := new(mocks.FeedRepository)
	svc := NewFeedService(feeds, fixedClock(time.Now()))

	feeds.On("ActiveSchedule", "c-1").Return(nil, nil)

	_, err := svc.Progress(context.Background(), models.Child{ID: "c-1"}, "")
	assert.True(t, IsKind(err, response.KindNotFound))
}

func TestSwitchScheduleUnknown(t *testing.T) {
	feeds := new(mocks.FeedRepository)
	svc := NewFeedService(feeds, fixedClock(time.Now()))

	feeds.On("SwitchActive", "c-1", "missing").Return(gorm.ErrRecordNotFound)

	_, err := svc.SwitchSchedule(context.Background(), models.Child{ID: "c-1"}, "missing")
	assert.True(t, IsKind(err, response.KindNotFound))
}
