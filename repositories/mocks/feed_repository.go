package mocks

import (
	"context"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type FeedRepository struct {
	mock.Mock
}

func (m *FeedRepository) CreateSchedule(ctx context.Context, schedule *models.FeedSchedule) error {
	args := m.Called(schedule)
	return args.Error(0)
}

func (m *FeedRepository) ListSchedules(ctx context.Context, childID, title string) ([]models.FeedSchedule, error) {
	args := m.Called(childID, title)
	return args.Get(0).([]models.FeedSchedule), args.Error(1)
}

func (m *FeedRepository) FindSchedule(ctx context.Context, childID, scheduleID string) (models.FeedSchedule, error) {
	args := m.Called(childID, scheduleID)
	return args.Get(0).(models.FeedSchedule), args.Error(1)
}

func (m *FeedRepository) ActiveSchedule(ctx context.Context, childID string) (*models.FeedSchedule, error) {
	args := m.Called(childID)
	schedule, _ := args.Get(0).(*models.FeedSchedule)
	return schedule, args.Error(1)
}

func (m *FeedRepository) SwitchActive(ctx context.Context, childID, scheduleID string) error {
	args := m.Called(childID, scheduleID)
	return args.Error(0)
}

func (m *FeedRepository) DeleteSchedule(ctx context.Context, childID, scheduleID string) error {
	args := m.Called(childID, scheduleID)
	return args.Error(0)
}

func (m *FeedRepository) FindSlot(ctx context.Context, childID, slotID string) (models.FeedSlot, error) {
	args := m.Called(childID, slotID)
	return args.Get(0).(models.FeedSlot), args.Error(1)
}

func (m *FeedRepository) LogFeed(ctx context.Context, activity *models.Activity, slotID string) error {
	args := m.Called(activity, slotID)
	return args.Error(0)
}
