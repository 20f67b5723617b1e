package mocks

import (
	"context"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) StartSleep(ctx context.Context, sleep *models.BabySleep, owner models.Owner, dayStart, dayEnd time.Time) error {
	args := m.Called(sleep, owner, dayStart, dayEnd)
	return args.Error(0)
}

func (m *ActivityRepository) FindSleep(ctx context.Context, childID, sleepID string) (models.BabySleep, error) {
	args := m.Called(childID, sleepID)
	return args.Get(0).(models.BabySleep), args.Error(1)
}

func (m *ActivityRepository) FindOpenSleep(ctx context.Context, childID string) (*models.BabySleep, error) {
	args := m.Called(childID)
	sleep, _ := args.Get(0).(*models.BabySleep)
	return sleep, args.Error(1)
}

func (m *ActivityRepository) SaveSleep(ctx context.Context, sleep *models.BabySleep) error {
	args := m.Called(sleep)
	return args.Error(0)
}

func (m *ActivityRepository) ListSleeps(ctx context.Context, childID string, from, to *time.Time) ([]models.BabySleep, error) {
	args := m.Called(childID, from, to)
	return args.Get(0).([]models.BabySleep), args.Error(1)
}

func (m *ActivityRepository) SleepsSince(ctx context.Context, childID string, since time.Time) ([]models.BabySleep, error) {
	args := m.Called(childID, since)
	return args.Get(0).([]models.BabySleep), args.Error(1)
}

func (m *ActivityRepository) LatestSleep(ctx context.Context, childID string) (*models.BabySleep, error) {
	args := m.Called(childID)
	sleep, _ := args.Get(0).(*models.BabySleep)
	return sleep, args.Error(1)
}

func (m *ActivityRepository) CreateTemperature(ctx context.Context, reading *models.TemperatureReading, owner models.Owner) error {
	args := m.Called(reading, owner)
	return args.Error(0)
}

func (m *ActivityRepository) ListTemperatures(ctx context.Context, childID string, from, to *time.Time) ([]models.TemperatureReading, error) {
	args := m.Called(childID, from, to)
	return args.Get(0).([]models.TemperatureReading), args.Error(1)
}

func (m *ActivityRepository) LatestTemperature(ctx context.Context, childID string) (*models.TemperatureReading, error) {
	args := m.Called(childID)
	reading, _ := args.Get(0).(*models.TemperatureReading)
	return reading, args.Error(1)
}

func (m *ActivityRepository) FeedsBetween(ctx context.Context, childID string, from, to time.Time) ([]models.Activity, error) {
	args := m.Called(childID, from, to)
	return args.Get(0).([]models.Activity), args.Error(1)
}
