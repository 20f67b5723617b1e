package services

import (
	"context"
	"testing"
	"time"

	"BabyNest/models"
	"BabyNest/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardLoadsLatestSleepOutsideWeek(t *testing.T) {
	children := new(mocks.ChildRepository)
	activities := new(mocks.ActivityRepository)
	feeds := new(mocks.FeedRepository)
	milestones := new(mocks.MilestoneRepository)
	vaccinations := new(mocks.VaccinationRepository)
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	svc := NewDashboardService(children, activities, feeds, milestones, vaccinations, fixedClock(now))

	woke := now.AddDate(0, 0, -20).Add(time.Hour)
	old := &models.BabySleep{ID: "sl-1", ChildID: "c-1", SleepTime: now.AddDate(0, 0, -20), AwakeTime: &woke}

	children.On("ListGrowth", "c-1").Return([]models.GrowthEntry{}, nil)
	activities.On("LatestTemperature", "c-1").Return(nil, nil)
	activities.On("LatestSleep", "c-1").Return(old, nil)
	activities.On("SleepsSince", "c-1", now.AddDate(0, 0, -7)).Return([]models.BabySleep{}, nil)
	feeds.On("ActiveSchedule", "c-1").Return(nil, nil)
	milestones.On("ListCatalog").Return([]models.Milestone{}, nil)
	milestones.On("ListProgress", "c-1").Return([]models.ChildMilestoneProgress{}, nil)
	vaccinations.On("ListCatalog").Return([]models.Vaccination{}, nil)
	vaccinations.On("ListProgress", "c-1").Return([]models.VaccinationProgress{}, nil)

	dashboard, err := svc.Build(context.Background(), models.Child{ID: "c-1"})
	require.NoError(t, err)
	require.NotNil(t, dashboard.LatestSleep)
	assert.Equal(t, "sl-1", dashboard.LatestSleep.ID)
	assert.Zero(t, dashboard.TotalSleepMinutesLast7Days)
	assert.Nil(t, dashboard.CurrentFeed)
	activities.AssertExpectations(t)
}
