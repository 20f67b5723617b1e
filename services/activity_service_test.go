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
	"go.uber.org/zap"
)

var activityNow = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

func TestEndSleepRejectsAwakeBeforeSleep(t *testing.T) {
	activities := new(mocks.ActivityRepository)
	svc := NewActivityService(activities, nil, fixedClock(activityNow), zap.NewNop())
	child := models.Child{ID: "c-1"}
	sleepAt := activityNow.Add(-time.Hour)

	activities.On("FindSleep", "c-1", "s-1").Return(models.BabySleep{ID: "s-1", ChildID: "c-1", SleepTime: sleepAt}, nil)

	for _, awake := range []time.Time{sleepAt, sleepAt.Add(-time.Minute)} {
		_, err := svc.EndSleep(context.Background(), child, "s-1", awake)
		assert.True(t, IsKind(err, response.KindValidation), "awake %s", awake)
	}
	activities.AssertNotCalled(t, "SaveSleep", mock.Anything)
}

func TestEndSleepAlreadyEnded(t *testing.T) {
	activities := new(mocks.ActivityRepository)
	svc := NewActivityService(activities, nil, fixedClock(activityNow), zap.NewNop())
	ended := activityNow.Add(-time.Minute)

	activities.On("FindSleep", "c-1", "s-1").Return(models.BabySleep{ID: "s-1", SleepTime: activityNow.Add(-time.Hour), AwakeTime: &ended}, nil)

	_, err := svc.EndSleep(context.Background(), models.Child{ID: "c-1"}, "s-1", activityNow)
	require.Error(t, err)
	assert.Equal(t, "Sleep session already ended", err.Error())
}

func TestEndSleepStoresDuration(t *testing.T) {
	activities := new(mocks.ActivityRepository)
	svc := NewActivityService(activities, nil, fixedClock(activityNow), zap.NewNop())
	sleepAt := activityNow.Add(-90 * time.Minute)

	activities.On("FindSleep", "c-1", "s-1").Return(models.BabySleep{ID: "s-1", ChildID: "c-1", SleepTime: sleepAt}, nil)
	activities.On("SaveSleep", mock.AnythingOfType("*models.BabySleep")).Return(nil)
	activities.On("ListSleeps", "c-1", mock.Anything, mock.Anything).Return([]models.BabySleep{}, nil)

	res, err := svc.EndSleep(context.Background(), models.Child{ID: "c-1"}, "s-1", activityNow)
	require.NoError(t, err)
	require.NotNil(t, res.UpdatedSleep.Duration)
	assert.Equal(t, 90, *res.UpdatedSleep.Duration)
	assert.Equal(t, activityNow, *res.UpdatedSleep.AwakeTime)
}

func TestStartSleepWhileOneIsOpen(t *testing.T) {
	activities := new(mocks.ActivityRepository)
	svc := NewActivityService(activities, nil, fixedClock(activityNow), zap.NewNop())

	activities.On("FindOpenSleep", "c-1").Return(&models.BabySleep{ID: "s-0"}, nil)

	_, err := svc.StartSleep(context.Background(), models.ParentOwner("p-1"), models.Child{ID: "c-1"}, models.SleepNap, activityNow)
	assert.True(t, IsKind(err, response.KindConflict))
}
