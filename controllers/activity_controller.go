package controllers

import (
	"time"

	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ActivityController struct {
	activities ActivityUseCase
	feeds      FeedUseCase
	loc        *time.Location
	log        *zap.Logger
}

func NewActivityController(activities ActivityUseCase, feeds FeedUseCase, loc *time.Location, log *zap.Logger) *ActivityController {
	return &ActivityController{activities: activities, feeds: feeds, loc: loc, log: log}
}

func (ctl *ActivityController) StartSleep(c *gin.Context) {
	var input struct {
		SleepType models.SleepType `json:"sleepType" binding:"required,oneof=NIGHT NAP"`
		SleepTime time.Time        `json:"sleepTime" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	sleep, err := ctl.activities.StartSleep(c.Request.Context(), caller(c), scopedChild(c), input.SleepType, input.SleepTime)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Sleep started successfully", sleep)
}

func (ctl *ActivityController) EndSleep(c *gin.Context) {
	var input struct {
		SleepID   string    `json:"sleepId" binding:"required"`
		AwakeTime time.Time `json:"awakeTime" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	result, err := ctl.activities.EndSleep(c.Request.Context(), scopedChild(c), input.SleepID, input.AwakeTime)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Sleep ended successfully", result)
}

func (ctl *ActivityController) ListSleeps(c *gin.Context) {
	date, ok := queryDate(c, "date", ctl.loc)
	if !ok {
		return
	}
	list, err := ctl.activities.ListSleeps(c.Request.Context(), scopedChild(c), date)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Sleep fetched successfully", list)
}

func (ctl *ActivityController) AddTemperature(c *gin.Context) {
	var input struct {
		Temperature float64    `json:"temperature" binding:"required,gt=0"`
		Date        *time.Time `json:"date"`
	}
	if !response.Bind(c, &input) {
		return
	}
	reading, err := ctl.activities.AddTemperature(c.Request.Context(), caller(c), scopedChild(c), input.Temperature, input.Date)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Temperature added successfully", reading)
}

func (ctl *ActivityController) ListTemperatures(c *gin.Context) {
	date, ok := queryDate(c, "date", ctl.loc)
	if !ok {
		return
	}
	readings, err := ctl.activities.ListTemperatures(c.Request.Context(), scopedChild(c), date)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Temperature fetched successfully", readings)
}

func (ctl *ActivityController) Latest(c *gin.Context) {
	latest, err := ctl.activities.Latest(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Latest activities fetched successfully", latest)
}

func (ctl *ActivityController) CreateSchedule(c *gin.Context) {
	var input struct {
		Title       string    `json:"title" binding:"required"`
		Date        time.Time `json:"date" binding:"required"`
		RepeatDaily *bool     `json:"repeatDaily"`
		Feeds       []struct {
			FeedTime time.Time `json:"feedTime" binding:"required"`
			FeedType string    `json:"feedType" binding:"required"`
			FeedName string    `json:"feedName" binding:"required"`
			Amount   float64   `json:"amount" binding:"gt=0"`
		} `json:"feeds" binding:"required,min=1,dive"`
	}
	if !response.Bind(c, &input) {
		return
	}

	in := services.ScheduleInput{Title: input.Title, Date: input.Date, RepeatDaily: input.RepeatDaily}
	for _, f := range input.Feeds {
		in.Feeds = append(in.Feeds, services.FeedSlotInput{
			FeedTime: f.FeedTime,
			FeedType: f.FeedType,
			FeedName: f.FeedName,
			Amount:   f.Amount,
		})
	}
	schedule, err := ctl.feeds.CreateSchedule(c.Request.Context(), c.Param("parentId"), scopedChild(c), in)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Feed schedule created successfully", schedule)
}

func (ctl *ActivityController) ListSchedules(c *gin.Context) {
	schedules, err := ctl.feeds.ListSchedules(c.Request.Context(), scopedChild(c), c.Query("title"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Feed schedules fetched successfully", schedules)
}

func (ctl *ActivityController) GetSchedule(c *gin.Context) {
	schedule, err := ctl.feeds.GetSchedule(c.Request.Context(), scopedChild(c), c.Param("scheduleId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Feed schedule fetched successfully", schedule)
}

func (ctl *ActivityController) SwitchSchedule(c *gin.Context) {
	schedule, err := ctl.feeds.SwitchSchedule(c.Request.Context(), scopedChild(c), c.Param("scheduleId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Feed schedule switched successfully", schedule)
}

func (ctl *ActivityController) DeleteSchedule(c *gin.Context) {
	if err := ctl.feeds.DeleteSchedule(c.Request.Context(), scopedChild(c), c.Param("scheduleId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Feed schedule deleted successfully", nil)
}

func (ctl *ActivityController) LogFeed(c *gin.Context) {
	var input struct {
		FeedSlotID string    `json:"feedSlotId" binding:"required"`
		ActualTime time.Time `json:"actualTime" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	activity, err := ctl.feeds.LogFeed(c.Request.Context(), caller(c), scopedChild(c), input.FeedSlotID, input.ActualTime)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Feed logged successfully", activity)
}

func (ctl *ActivityController) FeedProgress(c *gin.Context) {
	progress, err := ctl.feeds.Progress(c.Request.Context(), scopedChild(c), c.Query("scheduleId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Feed progress fetched successfully", progress)
}
