package controllers

import (
	"time"

	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChildController struct {
	children  ChildUseCase
	growth    GrowthUseCase
	dashboard DashboardUseCase
	log       *zap.Logger
}

func NewChildController(children ChildUseCase, growth GrowthUseCase, dashboard DashboardUseCase, log *zap.Logger) *ChildController {
	return &ChildController{children: children, growth: growth, dashboard: dashboard, log: log}
}

func (ctl *ChildController) CreateChild(c *gin.Context) {
	var input struct {
		Name     string           `json:"name" binding:"required"`
		Avatar   *string          `json:"avatar"`
		Type     models.ChildType `json:"type" binding:"required,oneof=BOY GIRL"`
		Birthday *time.Time       `json:"birthday"`
		Height   float64          `json:"height" binding:"gte=0"`
		Weight   float64          `json:"weight" binding:"gte=0"`
	}
	if !response.Bind(c, &input) {
		return
	}

	child, err := ctl.children.Create(c.Request.Context(), c.Param("parentId"), services.ChildInput{
		Name:     input.Name,
		Avatar:   input.Avatar,
		Type:     input.Type,
		Birthday: input.Birthday,
		Height:   input.Height,
		Weight:   input.Weight,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Child created successfully", child)
}

func (ctl *ChildController) ListChildren(c *gin.Context) {
	children, err := ctl.children.List(c.Request.Context(), c.Param("parentId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Children fetched successfully", children)
}

func (ctl *ChildController) ReadChild(c *gin.Context) {
	detail, err := ctl.children.Detail(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Child fetched successfully", detail)
}

func (ctl *ChildController) UpdateChild(c *gin.Context) {
	var input struct {
		Name     *string           `json:"name" binding:"omitempty,min=1"`
		Avatar   *string           `json:"avatar"`
		Type     *models.ChildType `json:"type" binding:"omitempty,oneof=BOY GIRL"`
		Birthday *time.Time        `json:"birthday"`
	}
	if !response.Bind(c, &input) {
		return
	}
	child, err := ctl.children.Update(c.Request.Context(), scopedChild(c), services.ChildUpdate{
		Name:     input.Name,
		Avatar:   input.Avatar,
		Type:     input.Type,
		Birthday: input.Birthday,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Child updated successfully", child)
}

func (ctl *ChildController) DeleteChild(c *gin.Context) {
	if err := ctl.children.Delete(c.Request.Context(), scopedChild(c)); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Child deleted successfully", nil)
}

func (ctl *ChildController) TipOfTheDay(c *gin.Context) {
	tip, err := ctl.children.TipOfTheDay(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Tip of the day fetched successfully", gin.H{"tip": tip})
}

func (ctl *ChildController) ListGrowth(c *gin.Context) {
	entries, err := ctl.growth.List(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Growth fetched successfully", entries)
}

func (ctl *ChildController) AddGrowth(c *gin.Context) {
	var input struct {
		Weight float64   `json:"weight" binding:"required,gt=0"`
		Height float64   `json:"height" binding:"required,gt=0"`
		Date   time.Time `json:"date" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	entry, err := ctl.growth.Add(c.Request.Context(), scopedChild(c), input.Weight, input.Height, input.Date)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Growth added successfully", entry)
}

func (ctl *ChildController) Dashboard(c *gin.Context) {
	dashboard, err := ctl.dashboard.Build(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Dashboard fetched successfully", dashboard)
}
