package controllers

import (
	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ParentController struct {
	parents ParentUseCase
	log     *zap.Logger
}

func NewParentController(parents ParentUseCase, log *zap.Logger) *ParentController {
	return &ParentController{parents: parents, log: log}
}

func (ctl *ParentController) ReadParent(c *gin.Context) {
	parent, err := ctl.parents.ReadParent(c.Request.Context(), c.Param("parentId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Parent fetched successfully", parent)
}

func (ctl *ParentController) UpdateParent(c *gin.Context) {
	var input struct {
		Name   *string            `json:"name" binding:"omitempty,min=1"`
		Avatar *string            `json:"avatar"`
		Type   *models.ParentType `json:"type" binding:"omitempty,oneof=FATHER MOTHER"`
	}
	if !response.Bind(c, &input) {
		return
	}
	parent, err := ctl.parents.UpdateParent(c.Request.Context(), c.Param("parentId"), services.ParentUpdate{
		Name:   input.Name,
		Avatar: input.Avatar,
		Type:   input.Type,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Parent updated successfully", parent)
}

func (ctl *ParentController) RegisterDevice(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	if err := ctl.parents.RegisterDevice(c.Request.Context(), caller(c), input.Token); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Device registered successfully", nil)
}
