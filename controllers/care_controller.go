package controllers

import (
	"time"

	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CareController serves milestones, vaccinations and relatives of a child.
type CareController struct {
	milestones   MilestoneUseCase
	vaccinations VaccinationUseCase
	relations    RelationUseCase
	log          *zap.Logger
}

func NewCareController(milestones MilestoneUseCase, vaccinations VaccinationUseCase, relations RelationUseCase, log *zap.Logger) *CareController {
	return &CareController{milestones: milestones, vaccinations: vaccinations, relations: relations, log: log}
}

func (ctl *CareController) ListMilestones(c *gin.Context) {
	views, err := ctl.milestones.ListForChild(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Milestones fetched successfully", views)
}

func (ctl *CareController) SetMilestoneProgress(c *gin.Context) {
	var input struct {
		SubMilestoneID string  `json:"subMilestoneId" binding:"required"`
		Achieved       *bool   `json:"achieved" binding:"required"`
		Note           *string `json:"note"`
	}
	if !response.Bind(c, &input) {
		return
	}
	progress, err := ctl.milestones.SetProgress(c.Request.Context(), scopedChild(c), input.SubMilestoneID, *input.Achieved, input.Note)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Milestone progress updated successfully", progress)
}

func (ctl *CareController) CreateMilestone(c *gin.Context) {
	var input struct {
		Title         string `json:"title" binding:"required"`
		Month         int    `json:"month" binding:"gte=0"`
		SubMilestones []struct {
			Title       string `json:"title" binding:"required"`
			Description string `json:"description"`
		} `json:"subMilestones" binding:"dive"`
	}
	if !response.Bind(c, &input) {
		return
	}
	subs := make([]services.SubMilestoneInput, 0, len(input.SubMilestones))
	for _, s := range input.SubMilestones {
		subs = append(subs, services.SubMilestoneInput{Title: s.Title, Description: s.Description})
	}
	milestone, err := ctl.milestones.Create(c.Request.Context(), input.Title, input.Month, subs)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Milestone created successfully", milestone)
}

func (ctl *CareController) UpdateMilestone(c *gin.Context) {
	var input struct {
		Title *string `json:"title"`
		Month *int    `json:"month" binding:"omitempty,gte=0"`
	}
	if !response.Bind(c, &input) {
		return
	}
	milestone, err := ctl.milestones.Update(c.Request.Context(), c.Param("milestoneId"), services.MilestoneUpdate{Title: input.Title, Month: input.Month})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Milestone updated successfully", milestone)
}

func (ctl *CareController) DeleteMilestone(c *gin.Context) {
	if err := ctl.milestones.Delete(c.Request.Context(), c.Param("milestoneId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Deleted Successfully", nil)
}

func (ctl *CareController) CreateSubMilestone(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if !response.Bind(c, &input) {
		return
	}
	sub, err := ctl.milestones.AddSub(c.Request.Context(), c.Param("milestoneId"), services.SubMilestoneInput{Title: input.Title, Description: input.Description})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Sub-milestone created successfully", sub)
}

func (ctl *CareController) UpdateSubMilestone(c *gin.Context) {
	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if !response.Bind(c, &input) {
		return
	}
	sub, err := ctl.milestones.UpdateSub(c.Request.Context(), c.Param("subMilestoneId"), services.SubMilestoneUpdate{Title: input.Title, Description: input.Description})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Sub-milestone updated successfully", sub)
}

func (ctl *CareController) DeleteSubMilestone(c *gin.Context) {
	if err := ctl.milestones.DeleteSub(c.Request.Context(), c.Param("subMilestoneId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Deleted Successfully", nil)
}

func (ctl *CareController) ListVaccinations(c *gin.Context) {
	views, err := ctl.vaccinations.ListForChild(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Vaccinations fetched successfully", views)
}

func (ctl *CareController) UpdateVaccination(c *gin.Context) {
	var input struct {
		Status models.VaccinationStatus `json:"status" binding:"omitempty,oneof=PENDING TAKEN"`
		Date   *time.Time               `json:"date"`
		Time   *string                  `json:"time"`
		Note   *string                  `json:"note"`
		Image  *string                  `json:"image"`
	}
	if !response.Bind(c, &input) {
		return
	}
	progress, err := ctl.vaccinations.Update(c.Request.Context(), scopedChild(c), c.Param("vaccinationId"), services.VaccinationUpdate{
		Status: input.Status,
		Date:   input.Date,
		Time:   input.Time,
		Note:   input.Note,
		Image:  input.Image,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Vaccination updated successfully", progress)
}

func (ctl *CareController) CreateVaccination(c *gin.Context) {
	var input struct {
		Name        string                  `json:"name" binding:"required"`
		Description string                  `json:"description"`
		MonthOrder  models.VaccinationMonth `json:"monthOrder" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	vaccination, err := ctl.vaccinations.Create(c.Request.Context(), input.Name, input.Description, input.MonthOrder)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Vaccination created successfully", vaccination)
}

func (ctl *CareController) EditVaccination(c *gin.Context) {
	var input struct {
		Name        *string                  `json:"name"`
		Description *string                  `json:"description"`
		MonthOrder  *models.VaccinationMonth `json:"monthOrder"`
	}
	if !response.Bind(c, &input) {
		return
	}
	vaccination, err := ctl.vaccinations.Edit(c.Request.Context(), c.Param("vaccinationId"), services.VaccinationEdit{
		Name:        input.Name,
		Description: input.Description,
		MonthOrder:  input.MonthOrder,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Vaccination updated successfully", vaccination)
}

func (ctl *CareController) DeleteVaccination(c *gin.Context) {
	if err := ctl.vaccinations.Delete(c.Request.Context(), c.Param("vaccinationId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Vaccination deleted successfully", nil)
}

func (ctl *CareController) CreateRelation(c *gin.Context) {
	var input struct {
		Name        string     `json:"name" binding:"required"`
		Email       string     `json:"email" binding:"required,email"`
		Relation    string     `json:"relation" binding:"required"`
		DateOfBirth time.Time  `json:"dateOfBirth" binding:"required"`
		DateOfDeath *time.Time `json:"dateOfDeath"`
	}
	if !response.Bind(c, &input) {
		return
	}
	relation, err := ctl.relations.Create(c.Request.Context(), c.Param("parentId"), scopedChild(c), services.RelationInput{
		Name:        input.Name,
		Email:       input.Email,
		Relation:    input.Relation,
		DateOfBirth: input.DateOfBirth,
		DateOfDeath: input.DateOfDeath,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Relation created successfully", relation)
}

func (ctl *CareController) ListRelations(c *gin.Context) {
	relations, err := ctl.relations.List(c.Request.Context(), scopedChild(c))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Relations fetched successfully", relations)
}

func (ctl *CareController) RemoveRelation(c *gin.Context) {
	if err := ctl.relations.Remove(c.Request.Context(), scopedChild(c), c.Param("relationId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Relation removed successfully", nil)
}

func (ctl *CareController) LeaveRelation(c *gin.Context) {
	if err := ctl.relations.Leave(c.Request.Context(), caller(c), c.Param("relativeId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "You have left the family successfully", nil)
}
