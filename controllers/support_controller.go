package controllers

import (
	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SupportController serves co-parent invitations and support queries.
type SupportController struct {
	invitations InvitationUseCase
	queries     SupportUseCase
	log         *zap.Logger
}

func NewSupportController(invitations InvitationUseCase, queries SupportUseCase, log *zap.Logger) *SupportController {
	return &SupportController{invitations: invitations, queries: queries, log: log}
}

func (ctl *SupportController) InviteParent(c *gin.Context) {
	var input struct {
		ToEmail string `json:"toEmail" binding:"required,email"`
	}
	if !response.Bind(c, &input) {
		return
	}
	if err := ctl.invitations.Invite(c.Request.Context(), c.Param("parentId"), input.ToEmail); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Email has been sent", nil)
}

func (ctl *SupportController) AcceptInvitation(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		ParentID string `json:"parentId" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	parent, err := ctl.invitations.Accept(c.Request.Context(), services.AcceptInvitationInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		ParentID: input.ParentID,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "An OTP has been sent to the given email", parent)
}

func (ctl *SupportController) CreateQuery(c *gin.Context) {
	var input struct {
		Name     string               `json:"name" binding:"required"`
		Email    string               `json:"email" binding:"required,email"`
		Subject  string               `json:"subject" binding:"required"`
		Message  string               `json:"message" binding:"required"`
		Status   models.QueryStatus   `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS RESOLVED CLOSED"`
		Priority models.QueryPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	}
	if !response.Bind(c, &input) {
		return
	}
	query, err := ctl.queries.Create(c.Request.Context(), c.Param("parentId"), services.QueryInput{
		Name:     input.Name,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		Status:   input.Status,
		Priority: input.Priority,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Query Created Successfully", query)
}

func (ctl *SupportController) ListParentQueries(c *gin.Context) {
	queries, err := ctl.queries.ListForParent(c.Request.Context(), c.Param("parentId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Queries fetched successfully", queries)
}

func (ctl *SupportController) ListQueries(c *gin.Context) {
	queries, err := ctl.queries.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Queries fetched successfully", queries)
}

func (ctl *SupportController) GetQuery(c *gin.Context) {
	query, err := ctl.queries.Get(c.Request.Context(), c.Param("queryId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Query fetched successfully", query)
}

func (ctl *SupportController) UpdateQuery(c *gin.Context) {
	var input struct {
		Status   *models.QueryStatus   `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS RESOLVED CLOSED"`
		Priority *models.QueryPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	}
	if !response.Bind(c, &input) {
		return
	}
	query, err := ctl.queries.Update(c.Request.Context(), c.Param("queryId"), services.QueryUpdate{Status: input.Status, Priority: input.Priority})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Query Updated Successfully", query)
}

func (ctl *SupportController) DeleteQuery(c *gin.Context) {
	if err := ctl.queries.Delete(c.Request.Context(), c.Param("queryId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Query Deleted Successfully", nil)
}
