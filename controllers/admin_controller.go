package controllers

import (
	"fmt"
	"net/http"

	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminController struct {
	admin  AdminUseCase
	orders OrderUseCase
	log    *zap.Logger
}

func NewAdminController(admin AdminUseCase, orders OrderUseCase, log *zap.Logger) *AdminController {
	return &AdminController{admin: admin, orders: orders, log: log}
}

func (ctl *AdminController) Dashboard(c *gin.Context) {
	dashboard, err := ctl.admin.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Dashboard fetched successfully", dashboard)
}

func orderStatusQuery(c *gin.Context) (models.OrderStatus, bool) {
	status := models.OrderStatus(c.Query("status"))
	switch status {
	case "", models.OrderPending, models.OrderProcessing, models.OrderShipped, models.OrderDelivered, models.OrderCancelled:
		return status, true
	}
	response.Invalid(c, "Validation failed", map[string]string{"status": "Unknown order status"})
	return "", false
}

func (ctl *AdminController) ListOrders(c *gin.Context) {
	status, ok := orderStatusQuery(c)
	if !ok {
		return
	}
	orders, err := ctl.orders.List(c.Request.Context(), status)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Orders fetched successfully", orders)
}

func (ctl *AdminController) UpdateOrderStatus(c *gin.Context) {
	var input struct {
		OrderStatus models.OrderStatus `json:"orderStatus" binding:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
	}
	if !response.Bind(c, &input) {
		return
	}
	order, err := ctl.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), input.OrderStatus)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Order status updated successfully", order)
}

func (ctl *AdminController) ExportOrders(c *gin.Context) {
	status, ok := orderStatusQuery(c)
	if !ok {
		return
	}
	data, err := ctl.admin.ExportOrders(c.Request.Context(), status)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	name := "orders.xlsx"
	if status != "" {
		name = fmt.Sprintf("orders-%s.xlsx", status)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (ctl *AdminController) SupplierDashboard(c *gin.Context) {
	dashboard, err := ctl.admin.SupplierDashboard(c.Request.Context(), c.Param("supplierId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Supplier data fetched successfully", dashboard)
}

func (ctl *AdminController) ArtistDashboard(c *gin.Context) {
	dashboard, err := ctl.admin.ArtistDashboard(c.Request.Context(), c.Param("artistId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Artist dashboard data fetched successfully", dashboard)
}

type vendorRequest struct {
	Name          string               `json:"name" binding:"required"`
	CNIC          string               `json:"cnic" binding:"required"`
	Email         string               `json:"email" binding:"required,email"`
	Country       string               `json:"country" binding:"required"`
	State         string               `json:"state" binding:"required"`
	City          string               `json:"city" binding:"required"`
	Status        models.AccountStatus `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
	Subscription  *string              `json:"subscription"`
	CategoryID    string               `json:"categoryId" binding:"required"`
	SubCategoryID string               `json:"subCategoryId" binding:"required"`
}

func (r vendorRequest) input() services.VendorInput {
	return services.VendorInput{
		Name:          r.Name,
		CNIC:          r.CNIC,
		Email:         r.Email,
		Country:       r.Country,
		State:         r.State,
		City:          r.City,
		Status:        r.Status,
		Subscription:  r.Subscription,
		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
	}
}

type vendorPatch struct {
	Name          *string               `json:"name"`
	CNIC          *string               `json:"cnic"`
	Email         *string               `json:"email" binding:"omitempty,email"`
	Country       *string               `json:"country"`
	State         *string               `json:"state"`
	City          *string               `json:"city"`
	Status        *models.AccountStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Subscription  *string               `json:"subscription"`
	CategoryID    *string               `json:"categoryId"`
	SubCategoryID *string               `json:"subCategoryId"`
}

func (p vendorPatch) update() services.VendorUpdate {
	return services.VendorUpdate{
		Name:          p.Name,
		CNIC:          p.CNIC,
		Email:         p.Email,
		Country:       p.Country,
		State:         p.State,
		City:          p.City,
		Status:        p.Status,
		Subscription:  p.Subscription,
		CategoryID:    p.CategoryID,
		SubCategoryID: p.SubCategoryID,
	}
}

func (ctl *AdminController) CreateSupplier(c *gin.Context) {
	var input vendorRequest
	if !response.Bind(c, &input) {
		return
	}
	supplier, err := ctl.admin.CreateSupplier(c.Request.Context(), input.input())
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Supplier created successfully! Login credentials have been sent to the email.", supplier)
}

func (ctl *AdminController) ListSuppliers(c *gin.Context) {
	suppliers, err := ctl.admin.ListSuppliers(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Suppliers fetched successfully", suppliers)
}

func (ctl *AdminController) UpdateSupplier(c *gin.Context) {
	var input vendorPatch
	if !response.Bind(c, &input) {
		return
	}
	supplier, err := ctl.admin.UpdateSupplier(c.Request.Context(), c.Param("supplierId"), input.update())
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Supplier updated successfully", supplier)
}

func (ctl *AdminController) DeleteSupplier(c *gin.Context) {
	if err := ctl.admin.DeleteSupplier(c.Request.Context(), c.Param("supplierId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Supplier deleted successfully", nil)
}

func (ctl *AdminController) CreateArtist(c *gin.Context) {
	var input vendorRequest
	if !response.Bind(c, &input) {
		return
	}
	artist, err := ctl.admin.CreateArtist(c.Request.Context(), input.input())
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Artist created successfully! Login credentials have been sent to the email.", artist)
}

func (ctl *AdminController) ListArtists(c *gin.Context) {
	artists, err := ctl.admin.ListArtists(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Artists fetched successfully", artists)
}

func (ctl *AdminController) UpdateArtist(c *gin.Context) {
	var input vendorPatch
	if !response.Bind(c, &input) {
		return
	}
	artist, err := ctl.admin.UpdateArtist(c.Request.Context(), c.Param("artistId"), input.update())
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Artist updated successfully", artist)
}

func (ctl *AdminController) DeleteArtist(c *gin.Context) {
	if err := ctl.admin.DeleteArtist(c.Request.Context(), c.Param("artistId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Artist deleted successfully", nil)
}
