package controllers

import (
	"BabyNest/models"
	"BabyNest/repositories"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogController struct {
	categories CategoryUseCase
	products   ProductUseCase
	music      MusicUseCase
	log        *zap.Logger
}

func NewCatalogController(categories CategoryUseCase, products ProductUseCase, music MusicUseCase, log *zap.Logger) *CatalogController {
	return &CatalogController{categories: categories, products: products, music: music, log: log}
}

type categoryRequest struct {
	Name   string               `json:"name" binding:"required"`
	Slug   string               `json:"slug" binding:"required"`
	Status models.AccountStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Kind   models.CategoryKind  `json:"kind" binding:"omitempty,oneof=PRODUCT MUSIC"`
}

func (r categoryRequest) input() services.CategoryInput {
	return services.CategoryInput{Name: r.Name, Slug: r.Slug, Status: r.Status, Kind: r.Kind}
}

func (ctl *CatalogController) CreateCategory(c *gin.Context) {
	var input categoryRequest
	if !response.Bind(c, &input) {
		return
	}
	category, err := ctl.categories.Create(c.Request.Context(), c.Param("adminId"), input.input())
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

func (ctl *CatalogController) ListCategories(c *gin.Context) {
	kind := models.CategoryKind(c.Query("kind"))
	if kind != "" && kind != models.CategoryProduct && kind != models.CategoryMusic {
		response.Invalid(c, "Validation failed", map[string]string{"kind": "kind must be one of [PRODUCT MUSIC]"})
		return
	}
	views, err := ctl.categories.List(c.Request.Context(), kind)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Categories fetched successfully", views)
}

func (ctl *CatalogController) UpdateCategory(c *gin.Context) {
	var input categoryRequest
	if !response.Bind(c, &input) {
		return
	}
	category, err := ctl.categories.Update(c.Request.Context(), c.Param("categoryId"), input.input())
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Category updated successfully", category)
}

func (ctl *CatalogController) DeleteCategory(c *gin.Context) {
	if err := ctl.categories.Delete(c.Request.Context(), c.Param("categoryId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Category deleted successfully", nil)
}

func (ctl *CatalogController) CreateSubCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
		Slug string `json:"slug" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	sub, err := ctl.categories.CreateSub(c.Request.Context(), c.Param("categoryId"), input.Name, input.Slug)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Sub-category created successfully", sub)
}

func (ctl *CatalogController) DeleteSubCategory(c *gin.Context) {
	if err := ctl.categories.DeleteSub(c.Request.Context(), c.Param("subCategoryId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Sub-category deleted successfully", nil)
}

func (ctl *CatalogController) CreateProduct(c *gin.Context) {
	var input struct {
		Name          string   `json:"name" binding:"required"`
		Description   string   `json:"description"`
		Price         float64  `json:"price" binding:"required,gt=0"`
		SalePrice     float64  `json:"salePrice" binding:"gte=0"`
		Quantity      int      `json:"quantity" binding:"gte=0"`
		CategoryID    string   `json:"categoryId" binding:"required"`
		SubCategoryID *string  `json:"subCategoryId"`
		Images        []string `json:"images"`
	}
	if !response.Bind(c, &input) {
		return
	}
	product, err := ctl.products.Create(c.Request.Context(), c.Param("supplierId"), services.ProductInput{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		SalePrice:     input.SalePrice,
		Quantity:      input.Quantity,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Images:        input.Images,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

func (ctl *CatalogController) ListProducts(c *gin.Context) {
	products, err := ctl.products.List(c.Request.Context(), repositories.ProductFilter{
		CategoryID:    c.Query("categoryId"),
		SubCategoryID: c.Query("subCategoryId"),
		SupplierID:    c.Query("supplierId"),
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Products fetched successfully", products)
}

func (ctl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctl.products.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Product fetched successfully", product)
}

func (ctl *CatalogController) CreateMusic(c *gin.Context) {
	var input struct {
		Title         string           `json:"title" binding:"required"`
		Type          models.MusicType `json:"type" binding:"required,oneof=FREE PAID"`
		Price         float64          `json:"price" binding:"gte=0"`
		CategoryID    string           `json:"categoryId" binding:"required"`
		SubCategoryID *string          `json:"subCategoryId"`
		Audio         string           `json:"audio" binding:"required"`
		Thumbnail     *string          `json:"thumbnail"`
	}
	if !response.Bind(c, &input) {
		return
	}
	music, err := ctl.music.Create(c.Request.Context(), c.Param("artistId"), services.MusicInput{
		Title:         input.Title,
		Type:          input.Type,
		Price:         input.Price,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Audio:         input.Audio,
		Thumbnail:     input.Thumbnail,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Music created successfully", music)
}

func (ctl *CatalogController) ListMusic(c *gin.Context) {
	music, err := ctl.music.List(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Music fetched successfully", music)
}
