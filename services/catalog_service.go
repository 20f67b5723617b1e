package services

import (
	"context"
	"errors"
	"strings"

	"BabyNest/models"
	"BabyNest/repositories"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name   string
	Slug   string
	Status models.AccountStatus
	Kind   models.CategoryKind
}

type SubCategoryView struct {
	models.SubCategory
	ItemCount int64 `json:"itemCount"`
}

type CategoryView struct {
	models.Category
	ItemCount     int64             `json:"itemCount"`
	SubCategories []SubCategoryView `json:"subCategories"`
}

type CategoryService struct {
	Categories repositories.CategoryRepository
	Clock      Clock
}

func NewCategoryService(categories repositories.CategoryRepository, clock Clock) *CategoryService {
	return &CategoryService{Categories: categories, Clock: clock}
}

func (s *CategoryService) ensureSlugFree(ctx context.Context, slug, exceptID string) error {
	taken, err := s.Categories.SlugTaken(ctx, slug, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return Conflict("Slug already exists")
	}
	return nil
}

func slugConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict("Slug already exists")
	}
	return err
}

func (s *CategoryService) Create(ctx context.Context, adminID string, in CategoryInput) (models.Category, error) {
	slug := strings.TrimSpace(in.Slug)
	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return models.Category{}, err
	}
	category := models.Category{
		Name:    strings.TrimSpace(in.Name),
		Slug:    slug,
		Status:  in.Status,
		Kind:    in.Kind,
		AdminID: adminID,
	}
	if category.Status == "" {
		category.Status = models.StatusActive
	}
	if category.Kind == "" {
		category.Kind = models.CategoryProduct
	}
	if err := s.Categories.Create(ctx, &category); err != nil {
		return models.Category{}, slugConflict(err)
	}
	return category, nil
}

// List returns the categories of a kind (all when empty) with live item
// counts per category and sub-category.
func (s *CategoryService) List(ctx context.Context, kind models.CategoryKind) ([]CategoryView, error) {
	var (
		categories                 []models.Category
		productByCat, productBySub map[string]int64
		musicByCat, musicBySub     map[string]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = s.Categories.List(gctx, kind)
		return err
	})
	g.Go(func() (err error) {
		productByCat, err = s.Categories.CountItems(gctx, models.CategoryProduct, "category_id")
		return err
	})
	g.Go(func() (err error) {
		productBySub, err = s.Categories.CountItems(gctx, models.CategoryProduct, "sub_category_id")
		return err
	})
	g.Go(func() (err error) {
		musicByCat, err = s.Categories.CountItems(gctx, models.CategoryMusic, "category_id")
		return err
	})
	g.Go(func() (err error) {
		musicBySub, err = s.Categories.CountItems(gctx, models.CategoryMusic, "sub_category_id")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		byCat, bySub := productByCat, productBySub
		if c.Kind == models.CategoryMusic {
			byCat, bySub = musicByCat, musicBySub
		}
		view := CategoryView{Category: c, ItemCount: byCat[c.ID], SubCategories: make([]SubCategoryView, 0, len(c.SubCategories))}
		for _, sub := range c.SubCategories {
			view.SubCategories = append(view.SubCategories, SubCategoryView{SubCategory: sub, ItemCount: bySub[sub.ID]})
		}
		view.Category.SubCategories = nil
		views = append(views, view)
	}
	return views, nil
}

func (s *CategoryService) Update(ctx context.Context, categoryID string, in CategoryInput) (models.Category, error) {
	category, err := s.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return models.Category{}, notFoundOr(err, "Category not found")
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		category.Name = name
	}
	if slug := strings.TrimSpace(in.Slug); slug != "" && slug != category.Slug {
		if err := s.ensureSlugFree(ctx, slug, category.ID); err != nil {
			return models.Category{}, err
		}
		category.Slug = slug
	}
	if in.Status != "" {
		category.Status = in.Status
	}
	if err := s.Categories.Update(ctx, &category); err != nil {
		return models.Category{}, slugConflict(err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	category, err := s.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return notFoundOr(err, "Category not found")
	}
	return s.Categories.SoftDelete(ctx, category, s.Clock())
}

func (s *CategoryService) CreateSub(ctx context.Context, categoryID, name, slug string) (models.SubCategory, error) {
	if _, err := s.Categories.FindByID(ctx, categoryID); err != nil {
		return models.SubCategory{}, notFoundOr(err, "Category not found")
	}
	sub := models.SubCategory{CategoryID: categoryID, Name: strings.TrimSpace(name), Slug: strings.TrimSpace(slug)}
	if err := s.Categories.CreateSub(ctx, &sub); err != nil {
		return models.SubCategory{}, slugConflict(err)
	}
	return sub, nil
}

func (s *CategoryService) DeleteSub(ctx context.Context, subCategoryID string) error {
	sub, err := s.Categories.FindSub(ctx, subCategoryID)
	if err != nil {
		return notFoundOr(err, "Sub-category not found")
	}
	category, err := s.Categories.FindByID(ctx, sub.CategoryID)
	if err != nil {
		return notFoundOr(err, "Category not found")
	}
	return s.Categories.SoftDeleteSub(ctx, sub, category.Kind, s.Clock())
}

// checkPlacement verifies a category of the kind and, when given, that the
// sub-category belongs to it.
func checkPlacement(ctx context.Context, categories repositories.CategoryRepository, kind models.CategoryKind, categoryID string, subCategoryID *string) error {
	category, err := categories.FindByID(ctx, categoryID)
	if err != nil {
		return notFoundOr(err, "Category not found")
	}
	if category.Kind != kind {
		return Invalid("Category does not hold this kind of item")
	}
	if subCategoryID == nil || *subCategoryID == "" {
		return nil
	}
	sub, err := categories.FindSub(ctx, *subCategoryID)
	if err != nil {
		return notFoundOr(err, "Sub-category not found")
	}
	if sub.CategoryID != category.ID {
		return Invalid("Sub-category does not belong to the category")
	}
	return nil
}

type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	SalePrice     float64
	Quantity      int
	CategoryID    string
	SubCategoryID *string
	Images        []string
}

type ProductService struct {
	Products   repositories.ProductRepository
	Categories repositories.CategoryRepository
	Uploads    *UploadService
}

func NewProductService(products repositories.ProductRepository, categories repositories.CategoryRepository, uploads *UploadService) *ProductService {
	return &ProductService{Products: products, Categories: categories, Uploads: uploads}
}

func (s *ProductService) Create(ctx context.Context, supplierID string, in ProductInput) (models.Product, error) {
	if err := checkPlacement(ctx, s.Categories, models.CategoryProduct, in.CategoryID, in.SubCategoryID); err != nil {
		return models.Product{}, err
	}
	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		img := img
		url, err := s.Uploads.UploadOptional(ctx, &img)
		if err != nil {
			return models.Product{}, err
		}
		images = append(images, *url)
	}
	product := models.Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		SalePrice:     in.SalePrice,
		Quantity:      in.Quantity,
		Images:        images,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		SupplierID:    supplierID,
	}
	if product.SalePrice <= 0 {
		product.SalePrice = product.Price
	}
	if err := s.Products.Create(ctx, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	return s.Products.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, productID string) (models.Product, error) {
	product, err := s.Products.FindActive(ctx, productID)
	if err != nil {
		return models.Product{}, notFoundOr(err, "Product not found")
	}
	return product, nil
}

type MusicInput struct {
	Title         string
	Type          models.MusicType
	Price         float64
	CategoryID    string
	SubCategoryID *string
	Audio         string
	Thumbnail     *string
}

type MusicService struct {
	Music      repositories.MusicRepository
	Categories repositories.CategoryRepository
	Uploads    *UploadService
}

func NewMusicService(music repositories.MusicRepository, categories repositories.CategoryRepository, uploads *UploadService) *MusicService {
	return &MusicService{Music: music, Categories: categories, Uploads: uploads}
}

func (s *MusicService) Create(ctx context.Context, artistID string, in MusicInput) (models.Music, error) {
	if in.Type == models.MusicPaid && in.Price <= 0 {
		return models.Music{}, Invalid("Paid music needs a price")
	}
	if err := checkPlacement(ctx, s.Categories, models.CategoryMusic, in.CategoryID, in.SubCategoryID); err != nil {
		return models.Music{}, err
	}
	audio, err := s.Uploads.UploadDataURL(ctx, in.Audio)
	if err != nil {
		return models.Music{}, err
	}
	thumbnail, err := s.Uploads.UploadOptional(ctx, in.Thumbnail)
	if err != nil {
		return models.Music{}, err
	}
	music := models.Music{
		Title:         strings.TrimSpace(in.Title),
		URL:           audio.URL,
		MimeType:      audio.ContentType,
		Size:          audio.Size,
		Type:          in.Type,
		Price:         in.Price,
		Thumbnail:     thumbnail,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		ArtistID:      artistID,
	}
	if music.Type == models.MusicFree {
		music.Price = 0
	}
	if err := s.Music.Create(ctx, &music); err != nil {
		return models.Music{}, err
	}
	return music, nil
}

func (s *MusicService) List(ctx context.Context, categoryID string) ([]models.Music, error) {
	return s.Music.List(ctx, categoryID)
}
