package repositories

import (
	"context"
	"time"

	"BabyNest/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id string) (models.Category, error)
	SlugTaken(ctx context.Context, slug, exceptID string) (bool, error)
	List(ctx context.Context, kind models.CategoryKind) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// SoftDelete cascades to the category's sub-categories and items.
	SoftDelete(ctx context.Context, category models.Category, at time.Time) error

	CreateSub(ctx context.Context, sub *models.SubCategory) error
	FindSub(ctx context.Context, id string) (models.SubCategory, error)
	SoftDeleteSub(ctx context.Context, sub models.SubCategory, kind models.CategoryKind, at time.Time) error

	// CountItems counts live products or music grouped by the given column.
	CountItems(ctx context.Context, kind models.CategoryKind, column string) (map[string]int64, error)
}

type ProductFilter struct {
	CategoryID    string
	SubCategoryID string
	SupplierID    string
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindActive(ctx context.Context, id string) (models.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

type MusicRepository interface {
	Create(ctx context.Context, music *models.Music) error
	FindActive(ctx context.Context, id string) (models.Music, error)
	List(ctx context.Context, categoryID string) ([]models.Music, error)
}
