package impl

import (
	"context"
	"fmt"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type CategoryRepositoryImpl struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{DB: db}
}

// itemModel is the table holding the items of a category kind.
func itemModel(kind models.CategoryKind) interface{} {
	if kind == models.CategoryMusic {
		return &models.Music{}
	}
	return &models.Product{}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&category).Error
	return category, err
}

func (r *CategoryRepositoryImpl) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	query := r.DB.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, kind models.CategoryKind) ([]models.Category, error) {
	query := r.DB.WithContext(ctx).
		Preload("SubCategories", "is_deleted = ?", false).
		Where("is_deleted = ?", false)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	var categories []models.Category
	err := query.Order("created_at DESC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Model(category).
		Select("name", "slug", "status", "updated_at").
		Updates(category).Error
}

func (r *CategoryRepositoryImpl) SoftDelete(ctx context.Context, category models.Category, at time.Time) error {
	deleted := models.SoftDeleteColumns(at)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).Where("id = ?", category.ID).Updates(deleted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SubCategory{}).
			Where("category_id = ? AND is_deleted = ?", category.ID, false).
			Updates(deleted).Error; err != nil {
			return err
		}
		return tx.Model(itemModel(category.Kind)).
			Where("category_id = ? AND is_deleted = ?", category.ID, false).
			Updates(deleted).Error
	})
}

func (r *CategoryRepositoryImpl) CreateSub(ctx context.Context, sub *models.SubCategory) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

func (r *CategoryRepositoryImpl) FindSub(ctx context.Context, id string) (models.SubCategory, error) {
	var sub models.SubCategory
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&sub).Error
	return sub, err
}

func (r *CategoryRepositoryImpl) SoftDeleteSub(ctx context.Context, sub models.SubCategory, kind models.CategoryKind, at time.Time) error {
	deleted := models.SoftDeleteColumns(at)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SubCategory{}).Where("id = ?", sub.ID).Updates(deleted).Error; err != nil {
			return err
		}
		return tx.Model(itemModel(kind)).
			Where("sub_category_id = ? AND is_deleted = ?", sub.ID, false).
			Updates(deleted).Error
	})
}

func (r *CategoryRepositoryImpl) CountItems(ctx context.Context, kind models.CategoryKind, column string) (map[string]int64, error) {
	if column != "category_id" && column != "sub_category_id" {
		return nil, fmt.Errorf("cannot group items by %q", column)
	}
	var rows []struct {
		GroupKey *string
		Count    int64
	}
	err := r.DB.WithContext(ctx).Model(itemModel(kind)).
		Select(column+" AS group_key, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.GroupKey != nil {
			counts[*row.GroupKey] = row.Count
		}
	}
	return counts, nil
}

type ProductRepositoryImpl struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepositoryImpl{DB: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepositoryImpl) FindActive(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&product).Error
	return product, err
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	query := r.DB.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubCategoryID != "" {
		query = query.Where("sub_category_id = ?", filter.SubCategoryID)
	}
	if filter.SupplierID != "" {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	var products []models.Product
	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

type MusicRepositoryImpl struct {
	DB *gorm.DB
}

func NewMusicRepository(db *gorm.DB) repositories.MusicRepository {
	return &MusicRepositoryImpl{DB: db}
}

func (r *MusicRepositoryImpl) Create(ctx context.Context, music *models.Music) error {
	return r.DB.WithContext(ctx).Create(music).Error
}

func (r *MusicRepositoryImpl) FindActive(ctx context.Context, id string) (models.Music, error) {
	var music models.Music
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&music).Error
	return music, err
}

func (r *MusicRepositoryImpl) List(ctx context.Context, categoryID string) ([]models.Music, error) {
	query := r.DB.WithContext(ctx).Where("is_deleted = ?", false)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	var music []models.Music
	err := query.Order("created_at DESC").Find(&music).Error
	return music, err
}
