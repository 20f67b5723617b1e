package impl

import (
	"context"
	"strings"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type QueryRepositoryImpl struct {
	DB *gorm.DB
}

func NewQueryRepository(db *gorm.DB) repositories.QueryRepository {
	return &QueryRepositoryImpl{DB: db}
}

func withParentName(db *gorm.DB) *gorm.DB {
	return db.Preload("Parent", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name")
	})
}

func (r *QueryRepositoryImpl) Create(ctx context.Context, query *models.SupportQuery) error {
	return r.DB.WithContext(ctx).Omit("Parent").Create(query).Error
}

func (r *QueryRepositoryImpl) FindByID(ctx context.Context, id string) (models.SupportQuery, error) {
	var query models.SupportQuery
	err := r.DB.WithContext(ctx).Scopes(withParentName).Where("id = ?", id).First(&query).Error
	return query, err
}

func (r *QueryRepositoryImpl) ListForParent(ctx context.Context, parentID string) ([]models.SupportQuery, error) {
	var queries []models.SupportQuery
	err := r.DB.WithContext(ctx).
		Scopes(withParentName).
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Find(&queries).Error
	return queries, err
}

func (r *QueryRepositoryImpl) List(ctx context.Context, search string) ([]models.SupportQuery, error) {
	db := r.DB.WithContext(ctx).Scopes(withParentName)
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("subject ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	var queries []models.SupportQuery
	err := db.Order("created_at DESC").Find(&queries).Error
	return queries, err
}

func (r *QueryRepositoryImpl) Save(ctx context.Context, query *models.SupportQuery) error {
	return r.DB.WithContext(ctx).Omit("Parent").Save(query).Error
}

func (r *QueryRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.SupportQuery{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
