package impl

import (
	"context"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type ParentRepositoryImpl struct {
	DB *gorm.DB
}

func NewParentRepository(db *gorm.DB) repositories.ParentRepository {
	return &ParentRepositoryImpl{DB: db}
}

func (r *ParentRepositoryImpl) FindByID(ctx context.Context, id string) (models.Parent, error) {
	var parent models.Parent
	if err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&parent).Error; err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) FindByEmail(ctx context.Context, email string) (models.Parent, error) {
	var parent models.Parent
	if err := r.DB.WithContext(ctx).Where("email = ? AND is_deleted = ?", email, false).First(&parent).Error; err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) FindByGoogleUID(ctx context.Context, uid string) (models.Parent, error) {
	var parent models.Parent
	if err := r.DB.WithContext(ctx).Where("google_uid = ? AND is_deleted = ?", uid, false).First(&parent).Error; err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) Create(ctx context.Context, parent *models.Parent) error {
	return r.DB.WithContext(ctx).Create(parent).Error
}

func (r *ParentRepositoryImpl) Save(ctx context.Context, parent *models.Parent) error {
	return r.DB.WithContext(ctx).Omit("Children").Save(parent).Error
}
