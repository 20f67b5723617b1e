package impl

import (
	"context"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type RelationRepositoryImpl struct {
	DB *gorm.DB
}

func NewRelationRepository(db *gorm.DB) repositories.RelationRepository {
	return &RelationRepositoryImpl{DB: db}
}

func (r *RelationRepositoryImpl) Create(ctx context.Context, relation *models.ChildRelation) error {
	return r.DB.WithContext(ctx).Create(relation).Error
}

func (r *RelationRepositoryImpl) FindByID(ctx context.Context, id string) (models.ChildRelation, error) {
	var relation models.ChildRelation
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&relation).Error
	return relation, err
}

func (r *RelationRepositoryImpl) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.ChildRelation{}).
		Where("email = ? AND is_deleted = ?", email, false).
		Count(&count).Error
	return count > 0, err
}

func (r *RelationRepositoryImpl) ListForChild(ctx context.Context, childID string) ([]models.ChildRelation, error) {
	var relations []models.ChildRelation
	err := r.DB.WithContext(ctx).
		Where("child_id = ? AND is_deleted = ?", childID, false).
		Order("created_at DESC").
		Find(&relations).Error
	return relations, err
}

func (r *RelationRepositoryImpl) Remove(ctx context.Context, relativeID string, at time.Time) error {
	deleted := models.SoftDeleteColumns(at)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		softDeletes := []interface{}{&models.Cart{}, &models.Order{}, &models.PurchasedMusic{}}
		for _, model := range softDeletes {
			if err := tx.Model(model).Where("relative_id = ?", relativeID).Updates(deleted).Error; err != nil {
				return err
			}
		}
		hardDeletes := []interface{}{&models.ProductFavorite{}, &models.MusicFavorite{}, &models.Message{}}
		for _, model := range hardDeletes {
			if err := tx.Where("relative_id = ?", relativeID).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("role = ? AND account_id = ?", models.RoleRelative, relativeID).Delete(&models.OTP{}).Error; err != nil {
			return err
		}
		res := tx.Model(&models.ChildRelation{}).Where("id = ? AND is_deleted = ?", relativeID, false).Updates(deleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
