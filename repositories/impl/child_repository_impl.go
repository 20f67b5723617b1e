package impl

import (
	"context"
	"errors"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChildRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) repositories.ChildRepository {
	return &ChildRepositoryImpl{DB: db}
}

func (r *ChildRepositoryImpl) CreateForParent(ctx context.Context, child *models.Child, parentID string, initial *models.GrowthEntry) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent models.Parent
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_deleted = ?", parentID, false).
			First(&parent).Error
		if err != nil {
			return err
		}

		var count int64
		err = tx.Table("parent_children").
			Joins("JOIN children ON children.id = parent_children.child_id").
			Where("parent_children.parent_id = ? AND children.is_deleted = ?", parentID, false).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return repositories.ErrChildLimit
		}

		if err := tx.Omit("Parents").Create(child).Error; err != nil {
			return err
		}
		link := map[string]interface{}{"parent_id": parentID, "child_id": child.ID}
		if err := tx.Table("parent_children").Create(link).Error; err != nil {
			return err
		}
		if initial == nil {
			return nil
		}
		initial.ChildID = child.ID
		return tx.Create(initial).Error
	})
}

func (r *ChildRepositoryImpl) AddParent(ctx context.Context, childID string, parent *models.Parent) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var child models.Child
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_deleted = ?", childID, false).
			First(&child).Error
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Table("parent_children").Where("child_id = ?", childID).Count(&count).Error; err != nil {
			return err
		}
		if count >= 2 {
			return repositories.ErrParentLimit
		}

		if err := tx.Omit("Children").Create(parent).Error; err != nil {
			return err
		}
		link := map[string]interface{}{"parent_id": parent.ID, "child_id": childID}
		return tx.Table("parent_children").Create(link).Error
	})
}

func (r *ChildRepositoryImpl) CountParents(ctx context.Context, childID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("parent_children").Where("child_id = ?", childID).Count(&count).Error
	return count, err
}

func (r *ChildRepositoryImpl) FindForParent(ctx context.Context, parentID, childID string) (models.Child, error) {
	var child models.Child
	err := r.DB.WithContext(ctx).
		Joins("JOIN parent_children ON parent_children.child_id = children.id").
		Where("children.id = ? AND parent_children.parent_id = ? AND children.is_deleted = ?", childID, parentID, false).
		First(&child).Error
	if err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) FindByID(ctx context.Context, childID string) (models.Child, error) {
	var child models.Child
	if err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", childID, false).First(&child).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) ListForParent(ctx context.Context, parentID string) ([]models.Child, error) {
	var children []models.Child
	err := r.DB.WithContext(ctx).
		Joins("JOIN parent_children ON parent_children.child_id = children.id").
		Where("parent_children.parent_id = ? AND children.is_deleted = ?", parentID, false).
		Order("children.created_at DESC").
		Find(&children).Error
	return children, err
}

func (r *ChildRepositoryImpl) Save(ctx context.Context, child *models.Child) error {
	return r.DB.WithContext(ctx).Omit("Parents").Save(child).Error
}

func (r *ChildRepositoryImpl) ListGrowth(ctx context.Context, childID string) ([]models.GrowthEntry, error) {
	var entries []models.GrowthEntry
	err := r.DB.WithContext(ctx).Where("child_id = ?", childID).Order("date DESC").Find(&entries).Error
	return entries, err
}

func (r *ChildRepositoryImpl) LatestGrowth(ctx context.Context, childID string) (*models.GrowthEntry, error) {
	var entry models.GrowthEntry
	err := r.DB.WithContext(ctx).Where("child_id = ?", childID).Order("created_at DESC").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ChildRepositoryImpl) AddGrowth(ctx context.Context, entry *models.GrowthEntry) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.Child{}).Where("id = ?", entry.ChildID).
			Updates(map[string]interface{}{"height": entry.Height, "weight": entry.Weight}).Error
	})
}
