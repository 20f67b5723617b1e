package impl

import (
	"context"
	"errors"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type FeedRepositoryImpl struct {
	DB *gorm.DB
}

func NewFeedRepository(db *gorm.DB) repositories.FeedRepository {
	return &FeedRepositoryImpl{DB: db}
}

func (r *FeedRepositoryImpl) CreateSchedule(ctx context.Context, schedule *models.FeedSchedule) error {
	return r.DB.WithContext(ctx).Create(schedule).Error
}

func (r *FeedRepositoryImpl) ListSchedules(ctx context.Context, childID, title string) ([]models.FeedSchedule, error) {
	query := r.DB.WithContext(ctx).Preload("FeedSlots").Where("child_id = ?", childID)
	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}
	var schedules []models.FeedSchedule
	err := query.Order("created_at DESC").Find(&schedules).Error
	return schedules, err
}

func (r *FeedRepositoryImpl) FindSchedule(ctx context.Context, childID, scheduleID string) (models.FeedSchedule, error) {
	var schedule models.FeedSchedule
	err := r.DB.WithContext(ctx).
		Preload("FeedSlots", func(db *gorm.DB) *gorm.DB { return db.Order("feed_time ASC") }).
		Preload("FeedSlots.Activity").
		Where("id = ? AND child_id = ?", scheduleID, childID).
		First(&schedule).Error
	return schedule, err
}

func (r *FeedRepositoryImpl) ActiveSchedule(ctx context.Context, childID string) (*models.FeedSchedule, error) {
	var schedule models.FeedSchedule
	err := r.DB.WithContext(ctx).
		Preload("FeedSlots", func(db *gorm.DB) *gorm.DB { return db.Order("feed_time ASC") }).
		Preload("FeedSlots.Activity").
		Where("child_id = ? AND in_used = ?", childID, true).
		First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *FeedRepositoryImpl) SwitchActive(ctx context.Context, childID, scheduleID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FeedSchedule{}).
			Where("child_id = ? AND in_used = ?", childID, true).
			Update("in_used", false).Error; err != nil {
			return err
		}
		res := tx.Model(&models.FeedSchedule{}).
			Where("id = ? AND child_id = ?", scheduleID, childID).
			Update("in_used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *FeedRepositoryImpl) DeleteSchedule(ctx context.Context, childID, scheduleID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", scheduleID).Delete(&models.FeedSlot{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND child_id = ?", scheduleID, childID).Delete(&models.FeedSchedule{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *FeedRepositoryImpl) FindSlot(ctx context.Context, childID, slotID string) (models.FeedSlot, error) {
	var slot models.FeedSlot
	err := r.DB.WithContext(ctx).
		Joins("JOIN feed_schedules ON feed_schedules.id = feed_slots.schedule_id").
		Where("feed_slots.id = ? AND feed_schedules.child_id = ?", slotID, childID).
		First(&slot).Error
	return slot, err
}

func (r *FeedRepositoryImpl) LogFeed(ctx context.Context, activity *models.Activity, slotID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(activity).Error; err != nil {
			return err
		}
		return tx.Model(&models.FeedSlot{}).Where("id = ?", slotID).Update("activity_id", activity.ID).Error
	})
}
