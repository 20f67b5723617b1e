package impl

import (
	"context"
	"errors"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) repositories.ActivityRepository {
	return &ActivityRepositoryImpl{DB: db}
}

func (r *ActivityRepositoryImpl) StartSleep(ctx context.Context, sleep *models.BabySleep, owner models.Owner, dayStart, dayEnd time.Time) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity models.Activity
		err := tx.Where("child_id = ? AND type = ? AND created_at >= ? AND created_at < ?",
			sleep.ChildID, models.ActivitySleep, dayStart, dayEnd).
			First(&activity).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			activity = models.Activity{
				ChildID:   sleep.ChildID,
				Type:      models.ActivitySleep,
				OwnerRefs: models.NewOwnerRefs(owner),
			}
			err = tx.Create(&activity).Error
		}
		if err != nil {
			return err
		}
		sleep.ActivityID = activity.ID
		return tx.Create(sleep).Error
	})
}

func (r *ActivityRepositoryImpl) FindSleep(ctx context.Context, childID, sleepID string) (models.BabySleep, error) {
	var sleep models.BabySleep
	if err := r.DB.WithContext(ctx).Where("id = ? AND child_id = ?", sleepID, childID).First(&sleep).Error; err != nil {
		return models.BabySleep{}, err
	}
	return sleep, nil
}

func (r *ActivityRepositoryImpl) FindOpenSleep(ctx context.Context, childID string) (*models.BabySleep, error) {
	var sleep models.BabySleep
	err := r.DB.WithContext(ctx).Where("child_id = ? AND awake_time IS NULL", childID).First(&sleep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sleep, nil
}

func (r *ActivityRepositoryImpl) SaveSleep(ctx context.Context, sleep *models.BabySleep) error {
	return r.DB.WithContext(ctx).Save(sleep).Error
}

func (r *ActivityRepositoryImpl) ListSleeps(ctx context.Context, childID string, from, to *time.Time) ([]models.BabySleep, error) {
	query := r.DB.WithContext(ctx).Where("child_id = ?", childID)
	if from != nil && to != nil {
		query = query.Where("sleep_time < ? AND (awake_time > ? OR awake_time IS NULL)", *to, *from)
	}
	var sleeps []models.BabySleep
	err := query.Order("sleep_time ASC").Find(&sleeps).Error
	return sleeps, err
}

func (r *ActivityRepositoryImpl) SleepsSince(ctx context.Context, childID string, since time.Time) ([]models.BabySleep, error) {
	var sleeps []models.BabySleep
	err := r.DB.WithContext(ctx).
		Where("child_id = ? AND (created_at >= ? OR sleep_time >= ? OR awake_time IS NULL)", childID, since, since).
		Order("sleep_time ASC").
		Find(&sleeps).Error
	return sleeps, err
}

func (r *ActivityRepositoryImpl) LatestSleep(ctx context.Context, childID string) (*models.BabySleep, error) {
	var sleep models.BabySleep
	err := r.DB.WithContext(ctx).Where("child_id = ?", childID).Order("sleep_time DESC").First(&sleep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sleep, nil
}

func (r *ActivityRepositoryImpl) CreateTemperature(ctx context.Context, reading *models.TemperatureReading, owner models.Owner) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		activity := models.Activity{
			ChildID:   reading.ChildID,
			Type:      models.ActivityTemperature,
			OwnerRefs: models.NewOwnerRefs(owner),
		}
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}
		reading.ActivityID = activity.ID
		return tx.Create(reading).Error
	})
}

func (r *ActivityRepositoryImpl) ListTemperatures(ctx context.Context, childID string, from, to *time.Time) ([]models.TemperatureReading, error) {
	query := r.DB.WithContext(ctx).Where("child_id = ?", childID)
	if from != nil && to != nil {
		query = query.Where("date >= ? AND date < ?", *from, *to)
	}
	var readings []models.TemperatureReading
	err := query.Order("date DESC").Find(&readings).Error
	return readings, err
}

func (r *ActivityRepositoryImpl) LatestTemperature(ctx context.Context, childID string) (*models.TemperatureReading, error) {
	var reading models.TemperatureReading
	err := r.DB.WithContext(ctx).Where("child_id = ?", childID).Order("date DESC").First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (r *ActivityRepositoryImpl) FeedsBetween(ctx context.Context, childID string, from, to time.Time) ([]models.Activity, error) {
	var feeds []models.Activity
	err := r.DB.WithContext(ctx).
		Where("child_id = ? AND type = ? AND feed_time >= ? AND feed_time < ?", childID, models.ActivityFeed, from, to).
		Order("feed_time ASC").
		Find(&feeds).Error
	return feeds, err
}
