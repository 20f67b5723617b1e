package impl

import (
	"context"
	"errors"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type FavoriteRepositoryImpl struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) repositories.FavoriteRepository {
	return &FavoriteRepositoryImpl{DB: db}
}

func (r *FavoriteRepositoryImpl) ToggleProduct(ctx context.Context, owner models.Owner, productID string) (*models.ProductFavorite, bool, error) {
	var favorite models.ProductFavorite
	added := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Scopes(ownerScope(owner)).Where("product_id = ?", productID).First(&favorite).Error
		if err == nil {
			return tx.Delete(&favorite).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		favorite = models.ProductFavorite{OwnerRefs: models.NewOwnerRefs(owner), ProductID: productID}
		added = true
		return tx.Create(&favorite).Error
	})
	if err != nil || !added {
		return nil, false, err
	}
	return &favorite, true, nil
}

func (r *FavoriteRepositoryImpl) ListProducts(ctx context.Context, owner models.Owner) ([]models.ProductFavorite, error) {
	var favorites []models.ProductFavorite
	err := r.DB.WithContext(ctx).Preload("Product").Scopes(ownerScope(owner)).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepositoryImpl) ToggleMusic(ctx context.Context, owner models.Owner, musicID string) (*models.MusicFavorite, bool, error) {
	var favorite models.MusicFavorite
	added := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Scopes(ownerScope(owner)).Where("music_id = ?", musicID).First(&favorite).Error
		if err == nil {
			return tx.Delete(&favorite).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		favorite = models.MusicFavorite{OwnerRefs: models.NewOwnerRefs(owner), MusicID: musicID}
		added = true
		return tx.Create(&favorite).Error
	})
	if err != nil || !added {
		return nil, false, err
	}
	return &favorite, true, nil
}

func (r *FavoriteRepositoryImpl) ListMusic(ctx context.Context, owner models.Owner) ([]models.MusicFavorite, error) {
	var favorites []models.MusicFavorite
	err := r.DB.WithContext(ctx).Preload("Music").Scopes(ownerScope(owner)).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

type PurchaseRepositoryImpl struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) repositories.PurchaseRepository {
	return &PurchaseRepositoryImpl{DB: db}
}

func (r *PurchaseRepositoryImpl) Exists(ctx context.Context, owner models.Owner, musicID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.PurchasedMusic{}).
		Scopes(ownerScope(owner)).
		Where("music_id = ? AND is_deleted = ?", musicID, false).
		Count(&count).Error
	return count > 0, err
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, purchase *models.PurchasedMusic) error {
	return r.DB.WithContext(ctx).Create(purchase).Error
}

func (r *PurchaseRepositoryImpl) List(ctx context.Context, owner models.Owner) ([]models.PurchasedMusic, error) {
	var purchases []models.PurchasedMusic
	err := r.DB.WithContext(ctx).
		Preload("Music").
		Scopes(ownerScope(owner)).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}
