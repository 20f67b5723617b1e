package impl

import (
	"context"
	"strings"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type VendorRepositoryImpl struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) repositories.VendorRepository {
	return &VendorRepositoryImpl{DB: db}
}

func nameSearch(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return db
		}
		return db.Where("name ILIKE ?", "%"+search+"%")
	}
}

// softDeleteOwned flags the account and everything it owns through ownerColumn.
func (r *VendorRepositoryImpl) softDeleteOwned(ctx context.Context, account, owned interface{}, ownerColumn, id string, at time.Time) error {
	deleted := models.SoftDeleteColumns(at)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(account).Where("id = ? AND is_deleted = ?", id, false).Updates(deleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(owned).Where(ownerColumn+" = ? AND is_deleted = ?", id, false).Updates(deleted).Error
	})
}

func (r *VendorRepositoryImpl) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	return r.DB.WithContext(ctx).Create(supplier).Error
}

func (r *VendorRepositoryImpl) FindSupplier(ctx context.Context, id string) (models.Supplier, error) {
	var supplier models.Supplier
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&supplier).Error
	return supplier, err
}

func (r *VendorRepositoryImpl) ListSuppliers(ctx context.Context, search string) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.DB.WithContext(ctx).
		Scopes(nameSearch(search)).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&suppliers).Error
	return suppliers, err
}

func (r *VendorRepositoryImpl) SaveSupplier(ctx context.Context, supplier *models.Supplier) error {
	return r.DB.WithContext(ctx).Save(supplier).Error
}

func (r *VendorRepositoryImpl) DeleteSupplier(ctx context.Context, id string, at time.Time) error {
	return r.softDeleteOwned(ctx, &models.Supplier{}, &models.Product{}, "supplier_id", id, at)
}

func (r *VendorRepositoryImpl) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return r.DB.WithContext(ctx).Create(artist).Error
}

func (r *VendorRepositoryImpl) FindArtist(ctx context.Context, id string) (models.Artist, error) {
	var artist models.Artist
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&artist).Error
	return artist, err
}

func (r *VendorRepositoryImpl) ListArtists(ctx context.Context, search string) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.DB.WithContext(ctx).
		Scopes(nameSearch(search)).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&artists).Error
	return artists, err
}

func (r *VendorRepositoryImpl) SaveArtist(ctx context.Context, artist *models.Artist) error {
	return r.DB.WithContext(ctx).Save(artist).Error
}

func (r *VendorRepositoryImpl) DeleteArtist(ctx context.Context, id string, at time.Time) error {
	return r.softDeleteOwned(ctx, &models.Artist{}, &models.Music{}, "artist_id", id, at)
}
