package impl

import (
	"context"
	"errors"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type CartRepositoryImpl struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) repositories.CartRepository {
	return &CartRepositoryImpl{DB: db}
}

func ownerScope(owner models.Owner) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(owner.Column()+" = ?", owner.ID)
	}
}

func (r *CartRepositoryImpl) FindOrCreate(ctx context.Context, owner models.Owner) (models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Scopes(ownerScope(owner)).Where("is_deleted = ?", false).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{OwnerRefs: models.NewOwnerRefs(owner)}
		err = r.DB.WithContext(ctx).Create(&cart).Error
	}
	return cart, err
}

func (r *CartRepositoryImpl) FindItem(ctx context.Context, cartID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepositoryImpl) FindOwnedItem(ctx context.Context, owner models.Owner, itemID string) (models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts."+owner.Column()+" = ? AND carts.is_deleted = ?", itemID, owner.ID, false).
		First(&item).Error
	return item, err
}

func (r *CartRepositoryImpl) SaveItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Omit("Product").Save(item).Error
}

func (r *CartRepositoryImpl) DeleteItem(ctx context.Context, itemID string) error {
	return r.DB.WithContext(ctx).Where("id = ?", itemID).Delete(&models.CartItem{}).Error
}

func (r *CartRepositoryImpl) ListItems(ctx context.Context, owner models.Owner) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts."+owner.Column()+" = ? AND carts.is_deleted = ?", owner.ID, false).
		Order("cart_items.created_at DESC").
		Find(&items).Error
	return items, err
}
