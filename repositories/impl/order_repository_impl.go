package impl

import (
	"context"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &OrderRepositoryImpl{DB: db}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *models.Order) error {
	owner, ok := order.OwnerRefs.Owner()
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("OrderItems").Create(order).Error; err != nil {
			return err
		}
		for i := range order.OrderItems {
			order.OrderItems[i].OrderID = order.ID
		}
		if len(order.OrderItems) > 0 {
			if err := tx.Create(&order.OrderItems).Error; err != nil {
				return err
			}
		}
		if !ok {
			return nil
		}
		return tx.Where("cart_id IN (?)",
			tx.Model(&models.Cart{}).Select("id").Where(owner.Column()+" = ? AND is_deleted = ?", owner.ID, false),
		).Delete(&models.CartItem{}).Error
	})
}

func (r *OrderRepositoryImpl) ListForOwner(ctx context.Context, owner models.Owner) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("OrderItems").
		Scopes(ownerScope(owner)).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) List(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	query := r.DB.WithContext(ctx).Preload("OrderItems").Where("is_deleted = ?", false)
	if status != "" {
		query = query.Where("order_status = ?", status)
	}
	var orders []models.Order
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Preload("OrderItems").Where("id = ? AND is_deleted = ?", id, false).First(&order).Error
	return order, err
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("order_status", status).Error
}
