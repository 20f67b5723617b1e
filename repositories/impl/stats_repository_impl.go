package impl

import (
	"context"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type StatsRepositoryImpl struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) repositories.StatsRepository {
	return &StatsRepositoryImpl{DB: db}
}

// Count runs SELECT COUNT(*) on a table the caller names; never pass user input as table.
func (r *StatsRepositoryImpl) Count(ctx context.Context, table string, where string, args ...interface{}) (int64, error) {
	var count int64
	query := r.DB.WithContext(ctx).Table(table)
	if where != "" {
		query = query.Where(where, args...)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *StatsRepositoryImpl) MusicRevenue(ctx context.Context, artistID string) ([]repositories.MusicRevenue, int64, error) {
	purchases := func(db *gorm.DB) *gorm.DB {
		db = db.Table("purchased_music").
			Joins("JOIN music ON music.id = purchased_music.music_id").
			Where("purchased_music.is_deleted = ?", false)
		if artistID != "" {
			db = db.Where("music.artist_id = ?", artistID)
		}
		return db
	}

	rows := []repositories.MusicRevenue{}
	query := r.DB.WithContext(ctx).Scopes(purchases).
		Select("music.id AS music_id, music.title AS title, COUNT(purchased_music.id) AS purchases, COALESCE(SUM(music.price), 0) AS revenue")
	if artistID != "" {
		query = query.Where("music.type = ?", models.MusicPaid)
	}
	err := query.Group("music.id, music.title").Order("revenue DESC").Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.DB.WithContext(ctx).Scopes(purchases).Count(&total).Error
	return rows, total, err
}

func (r *StatsRepositoryImpl) ProductRevenue(ctx context.Context, supplierID string) ([]repositories.ProductRevenue, error) {
	rows := []repositories.ProductRevenue{}
	err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("products.id AS product_id, products.name AS product_name, "+
			"COALESCE(SUM(order_items.quantity), 0) AS quantity_sold, "+
			"COALESCE(SUM(order_items.quantity * products.sale_price), 0) AS revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("products.supplier_id = ? AND orders.payment_status = ? AND orders.is_deleted = ?", supplierID, models.PaymentPaid, false).
		Group("products.id, products.name").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *StatsRepositoryImpl) CountPerDay(ctx context.Context, table string, where string, args ...interface{}) ([]repositories.DateCount, error) {
	rows := []repositories.DateCount{}
	query := r.DB.WithContext(ctx).
		Table(table).
		Select("TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS date, COUNT(*) AS count")
	if where != "" {
		query = query.Where(where, args...)
	}
	err := query.Group("DATE(created_at)").Order("DATE(created_at) ASC").Scan(&rows).Error
	return rows, err
}

type TipRepositoryImpl struct {
	DB *gorm.DB
}

func NewTipRepository(db *gorm.DB) repositories.TipRepository {
	return &TipRepositoryImpl{DB: db}
}

func (r *TipRepositoryImpl) ListTips(ctx context.Context) (map[int][]string, error) {
	var tips []models.Tip
	if err := r.DB.WithContext(ctx).Order("day ASC, id ASC").Find(&tips).Error; err != nil {
		return nil, err
	}
	byDay := make(map[int][]string)
	for _, t := range tips {
		byDay[t.Day] = append(byDay[t.Day], t.Text)
	}
	return byDay, nil
}
