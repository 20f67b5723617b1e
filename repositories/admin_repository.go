package repositories

import (
	"context"
)

type MusicRevenue struct {
	MusicID   string  `json:"musicId"`
	Title     string  `json:"title"`
	Purchases int64   `json:"purchases"`
	Revenue   float64 `json:"revenue"`
}

type ProductRevenue struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	QuantitySold int64   `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// StatsRepository backs the admin, supplier and artist dashboards. Every
// method is a single read.
type StatsRepository interface {
	Count(ctx context.Context, table string, where string, args ...interface{}) (int64, error)
	// MusicRevenue groups live purchases per track and returns the total
	// purchase count. A non-empty artistID limits rows to that artist's paid tracks.
	MusicRevenue(ctx context.Context, artistID string) ([]MusicRevenue, int64, error)
	// ProductRevenue groups the supplier's items on paid orders per product.
	ProductRevenue(ctx context.Context, supplierID string) ([]ProductRevenue, error)
	// CountPerDay groups the matching rows of table by the day of created_at.
	CountPerDay(ctx context.Context, table string, where string, args ...interface{}) ([]DateCount, error)
}

type TipRepository interface {
	ListTips(ctx context.Context) (map[int][]string, error)
}
