package repositories

import (
	"context"
	"time"

	"BabyNest/models"
)

type RelationRepository interface {
	Create(ctx context.Context, relation *models.ChildRelation) error
	FindByID(ctx context.Context, id string) (models.ChildRelation, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	ListForChild(ctx context.Context, childID string) ([]models.ChildRelation, error)
	// Remove soft-deletes the relative with carts, orders and purchases and
	// drops favorites, messages and codes, all in one transaction.
	Remove(ctx context.Context, relativeID string, at time.Time) error
}
