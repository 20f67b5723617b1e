package repositories

import (
	"context"

	"BabyNest/models"
)

type QueryRepository interface {
	Create(ctx context.Context, query *models.SupportQuery) error
	FindByID(ctx context.Context, id string) (models.SupportQuery, error)
	ListForParent(ctx context.Context, parentID string) ([]models.SupportQuery, error)
	// List matches search case-insensitively against the subject or the email.
	List(ctx context.Context, search string) ([]models.SupportQuery, error)
	Save(ctx context.Context, query *models.SupportQuery) error
	Delete(ctx context.Context, id string) error
}
