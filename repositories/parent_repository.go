package repositories

import (
	"context"

	"BabyNest/models"
)

type ParentRepository interface {
	FindByID(ctx context.Context, id string) (models.Parent, error)
	FindByEmail(ctx context.Context, email string) (models.Parent, error)
	FindByGoogleUID(ctx context.Context, uid string) (models.Parent, error)
	Create(ctx context.Context, parent *models.Parent) error
	Save(ctx context.Context, parent *models.Parent) error
}
