package repositories

import (
	"context"
	"errors"

	"BabyNest/models"
)

var (
	// ErrChildLimit is returned by CreateForParent when the parent already has a live child.
	ErrChildLimit = errors.New("parent already has a child")
	// ErrParentLimit is returned by AddParent when the child already has two parents.
	ErrParentLimit = errors.New("child already has two parents")
)

type ChildRepository interface {
	// CreateForParent locks the parent row, enforces the one-child limit,
	// inserts the child, links it and records the first growth entry.
	CreateForParent(ctx context.Context, child *models.Child, parentID string, initial *models.GrowthEntry) error
	// AddParent locks the child row, enforces the two-parent limit, then
	// inserts the parent and links it to the child.
	AddParent(ctx context.Context, childID string, parent *models.Parent) error
	CountParents(ctx context.Context, childID string) (int64, error)
	FindForParent(ctx context.Context, parentID, childID string) (models.Child, error)
	FindByID(ctx context.Context, childID string) (models.Child, error)
	ListForParent(ctx context.Context, parentID string) ([]models.Child, error)
	Save(ctx context.Context, child *models.Child) error

	ListGrowth(ctx context.Context, childID string) ([]models.GrowthEntry, error)
	LatestGrowth(ctx context.Context, childID string) (*models.GrowthEntry, error)
	// AddGrowth records the entry and copies its measurements onto the child.
	AddGrowth(ctx context.Context, entry *models.GrowthEntry) error
}
