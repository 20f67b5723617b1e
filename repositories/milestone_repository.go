package repositories

import (
	"context"

	"BabyNest/models"
)

type MilestoneRepository interface {
	ListCatalog(ctx context.Context) ([]models.Milestone, error)
	Create(ctx context.Context, milestone *models.Milestone) error
	FindByID(ctx context.Context, id string) (models.Milestone, error)
	Save(ctx context.Context, milestone *models.Milestone) error
	// Delete removes the milestone, its sub-milestones and every child's progress on them.
	Delete(ctx context.Context, id string) error

	CreateSubMilestone(ctx context.Context, sub *models.SubMilestone) error
	FindSubMilestone(ctx context.Context, id string) (models.SubMilestone, error)
	SaveSubMilestone(ctx context.Context, sub *models.SubMilestone) error
	// DeleteSubMilestone removes the sub-milestone and every child's progress on it.
	DeleteSubMilestone(ctx context.Context, id string) error

	ListProgress(ctx context.Context, childID string) ([]models.ChildMilestoneProgress, error)
	UpsertProgress(ctx context.Context, progress *models.ChildMilestoneProgress) error
	CountSubMilestones(ctx context.Context) (int64, error)
}

type VaccinationRepository interface {
	ListCatalog(ctx context.Context) ([]models.Vaccination, error)
	Create(ctx context.Context, vaccination *models.Vaccination) error
	FindByID(ctx context.Context, id string) (models.Vaccination, error)
	Save(ctx context.Context, vaccination *models.Vaccination) error
	// Delete removes the vaccination and every child's progress on it.
	Delete(ctx context.Context, id string) error
	ListProgress(ctx context.Context, childID string) ([]models.VaccinationProgress, error)
	UpsertProgress(ctx context.Context, progress *models.VaccinationProgress) error
	Count(ctx context.Context) (int64, error)
}
