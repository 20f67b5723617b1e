package mocks

import (
	"context"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type MilestoneRepository struct {
	mock.Mock
}

func (m *MilestoneRepository) ListCatalog(ctx context.Context) ([]models.Milestone, error) {
	args := m.Called()
	return args.Get(0).([]models.Milestone), args.Error(1)
}

func (m *MilestoneRepository) Create(ctx context.Context, milestone *models.Milestone) error {
	args := m.Called(milestone)
	return args.Error(0)
}

func (m *MilestoneRepository) FindByID(ctx context.Context, id string) (models.Milestone, error) {
	args := m.Called(id)
	return args.Get(0).(models.Milestone), args.Error(1)
}

func (m *MilestoneRepository) Save(ctx context.Context, milestone *models.Milestone) error {
	args := m.Called(milestone)
	return args.Error(0)
}

func (m *MilestoneRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MilestoneRepository) CreateSubMilestone(ctx context.Context, sub *models.SubMilestone) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MilestoneRepository) FindSubMilestone(ctx context.Context, id string) (models.SubMilestone, error) {
	args := m.Called(id)
	return args.Get(0).(models.SubMilestone), args.Error(1)
}

func (m *MilestoneRepository) SaveSubMilestone(ctx context.Context, sub *models.SubMilestone) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MilestoneRepository) DeleteSubMilestone(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MilestoneRepository) ListProgress(ctx context.Context, childID string) ([]models.ChildMilestoneProgress, error) {
	args := m.Called(childID)
	return args.Get(0).([]models.ChildMilestoneProgress), args.Error(1)
}

func (m *MilestoneRepository) UpsertProgress(ctx context.Context, progress *models.ChildMilestoneProgress) error {
	args := m.Called(progress)
	return args.Error(0)
}

func (m *MilestoneRepository) CountSubMilestones(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type VaccinationRepository struct {
	mock.Mock
}

func (m *VaccinationRepository) ListCatalog(ctx context.Context) ([]models.Vaccination, error) {
	args := m.Called()
	return args.Get(0).([]models.Vaccination), args.Error(1)
}

func (m *VaccinationRepository) Create(ctx context.Context, vaccination *models.Vaccination) error {
	args := m.Called(vaccination)
	return args.Error(0)
}

func (m *VaccinationRepository) FindByID(ctx context.Context, id string) (models.Vaccination, error) {
	args := m.Called(id)
	return args.Get(0).(models.Vaccination), args.Error(1)
}

func (m *VaccinationRepository) Save(ctx context.Context, vaccination *models.Vaccination) error {
	args := m.Called(vaccination)
	return args.Error(0)
}

func (m *VaccinationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *VaccinationRepository) ListProgress(ctx context.Context, childID string) ([]models.VaccinationProgress, error) {
	args := m.Called(childID)
	return args.Get(0).([]models.VaccinationProgress), args.Error(1)
}

func (m *VaccinationRepository) UpsertProgress(ctx context.Context, progress *models.VaccinationProgress) error {
	args := m.Called(progress)
	return args.Error(0)
}

func (m *VaccinationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
