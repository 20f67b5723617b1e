package mocks

import (
	"context"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type ChildRepository struct {
	mock.Mock
}

func (m *ChildRepository) CreateForParent(ctx context.Context, child *models.Child, parentID string, initial *models.GrowthEntry) error {
	args := m.Called(child, parentID, initial)
	return args.Error(0)
}

func (m *ChildRepository) AddParent(ctx context.Context, childID string, parent *models.Parent) error {
	args := m.Called(childID, parent)
	return args.Error(0)
}

func (m *ChildRepository) CountParents(ctx context.Context, childID string) (int64, error) {
	args := m.Called(childID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ChildRepository) FindForParent(ctx context.Context, parentID, childID string) (models.Child, error) {
	args := m.Called(parentID, childID)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) FindByID(ctx context.Context, childID string) (models.Child, error) {
	args := m.Called(childID)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) ListForParent(ctx context.Context, parentID string) ([]models.Child, error) {
	args := m.Called(parentID)
	return args.Get(0).([]models.Child), args.Error(1)
}

func (m *ChildRepository) Save(ctx context.Context, child *models.Child) error {
	args := m.Called(child)
	return args.Error(0)
}

func (m *ChildRepository) ListGrowth(ctx context.Context, childID string) ([]models.GrowthEntry, error) {
	args := m.Called(childID)
	return args.Get(0).([]models.GrowthEntry), args.Error(1)
}

func (m *ChildRepository) LatestGrowth(ctx context.Context, childID string) (*models.GrowthEntry, error) {
	args := m.Called(childID)
	entry, _ := args.Get(0).(*models.GrowthEntry)
	return entry, args.Error(1)
}

func (m *ChildRepository) AddGrowth(ctx context.Context, entry *models.GrowthEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}
