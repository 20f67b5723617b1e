package mocks

import (
	"context"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *CategoryRepository) FindByID(ctx context.Context, id string) (models.Category, error) {
	args := m.Called(id)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *CategoryRepository) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	args := m.Called(slug, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepository) List(ctx context.Context, kind models.CategoryKind) ([]models.Category, error) {
	args := m.Called(kind)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *CategoryRepository) SoftDelete(ctx context.Context, category models.Category, at time.Time) error {
	args := m.Called(category, at)
	return args.Error(0)
}

func (m *CategoryRepository) CreateSub(ctx context.Context, sub *models.SubCategory) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *CategoryRepository) FindSub(ctx context.Context, id string) (models.SubCategory, error) {
	args := m.Called(id)
	return args.Get(0).(models.SubCategory), args.Error(1)
}

func (m *CategoryRepository) SoftDeleteSub(ctx context.Context, sub models.SubCategory, kind models.CategoryKind, at time.Time) error {
	args := m.Called(sub, kind, at)
	return args.Error(0)
}

func (m *CategoryRepository) CountItems(ctx context.Context, kind models.CategoryKind, column string) (map[string]int64, error) {
	args := m.Called(kind, column)
	return args.Get(0).(map[string]int64), args.Error(1)
}
