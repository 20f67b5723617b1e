package mocks

import (
	"context"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type QueryRepository struct {
	mock.Mock
}

func (m *QueryRepository) Create(ctx context.Context, query *models.SupportQuery) error {
	args := m.Called(query)
	return args.Error(0)
}

func (m *QueryRepository) FindByID(ctx context.Context, id string) (models.SupportQuery, error) {
	args := m.Called(id)
	return args.Get(0).(models.SupportQuery), args.Error(1)
}

func (m *QueryRepository) ListForParent(ctx context.Context, parentID string) ([]models.SupportQuery, error) {
	args := m.Called(parentID)
	return args.Get(0).([]models.SupportQuery), args.Error(1)
}

func (m *QueryRepository) List(ctx context.Context, search string) ([]models.SupportQuery, error) {
	args := m.Called(search)
	return args.Get(0).([]models.SupportQuery), args.Error(1)
}

func (m *QueryRepository) Save(ctx context.Context, query *models.SupportQuery) error {
	args := m.Called(query)
	return args.Error(0)
}

func (m *QueryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}
