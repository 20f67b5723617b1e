package mocks

import (
	"context"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type ParentRepository struct {
	mock.Mock
}

func (m *ParentRepository) FindByID(ctx context.Context, id string) (models.Parent, error) {
	args := m.Called(id)
	return args.Get(0).(models.Parent), args.Error(1)
}

func (m *ParentRepository) FindByEmail(ctx context.Context, email string) (models.Parent, error) {
	args := m.Called(email)
	return args.Get(0).(models.Parent), args.Error(1)
}

func (m *ParentRepository) FindByGoogleUID(ctx context.Context, uid string) (models.Parent, error) {
	args := m.Called(uid)
	return args.Get(0).(models.Parent), args.Error(1)
}

func (m *ParentRepository) Create(ctx context.Context, parent *models.Parent) error {
	args := m.Called(parent)
	return args.Error(0)
}

func (m *ParentRepository) Save(ctx context.Context, parent *models.Parent) error {
	args := m.Called(parent)
	return args.Error(0)
}

type RelationRepository struct {
	mock.Mock
}

func (m *RelationRepository) Create(ctx context.Context, relation *models.ChildRelation) error {
	args := m.Called(relation)
	return args.Error(0)
}

func (m *RelationRepository) FindByID(ctx context.Context, id string) (models.ChildRelation, error) {
	args := m.Called(id)
	return args.Get(0).(models.ChildRelation), args.Error(1)
}

func (m *RelationRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *RelationRepository) ListForChild(ctx context.Context, childID string) ([]models.ChildRelation, error) {
	args := m.Called(childID)
	return args.Get(0).([]models.ChildRelation), args.Error(1)
}

func (m *RelationRepository) Remove(ctx context.Context, relativeID string, at time.Time) error {
	args := m.Called(relativeID, at)
	return args.Error(0)
}
