package services

import (
	"context"
	"testing"

	"BabyNest/models"
	"BabyNest/repositories/mocks"
	"BabyNest/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateQueryDefaults(t *testing.T) {
	queries := new(mocks.QueryRepository)
	parents := new(mocks.ParentRepository)
	svc := NewSupportService(queries, parents)

	parents.On("FindByID", "p-1").Return(models.Parent{ID: "p-1", Name: "Anna"}, nil)
	queries.On("Create", mock.MatchedBy(func(q *models.SupportQuery) bool {
		return q.Status == models.QueryPending && q.Priority == models.PriorityLow && q.Email == "anna@example.com"
	})).Return(nil)

	query, err := svc.Create(context.Background(), "p-1", QueryInput{Name: "Anna", Email: "Anna@Example.com", Subject: " Billing ", Message: "Charged twice"})
	require.NoError(t, err)
	assert.Equal(t, "Billing", query.Subject)
	require.NotNil(t, query.Parent)
	assert.Equal(t, "Anna", query.Parent.Name)
	queries.AssertExpectations(t)
}

func TestCreateQueryRejectsUnknownPriority(t *testing.T) {
	queries := new(mocks.QueryRepository)
	parents := new(mocks.ParentRepository)
	svc := NewSupportService(queries, parents)

	parents.On("FindByID", "p-1").Return(models.Parent{ID: "p-1"}, nil)

	_, err := svc.Create(context.Background(), "p-1", QueryInput{Priority: models.QueryPriority("URGENT")})
	assert.True(t, IsKind(err, response.KindValidation))
	queries.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateQueryStatus(t *testing.T) {
	queries := new(mocks.QueryRepository)
	svc := NewSupportService(queries, new(mocks.ParentRepository))

	queries.On("FindByID", "q-1").Return(models.SupportQuery{ID: "q-1", Status: models.QueryPending, Priority: models.PriorityLow}, nil)
	queries.On("Save", mock.AnythingOfType("*models.SupportQuery")).Return(nil)

	resolved := models.QueryResolved
	query, err := svc.Update(context.Background(), "q-1", QueryUpdate{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, models.QueryResolved, query.Status)
	assert.Equal(t, models.PriorityLow, query.Priority)
}

func TestDeleteQueryUnknown(t *testing.T) {
	queries := new(mocks.QueryRepository)
	svc := NewSupportService(queries, new(mocks.ParentRepository))

	queries.On("Delete", "q-9").Return(gorm.ErrRecordNotFound)

	assert.True(t, IsKind(svc.Delete(context.Background(), "q-9"), response.KindNotFound))
}
