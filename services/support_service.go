package services

import (
	"context"
	"strings"

	"BabyNest/models"
	"BabyNest/repositories"
)

type QueryInput struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Status   models.QueryStatus
	Priority models.QueryPriority
}

type QueryUpdate struct {
	Status   *models.QueryStatus
	Priority *models.QueryPriority
}

// SupportService handles the questions parents raise with the admins.
type SupportService struct {
	Queries repositories.QueryRepository
	Parents repositories.ParentRepository
}

func NewSupportService(queries repositories.QueryRepository, parents repositories.ParentRepository) *SupportService {
	return &SupportService{Queries: queries, Parents: parents}
}

// Create files a query. Status defaults to PENDING and priority to LOW.
func (s *SupportService) Create(ctx context.Context, parentID string, in QueryInput) (models.SupportQuery, error) {
	parent, err := s.Parents.FindByID(ctx, parentID)
	if err != nil {
		return models.SupportQuery{}, notFoundOr(err, "Parent not found")
	}
	if in.Status == "" {
		in.Status = models.QueryPending
	}
	if in.Priority == "" {
		in.Priority = models.PriorityLow
	}
	if !in.Status.Valid() {
		return models.SupportQuery{}, Invalid("Unknown query status")
	}
	if !in.Priority.Valid() {
		return models.SupportQuery{}, Invalid("Unknown query priority")
	}

	query := models.SupportQuery{
		ParentID: parent.ID,
		Name:     strings.TrimSpace(in.Name),
		Email:    normalizeEmail(in.Email),
		Subject:  strings.TrimSpace(in.Subject),
		Message:  in.Message,
		Status:   in.Status,
		Priority: in.Priority,
	}
	if err := s.Queries.Create(ctx, &query); err != nil {
		return models.SupportQuery{}, err
	}
	query.Parent = &models.Parent{ID: parent.ID, Name: parent.Name}
	return query, nil
}

func (s *SupportService) ListForParent(ctx context.Context, parentID string) ([]models.SupportQuery, error) {
	return s.Queries.ListForParent(ctx, parentID)
}

func (s *SupportService) List(ctx context.Context, search string) ([]models.SupportQuery, error) {
	return s.Queries.List(ctx, search)
}

func (s *SupportService) Get(ctx context.Context, queryID string) (models.SupportQuery, error) {
	query, err := s.Queries.FindByID(ctx, queryID)
	if err != nil {
		return models.SupportQuery{}, notFoundOr(err, "Query not found")
	}
	return query, nil
}

func (s *SupportService) Update(ctx context.Context, queryID string, in QueryUpdate) (models.SupportQuery, error) {
	query, err := s.Get(ctx, queryID)
	if err != nil {
		return models.SupportQuery{}, err
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return models.SupportQuery{}, Invalid("Unknown query status")
		}
		query.Status = *in.Status
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return models.SupportQuery{}, Invalid("Unknown query priority")
		}
		query.Priority = *in.Priority
	}
	if err := s.Queries.Save(ctx, &query); err != nil {
		return models.SupportQuery{}, err
	}
	return query, nil
}

func (s *SupportService) Delete(ctx context.Context, queryID string) error {
	return notFoundOr(s.Queries.Delete(ctx, queryID), "Query not found")
}
