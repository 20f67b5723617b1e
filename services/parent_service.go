package services

import (
	"context"
	"errors"
	"strings"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type ParentUpdate struct {
	Name   *string
	Avatar *string
	Type   *models.ParentType
}

type ParentService struct {
	ParentRepo repositories.ParentRepository
	Accounts   repositories.AccountRepository
	Relations  repositories.RelationRepository
}

func NewParentService(parentRepo repositories.ParentRepository, accounts repositories.AccountRepository, relations repositories.RelationRepository) *ParentService {
	return &ParentService{ParentRepo: parentRepo, Accounts: accounts, Relations: relations}
}

func (s *ParentService) ReadParent(ctx context.Context, parentID string) (models.Parent, error) {
	parent, err := s.ParentRepo.FindByID(ctx, parentID)
	if err != nil {
		return models.Parent{}, notFoundOr(err, "Parent not found")
	}
	return parent, nil
}

func (s *ParentService) UpdateParent(ctx context.Context, parentID string, in ParentUpdate) (models.Parent, error) {
	parent, err := s.ReadParent(ctx, parentID)
	if err != nil {
		return models.Parent{}, err
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		parent.Name = strings.TrimSpace(*in.Name)
	}
	if in.Avatar != nil {
		parent.Avatar = in.Avatar
	}
	if in.Type != nil {
		parent.Type = *in.Type
	}
	if err := s.ParentRepo.Save(ctx, &parent); err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

// RegisterDevice stores the FCM token of a parent or relative.
func (s *ParentService) RegisterDevice(ctx context.Context, owner models.Owner, token string) error {
	if !owner.IsShopper() {
		return Forbidden("Only parents and relatives can register devices")
	}
	return s.Accounts.SetDeviceToken(ctx, owner, token)
}

// ResolveShopper finds the parent or relative with the given id, trying parents first.
func (s *ParentService) ResolveShopper(ctx context.Context, id string) (models.Owner, error) {
	_, err := s.ParentRepo.FindByID(ctx, id)
	if err == nil {
		return models.ParentOwner(id), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Owner{}, err
	}
	relation, err := s.Relations.FindByID(ctx, id)
	if err != nil {
		return models.Owner{}, notFoundOr(err, "User not found")
	}
	return models.RelativeOwner(relation.ID), nil
}
