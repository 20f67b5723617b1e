package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RelationInput struct {
	Name        string
	Email       string
	Relation    string
	DateOfBirth time.Time
	DateOfDeath *time.Time
}

type RelationService struct {
	Relations repositories.RelationRepository
	Parents   repositories.ParentRepository
	Email     EmailSender
	Clock     Clock
	log       *zap.Logger
}

func NewRelationService(relations repositories.RelationRepository, parents repositories.ParentRepository, email EmailSender, clock Clock, log *zap.Logger) *RelationService {
	return &RelationService{Relations: relations, Parents: parents, Email: email, Clock: clock, log: log}
}

// Create opens a pre-verified relative account and emails its credentials.
func (s *RelationService) Create(ctx context.Context, parentID string, child models.Child, in RelationInput) (models.ChildRelation, error) {
	parent, err := s.Parents.FindByID(ctx, parentID)
	if err != nil {
		return models.ChildRelation{}, notFoundOr(err, "Parent not found")
	}
	email := normalizeEmail(in.Email)
	taken, err := s.Relations.EmailTaken(ctx, email)
	if err != nil {
		return models.ChildRelation{}, err
	}
	if taken {
		return models.ChildRelation{}, Conflict("Email already exists")
	}

	password, err := GeneratePassword()
	if err != nil {
		return models.ChildRelation{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.ChildRelation{}, err
	}
	relation := models.ChildRelation{
		Name:        strings.TrimSpace(in.Name),
		Email:       email,
		Password:    string(hash),
		Relation:    in.Relation,
		DateOfBirth: in.DateOfBirth,
		DateOfDeath: in.DateOfDeath,
		ChildID:     child.ID,
		ParentID:    parent.ID,
		IsVerified:  true,
	}
	if err := s.Relations.Create(ctx, &relation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ChildRelation{}, Conflict("Email already exists")
		}
		return models.ChildRelation{}, fmt.Errorf("create relation: %w", err)
	}

	s.Email.Send(ctx, relation.Email, EmailNewRelativeAccount, map[string]string{
		"inviterName":  parent.Name,
		"relativeName": relation.Name,
		"email":        relation.Email,
		"password":     password,
		"relation":     relation.Relation,
	})
	return relation, nil
}

func (s *RelationService) List(ctx context.Context, child models.Child) ([]models.ChildRelation, error) {
	return s.Relations.ListForChild(ctx, child.ID)
}

// Remove deletes a relative of the child together with everything they own.
func (s *RelationService) Remove(ctx context.Context, child models.Child, relationID string) error {
	relation, err := s.Relations.FindByID(ctx, relationID)
	if err != nil {
		return notFoundOr(err, "Relation not found")
	}
	if relation.ChildID != child.ID {
		return NotFound("Relation not found")
	}
	return s.remove(ctx, relation.ID)
}

// Leave lets a relative delete their own account.
func (s *RelationService) Leave(ctx context.Context, caller models.Owner, relativeID string) error {
	if caller.Role != models.RoleRelative || caller.ID != relativeID {
		return Forbidden("You can only leave with your own account")
	}
	if _, err := s.Relations.FindByID(ctx, relativeID); err != nil {
		return notFoundOr(err, "Relation not found")
	}
	return s.remove(ctx, relativeID)
}

func (s *RelationService) remove(ctx context.Context, relativeID string) error {
	if err := s.Relations.Remove(ctx, relativeID, s.Clock()); err != nil {
		return notFoundOr(err, "Relation not found")
	}
	s.log.Info("relative removed", zap.String("relative", relativeID))
	return nil
}
