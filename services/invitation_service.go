package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupOTPIssuer sends the code that verifies a freshly created parent.
type SignupOTPIssuer interface {
	SendSignupOTP(ctx context.Context, account models.Account) error
}

type AcceptInvitationInput struct {
	Name     string
	Email    string
	Password string
	ParentID string
}

// InvitationService lets a parent bring the child's other parent on board.
type InvitationService struct {
	Parents   repositories.ParentRepository
	Children  repositories.ChildRepository
	Email     EmailSender
	OTP       SignupOTPIssuer
	InviteURL string
	log       *zap.Logger
}

func NewInvitationService(parents repositories.ParentRepository, children repositories.ChildRepository, email EmailSender, otp SignupOTPIssuer, inviteURL string, log *zap.Logger) *InvitationService {
	return &InvitationService{Parents: parents, Children: children, Email: email, OTP: otp, InviteURL: inviteURL, log: log}
}

// Invite emails toEmail a link to join the parent's child.
func (s *InvitationService) Invite(ctx context.Context, parentID, toEmail string) error {
	parent, err := s.Parents.FindByID(ctx, parentID)
	if err != nil {
		return notFoundOr(err, "No parent found")
	}
	child, err := s.firstChild(ctx, parentID)
	if err != nil {
		return err
	}
	count, err := s.Children.CountParents(ctx, child.ID)
	if err != nil {
		return err
	}
	if count >= 2 {
		return Invalid("Both parents are already created")
	}

	s.Email.Send(ctx, normalizeEmail(toEmail), EmailInviteParent, map[string]string{
		"inviterName": parent.Name,
		"inviteLink":  s.inviteLink(parentID),
	})
	s.log.Info("parent invited", zap.String("parent", parentID), zap.String("child", child.ID))
	return nil
}

// Accept creates the invited parent with the inviter's opposite type, links
// them to the inviter's child and sends a signup code.
func (s *InvitationService) Accept(ctx context.Context, in AcceptInvitationInput) (models.Parent, error) {
	inviter, err := s.Parents.FindByID(ctx, in.ParentID)
	if err != nil {
		return models.Parent{}, notFoundOr(err, "Invalid ID provided")
	}
	email := normalizeEmail(in.Email)
	if email == inviter.Email {
		return models.Parent{}, Conflict("This email already exists")
	}
	_, err = s.Parents.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return models.Parent{}, Conflict("This email already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return models.Parent{}, err
	}
	child, err := s.firstChild(ctx, inviter.ID)
	if err != nil {
		return models.Parent{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Parent{}, err
	}
	parent := models.Parent{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Type:     oppositeParent(inviter.Type),
	}
	err = s.Children.AddParent(ctx, child.ID, &parent)
	switch {
	case errors.Is(err, repositories.ErrParentLimit):
		return models.Parent{}, Invalid("Both parents are already created")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.Parent{}, Conflict("This email already exists")
	case err != nil:
		return models.Parent{}, fmt.Errorf("add parent: %w", err)
	}

	account := models.Account{ID: parent.ID, Role: models.RoleParent, Name: parent.Name, Email: parent.Email}
	if err := s.OTP.SendSignupOTP(ctx, account); err != nil {
		return models.Parent{}, err
	}
	s.log.Info("invitation accepted", zap.String("inviter", inviter.ID), zap.String("parent", parent.ID))
	return parent, nil
}

// firstChild returns the parent's child. A parent has at most one.
func (s *InvitationService) firstChild(ctx context.Context, parentID string) (models.Child, error) {
	children, err := s.Children.ListForParent(ctx, parentID)
	if err != nil {
		return models.Child{}, err
	}
	if len(children) == 0 {
		return models.Child{}, NotFound("No child found, please create child first")
	}
	return children[0], nil
}

func (s *InvitationService) inviteLink(parentID string) string {
	sep := "?"
	if strings.Contains(s.InviteURL, "?") {
		sep = "&"
	}
	return s.InviteURL + sep + "parentId=" + url.QueryEscape(parentID)
}

func oppositeParent(t models.ParentType) models.ParentType {
	if t == models.ParentFather {
		return models.ParentMother
	}
	return models.ParentFather
}
