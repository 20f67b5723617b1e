package services

import (
	"context"
	"fmt"

	"BabyNest/interfaces"
	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
)

type MessageService struct {
	Messages repositories.MessageRepository
	Accounts repositories.AccountRepository
	Pusher   interfaces.Pusher
	log      *zap.Logger
}

func NewMessageService(messages repositories.MessageRepository, accounts repositories.AccountRepository, pusher interfaces.Pusher, log *zap.Logger) *MessageService {
	return &MessageService{Messages: messages, Accounts: accounts, Pusher: pusher, log: log}
}

// CreateMessage stores the message and pushes it to the owner's device when
// one is registered. Push failures are logged, never returned.
func (s *MessageService) CreateMessage(ctx context.Context, title, description string, owner models.Owner) (*models.Message, error) {
	message := models.Message{
		Title:       title,
		Description: description,
		OwnerRefs:   models.NewOwnerRefs(owner),
	}
	if err := s.Messages.Create(ctx, &message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	token, err := s.Accounts.DeviceToken(ctx, owner)
	if err != nil {
		s.log.Warn("device token lookup", zap.String("owner", owner.ID), zap.Error(err))
		return &message, nil
	}
	if token == "" {
		return &message, nil
	}
	data := map[string]string{"messageId": message.ID, "type": "message"}
	if err := s.Pusher.Push(ctx, token, title, description, data); err != nil {
		s.log.Warn("push failed", zap.String("owner", owner.ID), zap.Error(err))
	}
	return &message, nil
}

func (s *MessageService) List(ctx context.Context, owner models.Owner) ([]models.Message, error) {
	return s.Messages.ListForOwner(ctx, owner)
}
