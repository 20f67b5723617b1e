package repositories

import (
	"context"

	"BabyNest/models"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	ListForMember(ctx context.Context, memberID string) ([]models.Chat, error)
	FindByID(ctx context.Context, chatID string) (models.Chat, error)
	// SaveMessage stores the message and bumps the chat's updated_at.
	SaveMessage(ctx context.Context, message *models.ChatMessage) error
	ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListForOwner(ctx context.Context, owner models.Owner) ([]models.Message, error)
}
