package mocks

import (
	"context"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type ChatRepository struct {
	mock.Mock
}

func (m *ChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	args := m.Called(chat)
	return args.Error(0)
}

func (m *ChatRepository) ListForMember(ctx context.Context, memberID string) ([]models.Chat, error) {
	args := m.Called(memberID)
	return args.Get(0).([]models.Chat), args.Error(1)
}

func (m *ChatRepository) FindByID(ctx context.Context, chatID string) (models.Chat, error) {
	args := m.Called(chatID)
	return args.Get(0).(models.Chat), args.Error(1)
}

func (m *ChatRepository) SaveMessage(ctx context.Context, message *models.ChatMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *ChatRepository) ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	args := m.Called(chatID)
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}
