package impl

import (
	"context"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

type ChatRepositoryImpl struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) repositories.ChatRepository {
	return &ChatRepositoryImpl{DB: db}
}

func (r *ChatRepositoryImpl) Create(ctx context.Context, chat *models.Chat) error {
	return r.DB.WithContext(ctx).Create(chat).Error
}

func (r *ChatRepositoryImpl) ListForMember(ctx context.Context, memberID string) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.DB.WithContext(ctx).
		Preload("Participants").
		Where("id IN (?)",
			r.DB.Model(&models.ChatParticipant{}).Select("chat_id").Where("parent_id = ? OR relative_id = ?", memberID, memberID),
		).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

func (r *ChatRepositoryImpl) FindByID(ctx context.Context, chatID string) (models.Chat, error) {
	var chat models.Chat
	err := r.DB.WithContext(ctx).Preload("Participants").Where("id = ?", chatID).First(&chat).Error
	return chat, err
}

func (r *ChatRepositoryImpl) SaveMessage(ctx context.Context, message *models.ChatMessage) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chat{}).Where("id = ?", message.ChatID).Update("updated_at", time.Now()).Error
	})
}

func (r *ChatRepositoryImpl) ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.DB.WithContext(ctx).Where("chat_id = ?", chatID).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

type MessageRepositoryImpl struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepositoryImpl{DB: db}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *models.Message) error {
	return r.DB.WithContext(ctx).Create(message).Error
}

func (r *MessageRepositoryImpl) ListForOwner(ctx context.Context, owner models.Owner) ([]models.Message, error) {
	var messages []models.Message
	err := r.DB.WithContext(ctx).Scopes(ownerScope(owner)).Order("created_at DESC").Find(&messages).Error
	return messages, err
}
