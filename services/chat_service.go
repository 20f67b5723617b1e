package services

import (
	"context"
	"errors"
	"strings"

	"BabyNest/interfaces"
	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ChatMessageInput struct {
	Content *string
	Image   *string
	Voice   *string
}

type ChatService struct {
	ChatRepo  repositories.ChatRepository
	Accounts  repositories.AccountRepository
	Uploads   *UploadService
	Publisher interfaces.ChatPublisher
	log       *zap.Logger
}

func NewChatService(chatRepo repositories.ChatRepository, accounts repositories.AccountRepository, uploads *UploadService, publisher interfaces.ChatPublisher, log *zap.Logger) *ChatService {
	return &ChatService{ChatRepo: chatRepo, Accounts: accounts, Uploads: uploads, Publisher: publisher, log: log}
}

// member resolves a chat member id to a parent or relative account, parents first.
func (s *ChatService) member(ctx context.Context, id string) (models.Account, error) {
	account, err := s.Accounts.FindByID(ctx, models.RoleParent, id)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, err
	}
	account, err = s.Accounts.FindByID(ctx, models.RoleRelative, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, Invalid("Participants must be parents or relatives")
	}
	return account, err
}

func participantFor(account models.Account) models.ChatParticipant {
	id := account.ID
	if account.Role == models.RoleRelative {
		return models.ChatParticipant{RelativeID: &id}
	}
	return models.ChatParticipant{ParentID: &id}
}

// Create opens a chat between the creator and the given members.
func (s *ChatService) Create(ctx context.Context, creatorID, title string, participants []string) (models.Chat, error) {
	creator, err := s.member(ctx, creatorID)
	if err != nil {
		return models.Chat{}, err
	}
	chat := models.Chat{Title: strings.TrimSpace(title), CreatorID: creator.ID}
	chat.Participants = append(chat.Participants, participantFor(creator))

	seen := map[string]bool{creator.ID: true}
	for _, id := range participants {
		if seen[id] {
			continue
		}
		seen[id] = true
		account, err := s.member(ctx, id)
		if err != nil {
			return models.Chat{}, err
		}
		chat.Participants = append(chat.Participants, participantFor(account))
	}
	if err := s.ChatRepo.Create(ctx, &chat); err != nil {
		return models.Chat{}, err
	}
	return chat, nil
}

func (s *ChatService) List(ctx context.Context, memberID string) ([]models.Chat, error) {
	return s.ChatRepo.ListForMember(ctx, memberID)
}

// Authorize loads the chat and checks memberID takes part in it.
func (s *ChatService) Authorize(ctx context.Context, chatID, memberID string) (models.Chat, error) {
	chat, err := s.ChatRepo.FindByID(ctx, chatID)
	if err != nil {
		return models.Chat{}, notFoundOr(err, "Chat not found")
	}
	for _, p := range chat.Participants {
		if p.MemberID() == memberID {
			return chat, nil
		}
	}
	return models.Chat{}, Forbidden("You are not a participant of this chat")
}

// SendMessage stores a message, uploads its media and publishes it to live subscribers.
func (s *ChatService) SendMessage(ctx context.Context, senderID, chatID string, in ChatMessageInput) (models.ChatMessage, error) {
	if blank(in.Content) && blank(in.Image) && blank(in.Voice) {
		return models.ChatMessage{}, Invalid("Message cannot be empty")
	}
	if _, err := s.Authorize(ctx, chatID, senderID); err != nil {
		return models.ChatMessage{}, err
	}
	sender, err := s.member(ctx, senderID)
	if err != nil {
		return models.ChatMessage{}, err
	}

	image, err := s.Uploads.UploadOptional(ctx, nonBlank(in.Image))
	if err != nil {
		return models.ChatMessage{}, err
	}
	voice, err := s.Uploads.UploadOptional(ctx, nonBlank(in.Voice))
	if err != nil {
		return models.ChatMessage{}, err
	}

	senderType := models.SenderParent
	if sender.Role == models.RoleRelative {
		senderType = models.SenderChildRelation
	}
	message := models.ChatMessage{
		ChatID:     chatID,
		SenderID:   sender.ID,
		SenderType: senderType,
		SenderName: sender.Name,
		Message:    nonBlank(in.Content),
		ImageURL:   image,
		VoiceURL:   voice,
	}
	if err := s.ChatRepo.SaveMessage(ctx, &message); err != nil {
		return models.ChatMessage{}, err
	}

	event := interfaces.WebSocketMessage{
		Type:   interfaces.EventNewMessage,
		ChatID: chatID,
		Payload: interfaces.ChatMessagePayload{
			ID:         message.ID,
			Message:    message.Message,
			ImageURL:   message.ImageURL,
			VoiceURL:   message.VoiceURL,
			ChatID:     chatID,
			SenderID:   message.SenderID,
			SenderName: message.SenderName,
			CreatedAt:  message.CreatedAt,
		},
	}
	if err := s.Publisher.Publish(ctx, chatID, event); err != nil {
		s.log.Warn("chat publish failed", zap.String("chat", chatID), zap.Error(err))
	}
	return message, nil
}

func (s *ChatService) ListMessages(ctx context.Context, memberID, chatID string) ([]models.ChatMessage, error) {
	if _, err := s.Authorize(ctx, chatID, memberID); err != nil {
		return nil, err
	}
	return s.ChatRepo.ListMessages(ctx, chatID)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func nonBlank(s *string) *string {
	if blank(s) {
		return nil
	}
	return s
}
