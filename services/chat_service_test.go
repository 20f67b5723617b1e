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
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newChatService(chats *mocks.ChatRepository, accounts *mocks.AccountRepository) *ChatService {
	return NewChatService(chats, accounts, nil, nil, zap.NewNop())
}

func TestAuthorizeRejectsNonParticipant(t *testing.T) {
	chats := new(mocks.ChatRepository)
	svc := newChatService(chats, new(mocks.AccountRepository))

	parent, relative := "p-1", "r-1"
	chats.On("FindByID", "chat-1").Return(models.Chat{ID: "chat-1", Participants: []models.ChatParticipant{
		{ParentID: &parent},
		{RelativeID: &relative},
	}}, nil)

	_, err := svc.Authorize(context.Background(), "chat-1", "p-2")
	assert.True(t, IsKind(err, response.KindForbidden))

	chat, err := svc.Authorize(context.Background(), "chat-1", "r-1")
	require.NoError(t, err)
	assert.Equal(t, "chat-1", chat.ID)
}

func TestAuthorizeUnknownChat(t *testing.T) {
	chats := new(mocks.ChatRepository)
	svc := newChatService(chats, new(mocks.AccountRepository))

	chats.On("FindByID", "gone").Return(models.Chat{}, gorm.ErrRecordNotFound)

	_, err := svc.Authorize(context.Background(), "gone", "p-1")
	assert.True(t, IsKind(err, response.KindNotFound))
}

func TestCreateChatRejectsNonFamilyParticipant(t *testing.T) {
	chats := new(mocks.ChatRepository)
	accounts := new(mocks.AccountRepository)
	svc := newChatService(chats, accounts)

	accounts.On("FindByID", models.RoleParent, "p-1").Return(models.Account{ID: "p-1", Role: models.RoleParent}, nil)
	accounts.On("FindByID", models.RoleParent, "s-1").Return(models.Account{}, gorm.ErrRecordNotFound)
	accounts.On("FindByID", models.RoleRelative, "s-1").Return(models.Account{}, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), "p-1", "Family", []string{"s-1"})
	assert.True(t, IsKind(err, response.KindValidation))
	chats.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateChatAddsCreatorOnce(t *testing.T) {
	chats := new(mocks.ChatRepository)
	accounts := new(mocks.AccountRepository)
	svc := newChatService(chats, accounts)

	accounts.On("FindByID", models.RoleParent, "p-1").Return(models.Account{ID: "p-1", Role: models.RoleParent}, nil)
	accounts.On("FindByID", models.RoleParent, "r-1").Return(models.Account{}, gorm.ErrRecordNotFound)
	accounts.On("FindByID", models.RoleRelative, "r-1").Return(models.Account{ID: "r-1", Role: models.RoleRelative}, nil)
	chats.On("Create", mock.AnythingOfType("*models.Chat")).Return(nil)

	chat, err := svc.Create(context.Background(), "p-1", " Family ", []string{"p-1", "r-1", "r-1"})
	require.NoError(t, err)
	assert.Equal(t, "Family", chat.Title)
	require.Len(t, chat.Participants, 2)
	assert.Equal(t, "p-1", *chat.Participants[0].ParentID)
	assert.Equal(t, "r-1", *chat.Participants[1].RelativeID)
}

func TestSendMessageRejectsEmpty(t *testing.T) {
	chats := new(mocks.ChatRepository)
	svc := newChatService(chats, new(mocks.AccountRepository))

	blankText := "  "
	_, err := svc.SendMessage(context.Background(), "p-1", "chat-1", ChatMessageInput{Content: &blankText})
	assert.True(t, IsKind(err, response.KindValidation))
	chats.AssertNotCalled(t, "FindByID", mock.Anything)
}
