package controllers

import (
	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"
	"BabyNest/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatController serves chats, in-app messages, uploads and the live chat socket.
type ChatController struct {
	chats    ChatUseCase
	messages MessageUseCase
	uploads  UploadUseCase
	hub      *websocket.Hub
	log      *zap.Logger
}

func NewChatController(chats ChatUseCase, messages MessageUseCase, uploads UploadUseCase, hub *websocket.Hub, log *zap.Logger) *ChatController {
	return &ChatController{chats: chats, messages: messages, uploads: uploads, hub: hub, log: log}
}

func (ctl *ChatController) ListMessages(c *gin.Context) {
	role, ok := queryRole(c, c.Query("role"))
	if !ok {
		return
	}
	owner := models.Owner{Role: role, ID: c.Param("ownerId")}
	if me := caller(c); me.Role != models.RoleAdmin && me != owner {
		response.Forbidden(c, "You do not have access to this resource")
		return
	}
	messages, err := ctl.messages.List(c.Request.Context(), owner)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Messages fetched successfully", messages)
}

func (ctl *ChatController) CreateChat(c *gin.Context) {
	var input struct {
		Title        string   `json:"title" binding:"required"`
		Participants []string `json:"participants" binding:"required,min=1"`
	}
	if !response.Bind(c, &input) {
		return
	}
	chat, err := ctl.chats.Create(c.Request.Context(), c.Param("ownerId"), input.Title, input.Participants)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Chat created successfully", chat)
}

func (ctl *ChatController) ListChats(c *gin.Context) {
	chats, err := ctl.chats.List(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Chats fetched successfully", chats)
}

func (ctl *ChatController) SendMessage(c *gin.Context) {
	var input struct {
		Content *string `json:"content"`
		Image   *string `json:"image"`
		Voice   *string `json:"voice"`
	}
	if !response.Bind(c, &input) {
		return
	}
	message, err := ctl.chats.SendMessage(c.Request.Context(), c.Param("ownerId"), c.Param("chatId"), services.ChatMessageInput{
		Content: input.Content,
		Image:   input.Image,
		Voice:   input.Voice,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Message sent successfully", message)
}

func (ctl *ChatController) ListChatMessages(c *gin.Context) {
	messages, err := ctl.chats.ListMessages(c.Request.Context(), c.Param("ownerId"), c.Param("chatId"))
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Messages fetched successfully", messages)
}

func (ctl *ChatController) Upload(c *gin.Context) {
	var input struct {
		File string `json:"file" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	file, err := ctl.uploads.UploadDataURL(c.Request.Context(), input.File)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "File uploaded successfully", file)
}

// ServeWs upgrades a participant's connection and subscribes it to the chat.
func (ctl *ChatController) ServeWs(c *gin.Context) {
	me := caller(c)
	chatID := c.Param("chatId")
	if _, err := ctl.chats.Authorize(c.Request.Context(), chatID, me.ID); err != nil {
		fail(c, ctl.log, err)
		return
	}
	if err := websocket.Serve(ctl.hub, c.Writer, c.Request, chatID, me.ID); err != nil {
		// the upgrader has already answered the client
		ctl.log.Warn("websocket upgrade failed", zap.String("chat", chatID), zap.Error(err))
	}
}
