package interfaces

import (
	"context"
	"time"
)

// Pusher delivers one push notification to a device token.
type Pusher interface {
	Push(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}

const EventNewMessage = "new-message"

// ChatPublisher fans chat events out to every live subscriber of the chat.
type ChatPublisher interface {
	Publish(ctx context.Context, chatID string, msg WebSocketMessage) error
}

// ChatMessagePayload is the body of a new-message event.
type ChatMessagePayload struct {
	ID         string    `json:"id"`
	Message    *string   `json:"message"`
	ImageURL   *string   `json:"imageUrl"`
	VoiceURL   *string   `json:"voiceUrl"`
	ChatID     string    `json:"chatId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// WebSocketMessage is what travels on chat-{chatId} and down each socket.
type WebSocketMessage struct {
	Type    string             `json:"type"`
	ChatID  string             `json:"chatId"`
	Payload ChatMessagePayload `json:"data"`
}
