package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"BabyNest/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisherPublishesOnChatChannel(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, ChatChannel("42"))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	text := "hello"
	event := interfaces.WebSocketMessage{
		Type:    interfaces.EventNewMessage,
		ChatID:  "42",
		Payload: interfaces.ChatMessagePayload{ID: "m-1", Message: &text, ChatID: "42", SenderID: "p-1"},
	}
	require.NoError(t, NewRedisPublisher(client).Publish(ctx, "42", event))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "chat-42", msg.Channel)

	var got interfaces.WebSocketMessage
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, interfaces.EventNewMessage, got.Type)
	assert.Equal(t, "m-1", got.Payload.ID)
	assert.Equal(t, "hello", *got.Payload.Message)
}
