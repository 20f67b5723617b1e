package services

import (
	"context"
	"encoding/json"

	"BabyNest/interfaces"

	"github.com/go-redis/redis/v8"
)

// ChatChannel is the pub/sub channel carrying one chat's events.
func ChatChannel(chatID string) string {
	return "chat-" + chatID
}

// RedisPublisher publishes chat events so every API instance can forward them
// to its own websocket clients.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, chatID string, msg interfaces.WebSocketMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, ChatChannel(chatID), body).Err()
}
