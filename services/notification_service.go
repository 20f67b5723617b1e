package services

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// PushService sends push notifications through Firebase Cloud Messaging.
type PushService struct {
	FCMClient *messaging.Client
	log       *zap.Logger
}

// NewPushService accepts a nil client; pushes are then only logged.
func NewPushService(client *messaging.Client, log *zap.Logger) *PushService {
	return &PushService{FCMClient: client, log: log}
}

func (s *PushService) Push(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if deviceToken == "" {
		return fmt.Errorf("device token is empty")
	}
	if s.FCMClient == nil {
		s.log.Debug("push skipped, messaging disabled", zap.String("title", title))
		return nil
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: deviceToken,
	}
	resp, err := s.FCMClient.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	s.log.Info("push sent", zap.String("id", resp), zap.String("title", title))
	return nil
}
