package notification

import (
	"context"
	"fmt"

	"mindwell/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendTherapistPush(ctx context.Context, therapistID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation. Device
// tokens are registered by the apps through the token store; this service
// never touches account data.
type DefaultNotificationService struct {
	Tokens TokenStore
}

func NewDefaultNotificationService(tokens TokenStore) (*DefaultNotificationService, error) {
	if tokens == nil {
		return nil, fmt.Errorf("notification service initialization error: token store is nil")
	}
	return &DefaultNotificationService{Tokens: tokens}, nil
}

func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	return s.send(ctx, RoleUser, userID, title, body, data)
}

func (s *DefaultNotificationService) SendTherapistPush(ctx context.Context, therapistID, title, body string, data map[string]string) error {
	return s.send(ctx, RoleTherapist, therapistID, title, body, data)
}

func (s *DefaultNotificationService) send(ctx context.Context, role, id, title, body string, data map[string]string) error {
	token, err := s.Tokens.Get(ctx, role, id)
	if err != nil {
		return fmt.Errorf("send push: could not resolve token for %s %s: %w", role, id, err)
	}
	if token == "" {
		return fmt.Errorf("send push: %s %s has no registered device token", role, id)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("send push: failed to send FCM message: %w", err)
	}
	return nil
}
