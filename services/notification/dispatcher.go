package notification

import (
	"context"
	"strings"

	"homefix/models"
	"homefix/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultNotificationService) build(in PushInput) (models.Notification, error) {
	if in.UserID == "" {
		return models.Notification{}, utils.NewValidationError("notification recipient is required")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Message) == "" {
		return models.Notification{}, utils.NewValidationError("notification title and message are required")
	}
	if !in.Type.Valid() {
		return models.Notification{}, utils.NewValidationError("unknown notification type %q", in.Type)
	}
	if in.Priority == "" {
		in.Priority = models.NotifPriorityMedium
	}
	if !in.Priority.Valid() {
		return models.Notification{}, utils.NewValidationError("unknown notification priority %q", in.Priority)
	}
	if !in.Target.Valid() {
		return models.Notification{}, utils.NewValidationError("invalid notification target")
	}

	return models.Notification{
		ID:                 uuid.New().String(),
		UserID:             in.UserID,
		Title:              in.Title,
		Message:            in.Message,
		Type:               in.Type,
		NotificationTarget: in.Target,
		Priority:           in.Priority,
		CreatedAt:          s.now(),
	}, nil
}

func (s *DefaultNotificationService) Push(ctx context.Context, in PushInput) (*models.Notification, error) {
	n, err := s.build(in)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, &n); err != nil {
		return nil, utils.NewDependencyError("failed to store notification", err)
	}
	s.deliver(ctx, n)
	return &n, nil
}

func (s *DefaultNotificationService) Notify(ctx context.Context, in PushInput) {
	if _, err := s.Push(ctx, in); err != nil {
		utils.GetLogger().Warn("notification not recorded",
			zap.String("userId", in.UserID),
			zap.String("type", string(in.Type)),
			zap.Error(err))
	}
}

// deliver sends n to the recipient's device when push is configured and a token is known.
func (s *DefaultNotificationService) deliver(ctx context.Context, n models.Notification) {
	if s.Pusher == nil || s.Users == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, n.UserID)
	if err != nil {
		utils.GetLogger().Warn("push skipped: recipient lookup failed", zap.String("userId", n.UserID), zap.Error(err))
		return
	}
	if u.FCMToken == "" {
		return
	}
	if err := s.Pusher.Send(ctx, u.FCMToken, n); err != nil {
		utils.GetLogger().Warn("push delivery failed", zap.String("notificationId", n.ID), zap.Error(err))
	}
}

// Broadcast stores one notification per user. Push delivery is not attempted.
func (s *DefaultNotificationService) Broadcast(ctx context.Context, in BroadcastInput) (int, error) {
	if in.Type == "" {
		in.Type = models.NotifSystem
	}
	ids, err := s.Users.GetIDs(ctx)
	if err != nil {
		return 0, utils.NewDependencyError("failed to list recipients", err)
	}

	batch := make([]models.Notification, 0, len(ids))
	for _, id := range ids {
		n, err := s.build(PushInput{
			UserID:   id,
			Title:    in.Title,
			Message:  in.Message,
			Type:     in.Type,
			Priority: in.Priority,
		})
		if err != nil {
			return 0, err
		}
		batch = append(batch, n)
	}
	if err := s.Repo.CreateMany(ctx, batch); err != nil {
		return 0, utils.NewDependencyError("failed to store notifications", err)
	}
	return len(batch), nil
}
