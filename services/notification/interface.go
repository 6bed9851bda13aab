package notification

import (
	"context"
	"time"

	notificationRepo "homefix/database/repository/notification"
	userRepo "homefix/database/repository/user"
	"homefix/models"
)

// DefaultListLimit is both the default and the maximum page size for List.
const DefaultListLimit = 50

type NotificationService interface {
	// Push stores a notification and attempts push delivery.
	Push(ctx context.Context, in PushInput) (*models.Notification, error)
	// Notify is Push for side effects: failures are logged, never returned.
	Notify(ctx context.Context, in PushInput)
	Broadcast(ctx context.Context, in BroadcastInput) (int, error)

	List(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, callerID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id, callerID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Users  userRepo.UserRepository
	Pusher Pusher
	now    func() time.Time
}

// NewDefaultNotificationService wires the dispatcher. A nil pusher disables device delivery.
func NewDefaultNotificationService(repo notificationRepo.NotificationRepository, users userRepo.UserRepository, pusher Pusher) *DefaultNotificationService {
	return &DefaultNotificationService{Repo: repo, Users: users, Pusher: pusher, now: time.Now}
}

type PushInput struct {
	UserID   string
	Title    string
	Message  string
	Type     models.NotificationType
	Target   models.NotificationTarget
	Priority models.NotificationPriority
}

type BroadcastInput struct {
	Title    string                      `json:"title"`
	Message  string                      `json:"message"`
	Type     models.NotificationType     `json:"type"`
	Priority models.NotificationPriority `json:"priority"`
}
