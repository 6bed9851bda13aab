package subscription

import (
	"context"
	"time"

	catalogRepo "homefix/database/repository/catalog"
	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/services/notification"
	"homefix/services/tasks"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, planID string) ([]string, error)
	Unsubscribe(ctx context.Context, userID, planID string) ([]string, error)
	ListSubscriptions(ctx context.Context, userID string) ([]string, error)
	ActiveSubscription(ctx context.Context, userID string) (*Status, error)

	// Activate overwrites the user's metered subscription record with plan starting now.
	Activate(ctx context.Context, userID string, plan *models.Plan) (*models.Subscription, error)
	// Expire marks the record expired if it still matches planID and endDate.
	Expire(ctx context.Context, userID, planID string, endDate time.Time) (bool, error)
}

// ExpiryScheduler arranges for Expire to run at the end of a subscription.
type ExpiryScheduler interface {
	ScheduleExpiry(ctx context.Context, payload tasks.SubscriptionExpiryPayload) error
}

// Status is the metered record plus whether it currently grants benefits.
type Status struct {
	models.Subscription
	Active bool `json:"active"`
}

// DefaultSubscriptionService is the production implementation.
type DefaultSubscriptionService struct {
	Users     userRepo.UserRepository
	Catalog   catalogRepo.CatalogRepository
	Notifier  notification.NotificationService
	Scheduler ExpiryScheduler
	now       func() time.Time
}

// NewSubscriptionService wires the ledger. A nil scheduler leaves expiry to the read-time check.
func NewSubscriptionService(users userRepo.UserRepository, catalog catalogRepo.CatalogRepository, notifier notification.NotificationService, scheduler ExpiryScheduler) *DefaultSubscriptionService {
	return &DefaultSubscriptionService{
		Users:     users,
		Catalog:   catalog,
		Notifier:  notifier,
		Scheduler: scheduler,
		now:       time.Now,
	}
}
