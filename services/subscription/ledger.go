package subscription

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "homefix/database/repository/catalog"
	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/services/notification"
	"homefix/utils"
)

func (s *DefaultSubscriptionService) plan(ctx context.Context, planID string) (*models.Plan, error) {
	p, err := s.Catalog.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("plan not found")
		}
		return nil, utils.NewDependencyError("failed to load plan", err)
	}
	return p, nil
}

func userErr(err error) error {
	if errors.Is(err, userRepo.ErrNotFound) {
		return utils.NewNotFoundError("user not found")
	}
	return utils.NewDependencyError("failed to update subscriptions", err)
}

// Subscribe adds planID to the user's list, rejecting duplicates.
func (s *DefaultSubscriptionService) Subscribe(ctx context.Context, userID, planID string) ([]string, error) {
	plan, err := s.plan(ctx, planID)
	if err != nil {
		return nil, err
	}
	added, err := s.Users.AddPlan(ctx, userID, planID)
	if err != nil {
		return nil, userErr(err)
	}
	if !added {
		return nil, utils.NewConflictError("already subscribed to this plan")
	}

	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  userID,
		Title:   "Subscription Added",
		Message: fmt.Sprintf("Subscribed to %s", plan.Name),
		Type:    models.NotifSubscription,
		Target:  models.PlanTarget(plan.ID),
	})
	return s.ListSubscriptions(ctx, userID)
}

// Unsubscribe removes planID from the list and cancels the metered record if it backs it.
func (s *DefaultSubscriptionService) Unsubscribe(ctx context.Context, userID, planID string) ([]string, error) {
	plan, err := s.plan(ctx, planID)
	if err != nil {
		return nil, err
	}
	removed, err := s.Users.RemovePlan(ctx, userID, planID)
	if err != nil {
		return nil, userErr(err)
	}
	if !removed {
		return nil, utils.NewConflictError("user is not subscribed to this plan")
	}
	if _, err := s.Users.TransitionSubscription(ctx, userID, planID, zeroTime, models.SubscriptionCancelled); err != nil {
		return nil, userErr(err)
	}

	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  userID,
		Title:   "Subscription Cancelled",
		Message: fmt.Sprintf("Unsubscribed from %s", plan.Name),
		Type:    models.NotifSubscription,
		Target:  models.PlanTarget(plan.ID),
	})
	return s.ListSubscriptions(ctx, userID)
}

func (s *DefaultSubscriptionService) ListSubscriptions(ctx context.Context, userID string) ([]string, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, userErr(err)
	}
	if u.SubscribedPlans == nil {
		return []string{}, nil
	}
	return u.SubscribedPlans, nil
}

// ActiveSubscription returns the metered record, or nil when the user never bought a plan.
func (s *DefaultSubscriptionService) ActiveSubscription(ctx context.Context, userID string) (*Status, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, userErr(err)
	}
	if u.Subscription == nil {
		return nil, nil
	}
	return &Status{Subscription: *u.Subscription, Active: u.Subscription.IsActive(s.now())}, nil
}
