package subscription

import (
	"context"
	"time"

	"homefix/models"
	"homefix/services/notification"
	"homefix/services/tasks"
	"homefix/utils"

	"go.uber.org/zap"
)

var zeroTime time.Time

// Activate writes {planId, active, now, now+duration}, keeps the plan in the subscribed
// list and schedules the expiry. Times are truncated to the store's millisecond precision.
func (s *DefaultSubscriptionService) Activate(ctx context.Context, userID string, plan *models.Plan) (*models.Subscription, error) {
	start := s.now().UTC().Truncate(time.Millisecond)
	sub := models.Subscription{
		PlanID:    plan.ID,
		Status:    models.SubscriptionActive,
		StartDate: start,
		EndDate:   plan.Duration.EndFrom(start),
	}

	if err := s.Users.SetSubscription(ctx, userID, sub); err != nil {
		return nil, userErr(err)
	}
	if _, err := s.Users.AddPlan(ctx, userID, plan.ID); err != nil {
		return nil, userErr(err)
	}

	if s.Scheduler != nil {
		payload := tasks.SubscriptionExpiryPayload{UserID: userID, PlanID: plan.ID, EndDate: sub.EndDate}
		if err := s.Scheduler.ScheduleExpiry(ctx, payload); err != nil {
			utils.GetLogger().Warn("subscription expiry not scheduled",
				zap.String("userId", userID),
				zap.String("planId", plan.ID),
				zap.Error(err))
		}
	}
	return &sub, nil
}

func (s *DefaultSubscriptionService) Expire(ctx context.Context, userID, planID string, endDate time.Time) (bool, error) {
	changed, err := s.Users.TransitionSubscription(ctx, userID, planID, endDate, models.SubscriptionExpired)
	if err != nil {
		return false, utils.NewDependencyError("failed to expire subscription", err)
	}
	if changed {
		s.Notifier.Notify(ctx, notification.PushInput{
			UserID:   userID,
			Title:    "Subscription Expired",
			Message:  "Your plan has expired. Renew to keep your subscriber discount.",
			Type:     models.NotifSubscription,
			Target:   models.PlanTarget(planID),
			Priority: models.NotifPriorityHigh,
		})
	}
	return changed, nil
}
