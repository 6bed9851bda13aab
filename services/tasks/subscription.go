package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSubscriptionExpire = "subscription:expire"

// SubscriptionExpiryPayload identifies the subscription record a task may expire.
type SubscriptionExpiryPayload struct {
	UserID  string    `json:"userId"`
	PlanID  string    `json:"planId"`
	EndDate time.Time `json:"endDate"`
}

func NewSubscriptionExpiryTask(payload SubscriptionExpiryPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSubscriptionExpire, b)
	opts := []asynq.Option{
		asynq.ProcessAt(payload.EndDate),
		asynq.MaxRetry(5),
		// One pending expiry per user, plan and end date.
		asynq.TaskID(fmt.Sprintf("expire:%s:%s:%d", payload.UserID, payload.PlanID, payload.EndDate.Unix())),
	}
	return task, opts, nil
}

// ParseSubscriptionExpiry decodes a task payload.
func ParseSubscriptionExpiry(t *asynq.Task) (SubscriptionExpiryPayload, error) {
	var p SubscriptionExpiryPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeSubscriptionExpire, err)
	}
	if p.UserID == "" || p.PlanID == "" {
		return p, fmt.Errorf("invalid %s payload: missing user or plan", TypeSubscriptionExpire)
	}
	return p, nil
}

// Scheduler enqueues subscription expiry tasks.
type Scheduler struct {
	Client *asynq.Client
}

func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{Client: client}
}

func (s *Scheduler) ScheduleExpiry(ctx context.Context, payload SubscriptionExpiryPayload) error {
	task, opts, err := NewSubscriptionExpiryTask(payload)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue %s: %w", TypeSubscriptionExpire, err)
	}
	return nil
}
