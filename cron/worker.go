package cron

import (
	"context"
	"fmt"
	"time"

	"homefix/services/tasks"
	"homefix/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SubscriptionExpirer is the slice of the subscription ledger the worker drives.
type SubscriptionExpirer interface {
	Expire(ctx context.Context, userID, planID string, endDate time.Time) (bool, error)
}

// Worker consumes background tasks from the Redis queue database.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewWorker(redisOpts asynq.RedisClientOpt, subs SubscriptionExpirer) *Worker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: zap.S(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSubscriptionExpire, HandleSubscriptionExpiry(subs))
	return &Worker{srv: srv, mux: mux}
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *Worker) Start() {
	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting background worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			logger.Warn("Background worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Background worker gave up; subscriptions expire only at read time")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}

// HandleSubscriptionExpiry expires the subscription named by the task if it is still the
// user's active record for that plan and end date.
func HandleSubscriptionExpiry(subs SubscriptionExpirer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseSubscriptionExpiry(task)
		if err != nil {
			utils.GetLogger().Error("Invalid subscription expiry payload", zap.Error(err))
			// Malformed payloads never succeed on retry.
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		changed, err := subs.Expire(ctx, p.UserID, p.PlanID, p.EndDate)
		if err != nil {
			return err
		}
		utils.GetLogger().Info("Subscription expiry processed",
			zap.String("userId", p.UserID),
			zap.String("planId", p.PlanID),
			zap.Bool("expired", changed))
		return nil
	}
}

// MonitorRedisConnection pings Redis until ctx is cancelled, logging lost connections.
func MonitorRedisConnection(ctx context.Context, client *redis.Client) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				utils.GetLogger().Warn("Redis connection lost", zap.Error(err))
			}
		}
	}
}
