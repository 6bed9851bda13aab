package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"homefix/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expireCall struct {
	userID, planID string
	endDate        time.Time
}

type fakeExpirer struct {
	calls []expireCall
	err   error
}

func (f *fakeExpirer) Expire(_ context.Context, userID, planID string, endDate time.Time) (bool, error) {
	f.calls = append(f.calls, expireCall{userID, planID, endDate})
	return f.err == nil, f.err
}

func TestHandleSubscriptionExpiry(t *testing.T) {
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	task, _, err := tasks.NewSubscriptionExpiryTask(tasks.SubscriptionExpiryPayload{UserID: "u1", PlanID: "basic", EndDate: end})
	require.NoError(t, err)

	subs := &fakeExpirer{}
	require.NoError(t, HandleSubscriptionExpiry(subs)(context.Background(), task))
	require.Len(t, subs.calls, 1)
	assert.Equal(t, "u1", subs.calls[0].userID)
	assert.True(t, end.Equal(subs.calls[0].endDate))
}

func TestHandleSubscriptionExpiryRetriesStoreErrors(t *testing.T) {
	task, _, err := tasks.NewSubscriptionExpiryTask(tasks.SubscriptionExpiryPayload{UserID: "u1", PlanID: "basic", EndDate: time.Now()})
	require.NoError(t, err)

	err = HandleSubscriptionExpiry(&fakeExpirer{err: assert.AnError})(context.Background(), task)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleSubscriptionExpirySkipsMalformedPayload(t *testing.T) {
	subs := &fakeExpirer{}
	err := HandleSubscriptionExpiry(subs)(context.Background(), asynq.NewTask(tasks.TypeSubscriptionExpire, []byte("{}")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, subs.calls)
}
