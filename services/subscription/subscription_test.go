package subscription

import (
	"context"
	"testing"
	"time"

	"homefix/database/repository/repotest"
	"homefix/models"
	"homefix/services/notification"
	"homefix/services/tasks"
	"homefix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScheduler struct {
	payloads []tasks.SubscriptionExpiryPayload
	err      error
}

func (r *recordingScheduler) ScheduleExpiry(_ context.Context, p tasks.SubscriptionExpiryPayload) error {
	r.payloads = append(r.payloads, p)
	return r.err
}

var plans = []models.Plan{
	{ID: "basic", Name: "Basic", Price: 2500, Duration: models.DurationMonthly},
	{ID: "standard", Name: "Standard", Price: 6500, Duration: models.DurationQuarterly},
	{ID: "premium", Name: "Premium", Price: 22000, Duration: models.DurationYearly},
}

func newService(t *testing.T) (*DefaultSubscriptionService, *repotest.Users, *repotest.Notifications, *recordingScheduler) {
	t.Helper()
	users := repotest.NewUsers(models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleUser})
	notifications := repotest.NewNotifications()
	sched := &recordingScheduler{}
	svc := NewSubscriptionService(users, repotest.NewCatalog().WithPlans(plans...),
		notification.NewDefaultNotificationService(notifications, users, nil), sched)
	return svc, users, notifications, sched
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	svc, _, notifications, _ := newService(t)
	ctx := context.Background()

	ids, err := svc.Subscribe(ctx, "u1", "basic")
	require.NoError(t, err)
	assert.Equal(t, []string{"basic"}, ids)

	_, err = svc.Subscribe(ctx, "u1", "basic")
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	ids, err = svc.Subscribe(ctx, "u1", "premium")
	require.NoError(t, err)
	assert.Equal(t, []string{"basic", "premium"}, ids)

	ids, err = svc.Unsubscribe(ctx, "u1", "basic")
	require.NoError(t, err)
	assert.Equal(t, []string{"premium"}, ids)

	_, err = svc.Unsubscribe(ctx, "u1", "basic")
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	_, err = svc.Subscribe(ctx, "u1", "missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	ns := notifications.All()
	require.Len(t, ns, 3)
	for _, n := range ns {
		assert.Equal(t, models.NotifSubscription, n.Type)
	}
}

func TestSubscribeUnknownUser(t *testing.T) {
	svc, _, _, _ := newService(t)
	_, err := svc.Subscribe(context.Background(), "ghost", "basic")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestActivateQuarterlyPlan(t *testing.T) {
	svc, users, _, sched := newService(t)
	start := time.Date(2026, 1, 15, 8, 30, 0, 123456789, time.UTC)
	svc.now = func() time.Time { return start }

	sub, err := svc.Activate(context.Background(), "u1", &plans[1])
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionActive, sub.Status)
	assert.Equal(t, time.Date(2026, 4, 15, 8, 30, 0, 123000000, time.UTC), sub.EndDate)

	u, err := users.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, u.HasPlan("standard"))
	require.Len(t, sched.payloads, 1)
	assert.True(t, sched.payloads[0].EndDate.Equal(sub.EndDate))
}

func TestActivateOverwritesPreviousRecord(t *testing.T) {
	svc, users, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Activate(ctx, "u1", &plans[0])
	require.NoError(t, err)
	_, err = svc.Activate(ctx, "u1", &plans[2])
	require.NoError(t, err)

	u, _ := users.GetByID(ctx, "u1")
	require.NotNil(t, u.Subscription)
	assert.Equal(t, "premium", u.Subscription.PlanID)
	assert.ElementsMatch(t, []string{"basic", "premium"}, u.SubscribedPlans)
}

func TestActivateToleratesSchedulerFailure(t *testing.T) {
	svc, _, _, sched := newService(t)
	sched.err = assert.AnError

	_, err := svc.Activate(context.Background(), "u1", &plans[0])
	assert.NoError(t, err)
}

func TestExpireMatchesPlanAndEndDate(t *testing.T) {
	svc, _, notifications, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Activate(ctx, "u1", &plans[0])
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	second, err := svc.Activate(ctx, "u1", &plans[0])
	require.NoError(t, err)

	changed, err := svc.Expire(ctx, "u1", "basic", first.EndDate)
	require.NoError(t, err)
	assert.False(t, changed, "a renewed record must not be expired by the stale task")

	changed, err = svc.Expire(ctx, "u1", "basic", second.EndDate)
	require.NoError(t, err)
	assert.True(t, changed)

	status, err := svc.ActiveSubscription(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionExpired, status.Status)
	assert.False(t, status.Active)

	all := notifications.All()
	require.NotEmpty(t, all)
	last := all[len(all)-1]
	assert.Equal(t, "Subscription Expired", last.Title)
	assert.Equal(t, models.NotifPriorityHigh, last.Priority)
}

func TestUnsubscribeCancelsMeteredRecord(t *testing.T) {
	svc, _, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Activate(ctx, "u1", &plans[0])
	require.NoError(t, err)
	_, err = svc.Unsubscribe(ctx, "u1", "basic")
	require.NoError(t, err)

	status, err := svc.ActiveSubscription(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionCancelled, status.Status)
	assert.False(t, status.Active)
}

func TestActiveSubscriptionWithoutRecord(t *testing.T) {
	svc, _, _, _ := newService(t)
	status, err := svc.ActiveSubscription(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, status)
}
