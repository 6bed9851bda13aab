package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"homefix/database/repository/repotest"
	"homefix/models"
	"homefix/services/notification"
	"homefix/services/subscription"
	"homefix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "rzp_test_secret"

type fixture struct {
	svc           *DefaultPaymentService
	payments      *repotest.Payments
	bookings      *repotest.Bookings
	users         *repotest.Users
	notifications *repotest.Notifications
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := repotest.NewUsers(
		models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleUser},
		models.User{ID: "u2", Email: "u2@example.com", Role: models.RoleUser},
	)
	catalog := repotest.NewCatalog().WithPlans(
		models.Plan{ID: "standard", Name: "Standard", Price: 6500, Duration: models.DurationQuarterly},
	)
	f := &fixture{
		payments: repotest.NewPayments(),
		bookings: repotest.NewBookings(
			models.Booking{ID: "b1", UserID: "u1", ServiceID: "s1", Status: models.StatusConfirmed,
				TotalPrice: 1000, Discount: 100, FinalPrice: 900, PaymentStatus: models.BookingPaymentPending},
			models.Booking{ID: "b2", UserID: "u1", ServiceID: "s1", Status: models.StatusCancelled,
				TotalPrice: 500, FinalPrice: 500, PaymentStatus: models.BookingPaymentPending},
		),
		users:         users,
		notifications: repotest.NewNotifications(),
	}
	notifier := notification.NewDefaultNotificationService(f.notifications, users, nil)
	subs := subscription.NewSubscriptionService(users, catalog, notifier, nil)
	f.svc = NewPaymentService(f.payments, f.bookings, catalog, subs, notifier, nil, Config{SignatureSecret: testSecret})
	return f
}

func TestRecordForBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Record(ctx, "u1", RecordInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.NoError(t, err)
	assert.Equal(t, 900.0, p.Amount)
	assert.Equal(t, "INR", p.Currency)
	assert.Equal(t, models.PaymentSuccess, p.Status)
	assert.True(t, strings.HasPrefix(p.TransactionID, "TXN-"))
	assert.True(t, strings.HasPrefix(p.OrderID, "order_"))

	b, err := f.bookings.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaymentPaid, b.PaymentStatus)
	assert.Equal(t, models.BookingPayOnline, b.PaymentMethod)
	assert.Equal(t, 900.0, b.FinalPrice)

	_, err = f.svc.RecordForBooking(ctx, "u1", "b1", models.MethodCash)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	mine, err := f.svc.ListMine(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestRecordForBookingChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RecordForBooking(ctx, "u2", "b1", models.MethodCard)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	_, err = f.svc.RecordForBooking(ctx, "u1", "missing", models.MethodCard)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.svc.RecordForBooking(ctx, "u1", "b1", "cheque")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = f.svc.RecordForBooking(ctx, "u1", "b2", models.MethodCard)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	all, _ := f.svc.ListAll(ctx)
	assert.Empty(t, all)
}

func TestRecordExclusivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Record(ctx, "u1", RecordInput{BookingID: "b1", PlanID: "standard", PaymentMethod: models.MethodCard})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = f.svc.Record(ctx, "u1", RecordInput{PaymentMethod: models.MethodCard})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestRecordForPlanActivatesSubscription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := time.Now().UTC()

	p, err := f.svc.Record(ctx, "u1", RecordInput{PlanID: "standard", PaymentMethod: models.MethodCard})
	require.NoError(t, err)
	assert.Equal(t, 6500.0, p.Amount)
	assert.Equal(t, "standard", p.PlanID)

	u, err := f.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u.Subscription)
	assert.Equal(t, models.SubscriptionActive, u.Subscription.Status)
	assert.Equal(t, "standard", u.Subscription.PlanID)
	assert.True(t, u.HasPlan("standard"))
	assert.Equal(t, u.Subscription.StartDate.AddDate(0, 3, 0), u.Subscription.EndDate)
	assert.False(t, u.Subscription.StartDate.Before(before.Truncate(time.Millisecond)))

	var titles []string
	for _, n := range f.notifications.All() {
		titles = append(titles, n.Title)
	}
	assert.Contains(t, titles, "Plan Activated")

	_, err = f.svc.RecordForPlan(ctx, "u1", "gold", models.MethodCard)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestVerifyExternal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.RecordForBooking(ctx, "u1", "b1", models.MethodCard)
	require.NoError(t, err)

	sig := Sign([]byte(testSecret), p.OrderID, "pay_123")
	ok, err := f.svc.VerifyExternal(ctx, p.OrderID, "pay_123", sig)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := f.payments.GetByOrderID(ctx, p.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "pay_123", stored.GatewayPaymentID)
	assert.Equal(t, sig, stored.Signature)
}

func TestVerifyExternalRejectsTampering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.RecordForBooking(ctx, "u1", "b1", models.MethodCard)
	require.NoError(t, err)
	sig := Sign([]byte(testSecret), p.OrderID, "pay_123")

	cases := []struct{ order, payment, sig string }{
		{p.OrderID, "pay_124", sig},
		{p.OrderID + "x", "pay_123", sig},
		{p.OrderID, "pay_123", strings.Repeat("0", len(sig))},
		{p.OrderID, "pay_123", ""},
		{p.OrderID, "pay_123", Sign([]byte("other"), p.OrderID, "pay_123")},
	}
	for _, c := range cases {
		ok, err := f.svc.VerifyExternal(ctx, c.order, c.payment, c.sig)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	stored, _ := f.payments.GetByOrderID(ctx, p.OrderID)
	assert.Empty(t, stored.GatewayPaymentID)
	assert.Empty(t, stored.Signature)
}

func TestVerifyExternalRejectsEverySingleCharacterChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.RecordForBooking(ctx, "u1", "b1", models.MethodCard)
	require.NoError(t, err)
	sig := Sign([]byte(testSecret), p.OrderID, "pay_123")

	var mutations []string
	for i := 0; i < len(sig); i++ {
		other := byte('0')
		if sig[i] == '0' {
			other = '1'
		}
		mutations = append(mutations, sig[:i]+string(other)+sig[i+1:])
		if sig[i] >= 'a' && sig[i] <= 'f' {
			mutations = append(mutations, sig[:i]+strings.ToUpper(sig[i:i+1])+sig[i+1:])
		}
	}
	mutations = append(mutations, strings.ToUpper(sig))

	for _, m := range mutations {
		ok, err := f.svc.VerifyExternal(ctx, p.OrderID, "pay_123", m)
		require.NoError(t, err)
		assert.False(t, ok, "mutated signature %q accepted", m)
	}

	stored, err := f.payments.GetByOrderID(ctx, p.OrderID)
	require.NoError(t, err)
	assert.Empty(t, stored.GatewayPaymentID)
	assert.Empty(t, stored.Signature)
	assert.Equal(t, p.Status, stored.Status)
}

func TestStripeGatewayDefersNonCardMethods(t *testing.T) {
	g := &StripeGateway{Fallback: LocalGateway{}}
	for _, m := range []models.PaymentMethod{models.MethodUPI, models.MethodCash, models.MethodWallet, models.MethodNetbanking} {
		id, err := g.CreateOrder(context.Background(), OrderRequest{Amount: 900, Currency: "INR", Method: m})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "order_"), id)
	}
}

func TestGetByIDVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.RecordForBooking(ctx, "u1", "b1", models.MethodCash)
	require.NoError(t, err)

	_, err = f.svc.GetByID(ctx, p.ID, models.Identity{UserID: "u1", Role: models.RoleUser})
	assert.NoError(t, err)
	_, err = f.svc.GetByID(ctx, p.ID, models.Identity{UserID: "a1", Role: models.RoleAdmin})
	assert.NoError(t, err)
	_, err = f.svc.GetByID(ctx, p.ID, models.Identity{UserID: "u2", Role: models.RoleUser})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	_, err = f.svc.GetByID(ctx, "nope", models.Identity{UserID: "u1", Role: models.RoleUser})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(90000), minorUnits(900))
	assert.Equal(t, int64(1999), minorUnits(19.99))
}
