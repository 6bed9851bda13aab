package booking

import (
	"context"
	"testing"
	"time"

	"homefix/database/repository/repotest"
	"homefix/models"
	"homefix/services/notification"
	"homefix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc           *DefaultBookingService
	bookings      *repotest.Bookings
	users         *repotest.Users
	technicians   *repotest.Technicians
	notifications *repotest.Notifications
}

func newFixture(t *testing.T, bookings ...models.Booking) *fixture {
	t.Helper()
	users := repotest.NewUsers(
		models.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: models.RoleUser},
		models.User{ID: "u2", Name: "Ravi", Email: "ravi@example.com", Role: models.RoleUser, Subscription: &models.Subscription{
			PlanID: "p1", Status: models.SubscriptionActive, StartDate: fixedNow.AddDate(0, -1, 0), EndDate: fixedNow.AddDate(0, 1, 0),
		}},
		models.User{ID: "tu1", Name: "Tech", Email: "tech@example.com", Role: models.RoleTechnician},
		models.User{ID: "tu2", Name: "Other Tech", Email: "tech2@example.com", Role: models.RoleTechnician},
	)
	catalog := repotest.NewCatalog().WithServices(
		models.Service{ID: "s1", Name: "Fan repair", Category: models.CategoryElectrical, Price: 1000, IsAvailable: true},
		models.Service{ID: "s2", Name: "Deep clean", Category: models.CategoryCleaning, Price: 500, IsAvailable: false},
	)
	techs := repotest.NewTechnicians(
		models.Technician{ID: "t1", UserID: "tu1", Specializations: []models.Specialization{models.SpecElectrical}, Availability: true},
		models.Technician{ID: "t2", UserID: "tu2", Specializations: []models.Specialization{models.SpecPlumbing}, Availability: true},
	)
	f := &fixture{
		bookings:      repotest.NewBookings(bookings...),
		users:         users,
		technicians:   techs,
		notifications: repotest.NewNotifications(),
	}
	notifier := notification.NewDefaultNotificationService(f.notifications, users, nil)
	f.svc = NewBookingService(f.bookings, catalog, users, techs, notifier)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func validInput() CreateInput {
	return CreateInput{
		ServiceID:          "s1",
		ScheduledDate:      "2026-05-12",
		ScheduledTime:      "10:00",
		Address:            "12 MG Road",
		ContactPhone:       "9999999999",
		ProblemDescription: "Ceiling fan is noisy",
	}
}

func titles(ns []models.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Title)
	}
	return out
}

func TestQuote(t *testing.T) {
	total, discount, final := Quote(1000, false)
	assert.Equal(t, 1000.0, total)
	assert.Equal(t, 0.0, discount)
	assert.Equal(t, 1000.0, final)

	total, discount, final = Quote(1000, true)
	assert.Equal(t, 1000.0, total)
	assert.Equal(t, 100.0, discount)
	assert.Equal(t, 900.0, final)
}

func TestCreatePricesWithoutSubscription(t *testing.T) {
	f := newFixture(t)

	b, err := f.svc.Create(context.Background(), "u1", validInput())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, models.PriorityMedium, b.Priority)
	assert.Equal(t, models.BookingPaymentPending, b.PaymentStatus)
	assert.Equal(t, models.BookingPayCash, b.PaymentMethod)
	assert.Equal(t, 1000.0, b.TotalPrice)
	assert.Equal(t, 0.0, b.Discount)
	assert.Equal(t, 1000.0, b.FinalPrice)

	ns := f.notifications.All()
	require.Len(t, ns, 1)
	assert.Equal(t, "Booking Created", ns[0].Title)
	assert.Equal(t, models.BookingTarget(b.ID), ns[0].NotificationTarget)
}

func TestCreateAppliesSubscriberDiscount(t *testing.T) {
	f := newFixture(t)

	b, err := f.svc.Create(context.Background(), "u2", validInput())
	require.NoError(t, err)
	assert.Equal(t, 100.0, b.Discount)
	assert.Equal(t, 900.0, b.FinalPrice)
}

func TestCreateIgnoresExpiredSubscription(t *testing.T) {
	f := newFixture(t)
	f.svc.now = func() time.Time { return fixedNow.AddDate(0, 2, 0) }

	b, err := f.svc.Create(context.Background(), "u2", validInput())
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Discount)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := validInput()
	in.Address = "  "
	_, err := f.svc.Create(ctx, "u1", in)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	in = validInput()
	in.ScheduledDate = "12/05/2026"
	_, err = f.svc.Create(ctx, "u1", in)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	in = validInput()
	in.Priority = "urgent"
	_, err = f.svc.Create(ctx, "u1", in)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	in = validInput()
	in.ServiceID = "s2"
	_, err = f.svc.Create(ctx, "u1", in)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	in = validInput()
	in.ServiceID = "missing"
	_, err = f.svc.Create(ctx, "u1", in)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	assert.Empty(t, f.notifications.All())
}

func TestCreateSurvivesNotificationFailure(t *testing.T) {
	f := newFixture(t)
	f.notifications.Err = assert.AnError

	b, err := f.svc.Create(context.Background(), "u1", validInput())
	require.NoError(t, err)
	stored, err := f.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.FinalPrice, stored.FinalPrice)
}

func TestAssignTechnician(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", ServiceID: "s1", Status: models.StatusPending})
	ctx := context.Background()

	b, err := f.svc.AssignTechnician(ctx, "b1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", b.TechnicianID)

	tech, err := f.technicians.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, tech.TotalJobs)
	assert.Equal(t, "b1", tech.CurrentJob)

	ns := f.notifications.All()
	require.Len(t, ns, 2)
	assert.Equal(t, "u1", ns[0].UserID)
	assert.Equal(t, "tu1", ns[1].UserID)
	assert.Equal(t, models.NotifPriorityHigh, ns[1].Priority)
}

func TestAssignTechnicianNotFound(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", Status: models.StatusPending})

	_, err := f.svc.AssignTechnician(context.Background(), "b1", "ghost")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.svc.AssignTechnician(context.Background(), "nope", "t1")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestAssignTechnicianToTerminalBooking(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", Status: models.StatusCompleted})

	_, err := f.svc.AssignTechnician(context.Background(), "b1", "t1")
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestReassignReleasesPreviousTechnician(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", Status: models.StatusConfirmed})
	ctx := context.Background()

	_, err := f.svc.AssignTechnician(ctx, "b1", "t1")
	require.NoError(t, err)
	_, err = f.svc.AssignTechnician(ctx, "b1", "t2")
	require.NoError(t, err)

	first, _ := f.technicians.GetByID(ctx, "t1")
	second, _ := f.technicians.GetByID(ctx, "t2")
	assert.Empty(t, first.CurrentJob)
	assert.Equal(t, "b1", second.CurrentJob)
}

func TestFullLifecycleCountsCompletion(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", Status: models.StatusPending})
	ctx := context.Background()
	admin := models.Identity{UserID: "a1", Role: models.RoleAdmin}
	tech := models.Identity{UserID: "tu1", Role: models.RoleTechnician}

	_, err := f.svc.AssignTechnician(ctx, "b1", "t1")
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, "b1", models.StatusConfirmed, admin)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, "b1", models.StatusInProgress, tech)
	require.NoError(t, err)
	b, err := f.svc.UpdateStatus(ctx, "b1", models.StatusCompleted, tech)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, b.Status)

	got, _ := f.technicians.GetByID(ctx, "t1")
	assert.Equal(t, 1, got.CompletedJobs)
	assert.Empty(t, got.CurrentJob)

	_, err = f.svc.UpdateStatus(ctx, "b1", models.StatusPending, admin)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", Status: models.StatusPending})
	admin := models.Identity{UserID: "a1", Role: models.RoleAdmin}

	_, err := f.svc.UpdateStatus(context.Background(), "b1", models.StatusCompleted, admin)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	_, err = f.svc.UpdateStatus(context.Background(), "b1", "done", admin)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	b, _ := f.bookings.GetByID(context.Background(), "b1")
	assert.Equal(t, models.StatusPending, b.Status)
}

func TestUpdateStatusByUnassignedTechnician(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", TechnicianID: "t1", Status: models.StatusConfirmed})
	other := models.Identity{UserID: "tu2", Role: models.RoleTechnician}

	_, err := f.svc.UpdateStatus(context.Background(), "b1", models.StatusInProgress, other)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestCancel(t *testing.T) {
	f := newFixture(t,
		models.Booking{ID: "b1", UserID: "u1", TechnicianID: "t1", Status: models.StatusConfirmed},
		models.Booking{ID: "b2", UserID: "u1", Status: models.StatusCompleted},
	)
	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, "b1", models.Identity{UserID: "u2", Role: models.RoleUser})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	b, err := f.svc.Cancel(ctx, "b1", models.Identity{UserID: "u1", Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, b.Status)
	assert.Contains(t, titles(f.notifications.All()), "Booking Cancelled")

	_, err = f.svc.Cancel(ctx, "b2", models.Identity{UserID: "a1", Role: models.RoleAdmin})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestAddReviewRecomputesRating(t *testing.T) {
	f := newFixture(t,
		models.Booking{ID: "b1", UserID: "u1", TechnicianID: "t1", Status: models.StatusCompleted},
		models.Booking{ID: "b2", UserID: "u1", TechnicianID: "t1", Status: models.StatusCompleted},
		models.Booking{ID: "b3", UserID: "u1", TechnicianID: "t1", Status: models.StatusInProgress},
	)
	ctx := context.Background()
	owner := models.Identity{UserID: "u1", Role: models.RoleUser}

	_, err := f.svc.AddReview(ctx, "b1", owner, ReviewInput{Rating: 5, Comment: " great "})
	require.NoError(t, err)
	b, err := f.svc.AddReview(ctx, "b2", owner, ReviewInput{Rating: 4})
	require.NoError(t, err)
	require.NotNil(t, b.Review)
	assert.Equal(t, 4, b.Review.Rating)

	tech, _ := f.technicians.GetByID(ctx, "t1")
	assert.Equal(t, 4.5, tech.Rating)

	_, err = f.svc.AddReview(ctx, "b1", owner, ReviewInput{Rating: 3})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	_, err = f.svc.AddReview(ctx, "b3", owner, ReviewInput{Rating: 3})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	_, err = f.svc.AddReview(ctx, "b2", models.Identity{UserID: "u2"}, ReviewInput{Rating: 3})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	_, err = f.svc.AddReview(ctx, "b2", owner, ReviewInput{Rating: 6})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestListAllByRole(t *testing.T) {
	f := newFixture(t,
		models.Booking{ID: "b1", UserID: "u1", TechnicianID: "t1", Status: models.StatusPending},
		models.Booking{ID: "b2", UserID: "u2", Status: models.StatusPending},
	)
	ctx := context.Background()

	all, err := f.svc.ListAll(ctx, models.Identity{UserID: "a1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.svc.ListAll(ctx, models.Identity{UserID: "tu1", Role: models.RoleTechnician})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b1", mine[0].ID)

	_, err = f.svc.ListAll(ctx, models.Identity{UserID: "ghost", Role: models.RoleTechnician})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.svc.ListAll(ctx, models.Identity{UserID: "u1", Role: models.RoleUser})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestGetByIDVisibility(t *testing.T) {
	f := newFixture(t, models.Booking{ID: "b1", UserID: "u1", Status: models.StatusPending})
	ctx := context.Background()

	_, err := f.svc.GetByID(ctx, "b1", models.Identity{UserID: "u1", Role: models.RoleUser})
	assert.NoError(t, err)
	_, err = f.svc.GetByID(ctx, "b1", models.Identity{UserID: "tu1", Role: models.RoleTechnician})
	assert.NoError(t, err)
	_, err = f.svc.GetByID(ctx, "b1", models.Identity{UserID: "u2", Role: models.RoleUser})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestFSM(t *testing.T) {
	assert.True(t, CanTransition(models.StatusPending, models.StatusConfirmed))
	assert.True(t, CanTransition(models.StatusInProgress, models.StatusCancelled))
	assert.False(t, CanTransition(models.StatusPending, models.StatusInProgress))
	assert.False(t, CanTransition(models.StatusCancelled, models.StatusPending))
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusConfirmed))
	assert.ElementsMatch(t,
		[]models.BookingStatus{models.StatusPending, models.StatusConfirmed, models.StatusInProgress},
		openStatuses())
}
