package technician

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"homefix/database/repository/repotest"
	technicianRepo "homefix/database/repository/technician"
	"homefix/models"
	"homefix/services/storage"
	"homefix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

type fakeStorage struct{ folder string }

func (f *fakeStorage) Upload(_ context.Context, folder, name string, _ io.Reader) (string, error) {
	f.folder = folder
	return "https://cdn.example.com/" + name, nil
}

func newService(t *testing.T, bookings ...models.Booking) (*DefaultTechnicianService, *fakeStorage) {
	t.Helper()
	users := repotest.NewUsers(
		models.User{ID: "tu1", Email: "t1@example.com", Role: models.RoleTechnician},
		models.User{ID: "tu2", Email: "t2@example.com", Role: models.RoleTechnician},
		models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleUser},
	)
	techs := repotest.NewTechnicians(models.Technician{
		ID: "t1", UserID: "tu1", Specializations: []models.Specialization{models.SpecElectrical},
		Availability: true, TotalJobs: 4, CompletedJobs: 3, Rating: 4.5,
	})
	store := &fakeStorage{}
	svc := NewTechnicianService(techs, users, repotest.NewBookings(bookings...), store)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestCreate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tech, err := svc.Create(ctx, TechnicianInput{
		UserID: "tu2", Specializations: []models.Specialization{models.SpecPlumbing, models.SpecAC}, Experience: 3, Location: " Pune ",
	})
	require.NoError(t, err)
	assert.True(t, tech.Availability)
	assert.Equal(t, "Pune", tech.Location)

	_, err = svc.Create(ctx, TechnicianInput{UserID: "tu2", Specializations: []models.Specialization{models.SpecPlumbing}})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	_, err = svc.Create(ctx, TechnicianInput{UserID: "u1", Specializations: []models.Specialization{models.SpecPlumbing}})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.Create(ctx, TechnicianInput{UserID: "ghost", Specializations: []models.Specialization{models.SpecPlumbing}})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = svc.Create(ctx, TechnicianInput{UserID: "tu2", Specializations: []models.Specialization{"carpentry"}})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestGetByIDIncludesRecentCompletedBookings(t *testing.T) {
	var bookings []models.Booking
	for i := 0; i < 7; i++ {
		bookings = append(bookings, models.Booking{
			ID: string(rune('a' + i)), UserID: "u1", TechnicianID: "t1",
			Status: models.StatusCompleted, CreatedAt: fixedNow.Add(time.Duration(i) * time.Hour),
		})
	}
	bookings = append(bookings, models.Booking{ID: "open", UserID: "u1", TechnicianID: "t1", Status: models.StatusPending, CreatedAt: fixedNow.Add(24 * time.Hour)})
	svc, _ := newService(t, bookings...)

	detail, err := svc.GetByID(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, detail.RecentBookings, RecentBookingsLimit)
	assert.Equal(t, "g", detail.RecentBookings[0].ID)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestStats(t *testing.T) {
	lastMonth := fixedNow.AddDate(0, -1, 0)
	svc, _ := newService(t,
		models.Booking{ID: "b1", TechnicianID: "t1", Status: models.StatusCompleted, PaymentStatus: models.BookingPaymentPaid, FinalPrice: 900, CreatedAt: fixedNow.Add(-time.Hour)},
		models.Booking{ID: "b2", TechnicianID: "t1", Status: models.StatusCompleted, PaymentStatus: models.BookingPaymentPending, FinalPrice: 500, CreatedAt: fixedNow.Add(-2 * time.Hour)},
		models.Booking{ID: "b3", TechnicianID: "t1", Status: models.StatusCompleted, PaymentStatus: models.BookingPaymentPaid, FinalPrice: 1000, CreatedAt: lastMonth},
		models.Booking{ID: "b4", TechnicianID: "t1", Status: models.StatusPending, CreatedAt: fixedNow},
		models.Booking{ID: "b5", TechnicianID: "t1", Status: models.StatusConfirmed, CreatedAt: fixedNow},
		models.Booking{ID: "b6", TechnicianID: "t1", Status: models.StatusInProgress, CreatedAt: fixedNow},
		models.Booking{ID: "b7", TechnicianID: "t2", Status: models.StatusPending, CreatedAt: fixedNow},
	)

	stats, err := svc.Stats(context.Background(), "tu1")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalJobs)
	assert.Equal(t, 3, stats.CompletedJobs)
	assert.Equal(t, 4.5, stats.Rating)
	assert.Equal(t, int64(2), stats.MonthlyBookings)
	assert.Equal(t, int64(2), stats.PendingBookings)
	assert.Equal(t, 1900.0, stats.TotalEarnings)

	_, err = svc.Stats(context.Background(), "u1")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestSelfServiceUpdates(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	years := 6
	tech, err := svc.UpdateProfile(ctx, "tu1", ProfileInput{Experience: &years})
	require.NoError(t, err)
	assert.Equal(t, 6, tech.Experience)
	assert.Equal(t, []models.Specialization{models.SpecElectrical}, tech.Specializations)

	negative := -1
	_, err = svc.UpdateProfile(ctx, "tu1", ProfileInput{Experience: &negative})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	tech, err = svc.SetAvailability(ctx, "tu1", false)
	require.NoError(t, err)
	assert.False(t, tech.Availability)

	available, err := svc.List(ctx, technicianRepo.TechnicianFilter{OnlyAvailable: true})
	require.NoError(t, err)
	assert.Empty(t, available)

	tech, err = svc.UploadDocument(ctx, "tu1", "id.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/t1-id.pdf"}, tech.Documents)
	assert.Equal(t, storage.FolderTechnicianDocuments, store.folder)
}

func TestMyBookings(t *testing.T) {
	svc, _ := newService(t,
		models.Booking{ID: "b1", TechnicianID: "t1", Status: models.StatusPending, CreatedAt: fixedNow},
		models.Booking{ID: "b2", TechnicianID: "t2", Status: models.StatusPending, CreatedAt: fixedNow},
	)

	bookings, err := svc.MyBookings(context.Background(), "tu1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
}
