package bookingRepo

import (
	"context"
	"errors"
	"time"

	"homefix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("booking not found")
	// ErrStale is returned when a conditional update lost to a concurrent change.
	ErrStale = errors.New("booking changed concurrently")
)

// BookingFilter narrows List. Empty fields are ignored.
type BookingFilter struct {
	UserID       string
	TechnicianID string
	Statuses     []models.BookingStatus
	CreatedFrom  time.Time
	CreatedTo    time.Time
	Limit        int64
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// List returns bookings matching filter, newest first.
	List(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)

	// UpdateStatus moves the booking from one status to another. It fails with ErrStale
	// when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) (*models.Booking, error)
	// AssignTechnician records the technician while the booking is in one of the open statuses.
	AssignTechnician(ctx context.Context, id, technicianID string, open []models.BookingStatus) (*models.Booking, error)
	// MarkPaid sets paymentStatus=paid. ErrStale means it was already paid.
	MarkPaid(ctx context.Context, id string, method models.BookingPaymentMethod) error
	// SetReview attaches a review to a completed, unreviewed booking.
	SetReview(ctx context.Context, id string, review models.Review) (*models.Booking, error)

	// EarningsForTechnician sums finalPrice over completed, paid bookings.
	EarningsForTechnician(ctx context.Context, technicianID string) (float64, error)
	// AverageRatingForTechnician averages review ratings over the technician's bookings.
	AverageRatingForTechnician(ctx context.Context, technicianID string) (avg float64, count int64, err error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the bookings collection.
func NewMongoBookingRepo(db *mongo.Database) (BookingRepository, error) {
	repo := &mongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}
