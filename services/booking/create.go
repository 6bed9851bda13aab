package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homefix/models"
	"homefix/services/notification"
	"homefix/utils"

	"github.com/google/uuid"
)

var scheduledDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseScheduledDate(s string) (time.Time, error) {
	for _, layout := range scheduledDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, utils.NewValidationError("scheduledDate must be YYYY-MM-DD or RFC3339")
}

func validateCreate(in *CreateInput) (time.Time, error) {
	required := []struct{ name, value string }{
		{"serviceId", in.ServiceID},
		{"scheduledDate", in.ScheduledDate},
		{"scheduledTime", in.ScheduledTime},
		{"address", in.Address},
		{"contactPhone", in.ContactPhone},
		{"problemDescription", in.ProblemDescription},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return time.Time{}, utils.NewValidationError("%s is required", f.name)
		}
	}

	date, err := parseScheduledDate(in.ScheduledDate)
	if err != nil {
		return time.Time{}, err
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !in.Priority.Valid() {
		return time.Time{}, utils.NewValidationError("unknown priority %q", in.Priority)
	}
	switch in.PaymentMethod {
	case "":
		in.PaymentMethod = models.BookingPayCash
	case models.BookingPayCash, models.BookingPayCard, models.BookingPayOnline:
	default:
		return time.Time{}, utils.NewValidationError("unknown payment method %q", in.PaymentMethod)
	}
	return date, nil
}

// Create prices and stores a pending booking. The price fields are fixed here and
// never rewritten afterwards.
func (s *DefaultBookingService) Create(ctx context.Context, userID string, in CreateInput) (*models.Booking, error) {
	date, err := validateCreate(&in)
	if err != nil {
		return nil, err
	}

	svc, err := s.Catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, translate(err)
	}
	if !svc.IsAvailable {
		return nil, utils.NewValidationError("service %s is not currently available", svc.Name)
	}

	customer, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	total, discount, final := Quote(svc.Price, customer.Subscription.IsActive(s.now()))

	b := &models.Booking{
		ID:                 uuid.New().String(),
		UserID:             userID,
		ServiceID:          svc.ID,
		ScheduledDate:      date,
		ScheduledTime:      strings.TrimSpace(in.ScheduledTime),
		Address:            strings.TrimSpace(in.Address),
		ContactPhone:       strings.TrimSpace(in.ContactPhone),
		ProblemDescription: strings.TrimSpace(in.ProblemDescription),
		Status:             models.StatusPending,
		Priority:           in.Priority,
		TotalPrice:         total,
		Discount:           discount,
		FinalPrice:         final,
		PaymentStatus:      models.BookingPaymentPending,
		PaymentMethod:      in.PaymentMethod,
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, translate(err)
	}

	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  userID,
		Title:   "Booking Created",
		Message: fmt.Sprintf("Your booking for %s has been created successfully.", svc.Name),
		Type:    models.NotifBooking,
		Target:  models.BookingTarget(b.ID),
	})
	return b, nil
}
