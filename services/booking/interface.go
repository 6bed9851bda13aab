package booking

import (
	"context"
	"time"

	bookingRepo "homefix/database/repository/booking"
	catalogRepo "homefix/database/repository/catalog"
	technicianRepo "homefix/database/repository/technician"
	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/services/notification"
)

// BookingService manages the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, userID string, in CreateInput) (*models.Booking, error)
	AssignTechnician(ctx context.Context, bookingID, technicianID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, caller models.Identity) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string, caller models.Identity) (*models.Booking, error)
	AddReview(ctx context.Context, bookingID string, caller models.Identity, in ReviewInput) (*models.Booking, error)

	ListMine(ctx context.Context, userID string) ([]models.Booking, error)
	ListAll(ctx context.Context, caller models.Identity) ([]models.Booking, error)
	GetByID(ctx context.Context, bookingID string, caller models.Identity) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings    bookingRepo.BookingRepository
	Catalog     catalogRepo.CatalogRepository
	Users       userRepo.UserRepository
	Technicians technicianRepo.TechnicianRepository
	Notifier    notification.NotificationService
	now         func() time.Time
}

func NewBookingService(
	bookings bookingRepo.BookingRepository,
	catalog catalogRepo.CatalogRepository,
	users userRepo.UserRepository,
	technicians technicianRepo.TechnicianRepository,
	notifier notification.NotificationService,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:    bookings,
		Catalog:     catalog,
		Users:       users,
		Technicians: technicians,
		Notifier:    notifier,
		now:         time.Now,
	}
}

type CreateInput struct {
	ServiceID          string                      `json:"serviceId"`
	ScheduledDate      string                      `json:"scheduledDate"`
	ScheduledTime      string                      `json:"scheduledTime"`
	Address            string                      `json:"address"`
	ContactPhone       string                      `json:"contactPhone"`
	ProblemDescription string                      `json:"problemDescription"`
	Priority           models.Priority             `json:"priority"`
	PaymentMethod      models.BookingPaymentMethod `json:"paymentMethod"`
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
