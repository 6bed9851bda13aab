package repository

import (
	"fmt"

	bookingRepo "homefix/database/repository/booking"
	catalogRepo "homefix/database/repository/catalog"
	notificationRepo "homefix/database/repository/notification"
	paymentRepo "homefix/database/repository/payment"
	technicianRepo "homefix/database/repository/technician"
	userRepo "homefix/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces so wiring code needs a single import.
type (
	UserRepository         = userRepo.UserRepository
	CatalogRepository      = catalogRepo.CatalogRepository
	BookingRepository      = bookingRepo.BookingRepository
	TechnicianRepository   = technicianRepo.TechnicianRepository
	PaymentRepository      = paymentRepo.PaymentRepository
	NotificationRepository = notificationRepo.NotificationRepository
)

// Set groups every Mongo-backed repository.
type Set struct {
	Users         UserRepository
	Catalog       CatalogRepository
	Bookings      BookingRepository
	Technicians   TechnicianRepository
	Payments      PaymentRepository
	Notifications NotificationRepository
}

// NewMongoSet builds all repositories against db, creating their indexes.
func NewMongoSet(db *mongo.Database) (*Set, error) {
	var (
		s   Set
		err error
	)
	if s.Users, err = userRepo.NewMongoUserRepo(db); err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}
	if s.Catalog, err = catalogRepo.NewMongoCatalogRepo(db); err != nil {
		return nil, fmt.Errorf("catalog repository: %w", err)
	}
	if s.Bookings, err = bookingRepo.NewMongoBookingRepo(db); err != nil {
		return nil, fmt.Errorf("booking repository: %w", err)
	}
	if s.Technicians, err = technicianRepo.NewMongoTechnicianRepo(db); err != nil {
		return nil, fmt.Errorf("technician repository: %w", err)
	}
	if s.Payments, err = paymentRepo.NewMongoPaymentRepo(db); err != nil {
		return nil, fmt.Errorf("payment repository: %w", err)
	}
	if s.Notifications, err = notificationRepo.NewMongoNotificationRepo(db); err != nil {
		return nil, fmt.Errorf("notification repository: %w", err)
	}
	return &s, nil
}
