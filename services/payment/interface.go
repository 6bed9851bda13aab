package payment

import (
	"context"
	"time"

	bookingRepo "homefix/database/repository/booking"
	catalogRepo "homefix/database/repository/catalog"
	paymentRepo "homefix/database/repository/payment"
	"homefix/models"
	"homefix/services/notification"
	"homefix/services/subscription"
)

type PaymentService interface {
	// Record dispatches to RecordForBooking or RecordForPlan; exactly one target must be set.
	Record(ctx context.Context, userID string, in RecordInput) (*models.Payment, error)
	RecordForBooking(ctx context.Context, userID, bookingID string, method models.PaymentMethod) (*models.Payment, error)
	RecordForPlan(ctx context.Context, userID, planID string, method models.PaymentMethod) (*models.Payment, error)
	VerifyExternal(ctx context.Context, orderID, gatewayPaymentID, signature string) (bool, error)

	ListMine(ctx context.Context, userID string) ([]models.Payment, error)
	GetByID(ctx context.Context, paymentID string, caller models.Identity) (*models.Payment, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Payments      paymentRepo.PaymentRepository
	Bookings      bookingRepo.BookingRepository
	Catalog       catalogRepo.CatalogRepository
	Subscriptions subscription.SubscriptionService
	Notifier      notification.NotificationService
	Gateway       Gateway
	Currency      string
	secret        []byte
	now           func() time.Time
}

type Config struct {
	// SignatureSecret keys the HMAC checked by VerifyExternal.
	SignatureSecret string
	Currency        string
}

func NewPaymentService(
	payments paymentRepo.PaymentRepository,
	bookings bookingRepo.BookingRepository,
	catalog catalogRepo.CatalogRepository,
	subs subscription.SubscriptionService,
	notifier notification.NotificationService,
	gateway Gateway,
	cfg Config,
) *DefaultPaymentService {
	if gateway == nil {
		gateway = LocalGateway{}
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	return &DefaultPaymentService{
		Payments:      payments,
		Bookings:      bookings,
		Catalog:       catalog,
		Subscriptions: subs,
		Notifier:      notifier,
		Gateway:       gateway,
		Currency:      cfg.Currency,
		secret:        []byte(cfg.SignatureSecret),
		now:           time.Now,
	}
}

type RecordInput struct {
	BookingID     string               `json:"bookingId"`
	PlanID        string               `json:"planId"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}
