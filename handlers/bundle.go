package handlers

import (
	"homefix/middleware"
	"homefix/services/booking"
	"homefix/services/catalog"
	"homefix/services/notification"
	"homefix/services/payment"
	"homefix/services/subscription"
	"homefix/services/technician"
	"homefix/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Resolver backs the authentication middleware.
	Resolver middleware.TokenResolver

	Auth          *AuthHandler
	Users         *UserHandler
	Catalog       *CatalogHandler
	Subscriptions *SubscriptionHandler
	Bookings      *BookingHandler
	Payments      *PaymentHandler
	Notifications *NotificationHandler
	Technicians   *TechnicianHandler
	Health        *HealthHandler
}

// Services are the domain services the handlers are built on.
type Services struct {
	Users         user.UserService
	Catalog       catalog.CatalogService
	Subscriptions subscription.SubscriptionService
	Bookings      booking.BookingService
	Payments      payment.PaymentService
	Notifications notification.NotificationService
	Technicians   technician.TechnicianService
}

func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		Resolver:      s.Users,
		Auth:          &AuthHandler{UserService: s.Users},
		Users:         &UserHandler{UserService: s.Users},
		Catalog:       &CatalogHandler{CatalogService: s.Catalog},
		Subscriptions: &SubscriptionHandler{SubscriptionService: s.Subscriptions},
		Bookings:      &BookingHandler{BookingService: s.Bookings},
		Payments:      &PaymentHandler{PaymentService: s.Payments},
		Notifications: &NotificationHandler{NotificationService: s.Notifications},
		Technicians:   &TechnicianHandler{TechnicianService: s.Technicians},
		Health:        &HealthHandler{},
	}
}
