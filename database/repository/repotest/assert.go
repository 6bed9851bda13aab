package repotest

import (
	bookingRepo "homefix/database/repository/booking"
	catalogRepo "homefix/database/repository/catalog"
	notificationRepo "homefix/database/repository/notification"
	paymentRepo "homefix/database/repository/payment"
	technicianRepo "homefix/database/repository/technician"
	userRepo "homefix/database/repository/user"
)

var (
	_ userRepo.UserRepository                 = (*Users)(nil)
	_ catalogRepo.CatalogRepository           = (*Catalog)(nil)
	_ bookingRepo.BookingRepository           = (*Bookings)(nil)
	_ technicianRepo.TechnicianRepository     = (*Technicians)(nil)
	_ paymentRepo.PaymentRepository           = (*Payments)(nil)
	_ notificationRepo.NotificationRepository = (*Notifications)(nil)
)
