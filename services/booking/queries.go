package booking

import (
	"context"

	bookingRepo "homefix/database/repository/booking"
	"homefix/models"
	"homefix/utils"
)

func (s *DefaultBookingService) ListMine(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.List(ctx, bookingRepo.BookingFilter{UserID: userID})
	if err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

// ListAll returns every booking for admins and the caller's assignments for technicians.
func (s *DefaultBookingService) ListAll(ctx context.Context, caller models.Identity) ([]models.Booking, error) {
	var filter bookingRepo.BookingFilter
	switch caller.Role {
	case models.RoleAdmin:
	case models.RoleTechnician:
		tech, err := s.Technicians.GetByUserID(ctx, caller.UserID)
		if err != nil {
			return nil, translate(err)
		}
		filter.TechnicianID = tech.ID
	default:
		return nil, utils.NewForbiddenError("not authorized to list all bookings")
	}

	bookings, err := s.Bookings.List(ctx, filter)
	if err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID string, caller models.Identity) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, translate(err)
	}
	if b.UserID != caller.UserID && !caller.HasRole(models.RoleAdmin, models.RoleTechnician) {
		return nil, utils.NewForbiddenError("not authorized to view this booking")
	}
	return b, nil
}
