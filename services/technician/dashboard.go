package technician

import (
	"context"
	"time"

	bookingRepo "homefix/database/repository/booking"
	"homefix/models"
	"homefix/utils"
)

// Stats summarises a technician's workload. Monthly bookings count jobs completed
// from bookings created since the start of the current month.
func (s *DefaultTechnicianService) Stats(ctx context.Context, userID string) (*models.TechnicianStats, error) {
	tech, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	monthly, err := s.Bookings.Count(ctx, bookingRepo.BookingFilter{
		TechnicianID: tech.ID,
		Statuses:     []models.BookingStatus{models.StatusCompleted},
		CreatedFrom:  monthStart,
		CreatedTo:    monthStart.AddDate(0, 1, 0),
	})
	if err != nil {
		return nil, utils.NewDependencyError("failed to count monthly bookings", err)
	}
	pending, err := s.Bookings.Count(ctx, bookingRepo.BookingFilter{
		TechnicianID: tech.ID,
		Statuses:     []models.BookingStatus{models.StatusPending, models.StatusConfirmed},
	})
	if err != nil {
		return nil, utils.NewDependencyError("failed to count pending bookings", err)
	}
	earnings, err := s.Bookings.EarningsForTechnician(ctx, tech.ID)
	if err != nil {
		return nil, utils.NewDependencyError("failed to sum earnings", err)
	}

	return &models.TechnicianStats{
		TotalJobs:       tech.TotalJobs,
		CompletedJobs:   tech.CompletedJobs,
		Rating:          tech.Rating,
		MonthlyBookings: monthly,
		PendingBookings: pending,
		TotalEarnings:   earnings,
	}, nil
}

// MyBookings lists every booking assigned to the caller's profile, newest first.
func (s *DefaultTechnicianService) MyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	tech, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.List(ctx, bookingRepo.BookingFilter{TechnicianID: tech.ID})
	if err != nil {
		return nil, utils.NewDependencyError("failed to load bookings", err)
	}
	return bookings, nil
}
