package booking

import (
	"context"
	"math"
	"strings"

	"homefix/models"
	"homefix/utils"

	"go.uber.org/zap"
)

// AddReview records the owner's review of a completed booking and refreshes the
// technician's average rating.
func (s *DefaultBookingService) AddReview(ctx context.Context, bookingID string, caller models.Identity, in ReviewInput) (*models.Booking, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.NewValidationError("rating must be between 1 and 5")
	}
	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, translate(err)
	}
	if current.UserID != caller.UserID {
		return nil, utils.NewForbiddenError("only the customer can review this booking")
	}
	if current.Status != models.StatusCompleted {
		return nil, utils.NewConflictError("only completed bookings can be reviewed")
	}
	if current.Review != nil {
		return nil, utils.NewConflictError("booking has already been reviewed")
	}

	updated, err := s.Bookings.SetReview(ctx, bookingID, models.Review{
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
		Date:    s.now(),
	})
	if err != nil {
		return nil, translate(err)
	}

	if updated.TechnicianID != "" {
		s.refreshRating(ctx, updated.TechnicianID)
	}
	return updated, nil
}

func (s *DefaultBookingService) refreshRating(ctx context.Context, technicianID string) {
	log := utils.GetLogger()
	avg, n, err := s.Bookings.AverageRatingForTechnician(ctx, technicianID)
	if err != nil {
		log.Warn("failed to aggregate technician rating", zap.String("technicianId", technicianID), zap.Error(err))
		return
	}
	if n == 0 {
		return
	}
	if err := s.Technicians.SetRating(ctx, technicianID, math.Round(avg*10)/10); err != nil {
		log.Warn("failed to store technician rating", zap.String("technicianId", technicianID), zap.Error(err))
	}
}
