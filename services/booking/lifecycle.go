package booking

import (
	"context"
	"fmt"

	"homefix/models"
	"homefix/services/notification"
	"homefix/utils"

	"go.uber.org/zap"
)

// AssignTechnician attaches a technician to an open booking and counts the job.
func (s *DefaultBookingService) AssignTechnician(ctx context.Context, bookingID, technicianID string) (*models.Booking, error) {
	if technicianID == "" {
		return nil, utils.NewValidationError("technicianId is required")
	}
	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, translate(err)
	}
	tech, err := s.Technicians.GetByID(ctx, technicianID)
	if err != nil {
		return nil, translate(err)
	}
	if IsTerminal(current.Status) {
		return nil, utils.NewConflictError("cannot assign a technician to a %s booking", current.Status)
	}
	if current.TechnicianID == tech.ID {
		return current, nil
	}

	updated, err := s.Bookings.AssignTechnician(ctx, bookingID, tech.ID, openStatuses())
	if err != nil {
		return nil, translate(err)
	}

	log := utils.GetLogger()
	if current.TechnicianID != "" {
		if err := s.Technicians.ReleaseJob(ctx, current.TechnicianID, bookingID); err != nil {
			log.Warn("failed to release previous technician", zap.String("bookingId", bookingID), zap.Error(err))
		}
	}
	if err := s.Technicians.RecordAssignment(ctx, tech.ID, bookingID); err != nil {
		log.Warn("failed to record technician assignment", zap.String("technicianId", tech.ID), zap.Error(err))
	}

	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  updated.UserID,
		Title:   "Technician Assigned",
		Message: "A technician has been assigned to your booking.",
		Type:    models.NotifBooking,
		Target:  models.BookingTarget(bookingID),
	})
	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:   tech.UserID,
		Title:    "New Assignment",
		Message:  "You have been assigned to a new booking.",
		Type:     models.NotifBooking,
		Target:   models.BookingTarget(bookingID),
		Priority: models.NotifPriorityHigh,
	})
	return updated, nil
}

// UpdateStatus moves a booking along the lifecycle. Technicians may only move
// bookings assigned to them.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, caller models.Identity) (*models.Booking, error) {
	if !status.Valid() {
		return nil, utils.NewValidationError("unknown booking status %q", status)
	}
	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, translate(err)
	}
	if caller.Role == models.RoleTechnician {
		if err := s.requireAssigned(ctx, current, caller.UserID); err != nil {
			return nil, err
		}
	}

	updated, err := s.transition(ctx, current, status)
	if err != nil {
		return nil, err
	}
	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  updated.UserID,
		Title:   "Booking Status Updated",
		Message: fmt.Sprintf("Your booking status has been updated to %s.", status),
		Type:    models.NotifBooking,
		Target:  models.BookingTarget(bookingID),
	})
	return updated, nil
}

// Cancel cancels a booking on behalf of its owner or an admin.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID string, caller models.Identity) (*models.Booking, error) {
	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, translate(err)
	}
	if current.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, utils.NewForbiddenError("not authorized to cancel this booking")
	}

	updated, err := s.transition(ctx, current, models.StatusCancelled)
	if err != nil {
		return nil, err
	}
	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  updated.UserID,
		Title:   "Booking Cancelled",
		Message: "Your booking has been cancelled.",
		Type:    models.NotifBooking,
		Target:  models.BookingTarget(bookingID),
	})
	return updated, nil
}

// transition applies the FSM check, the conditional write and the technician counters.
func (s *DefaultBookingService) transition(ctx context.Context, current *models.Booking, to models.BookingStatus) (*models.Booking, error) {
	if !CanTransition(current.Status, to) {
		return nil, utils.NewConflictError("cannot move booking from %s to %s", current.Status, to)
	}
	updated, err := s.Bookings.UpdateStatus(ctx, current.ID, current.Status, to)
	if err != nil {
		return nil, translate(err)
	}

	if updated.TechnicianID == "" {
		return updated, nil
	}
	switch to {
	case models.StatusCompleted:
		err = s.Technicians.RecordCompletion(ctx, updated.TechnicianID, updated.ID)
	case models.StatusCancelled:
		err = s.Technicians.ReleaseJob(ctx, updated.TechnicianID, updated.ID)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to update technician job counters",
			zap.String("bookingId", updated.ID),
			zap.String("technicianId", updated.TechnicianID),
			zap.Error(err))
	}
	return updated, nil
}

func (s *DefaultBookingService) requireAssigned(ctx context.Context, b *models.Booking, userID string) error {
	tech, err := s.Technicians.GetByUserID(ctx, userID)
	if err != nil {
		return translate(err)
	}
	if b.TechnicianID != tech.ID {
		return utils.NewForbiddenError("booking is not assigned to you")
	}
	return nil
}
