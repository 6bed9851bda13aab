package technician

import (
	"context"
	"errors"
	"io"

	bookingRepo "homefix/database/repository/booking"
	technicianRepo "homefix/database/repository/technician"
	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/services/storage"
	"homefix/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create opens a technician profile for an existing technician account.
func (s *DefaultTechnicianService) Create(ctx context.Context, in TechnicianInput) (*models.Technician, error) {
	if in.UserID == "" {
		return nil, utils.NewValidationError("userId is required")
	}
	if err := validateSpecializations(in.Specializations); err != nil {
		return nil, err
	}
	if err := validateExperience(in.Experience); err != nil {
		return nil, err
	}

	user, err := s.Users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("user not found")
		}
		return nil, utils.NewDependencyError("failed to load user", err)
	}
	if user.Role != models.RoleTechnician {
		return nil, utils.NewValidationError("user must have the technician role")
	}

	tech := &models.Technician{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		Specializations: in.Specializations,
		Experience:      in.Experience,
		Location:        cleanLocation(in.Location),
		Availability:    true,
		Documents:       []string{},
	}
	if err := s.Technicians.Create(ctx, tech); err != nil {
		return nil, translate(err, "create technician")
	}
	utils.GetLogger().Info("Technician profile created",
		zap.String("technicianId", tech.ID), zap.String("userId", user.ID))
	return tech, nil
}

func (s *DefaultTechnicianService) List(ctx context.Context, filter technicianRepo.TechnicianFilter) ([]models.Technician, error) {
	if filter.Specialization != "" && !filter.Specialization.Valid() {
		return nil, utils.NewValidationError("invalid specialization %q", filter.Specialization)
	}
	techs, err := s.Technicians.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list technicians")
	}
	return techs, nil
}

func (s *DefaultTechnicianService) GetByID(ctx context.Context, id string) (*Detail, error) {
	tech, err := s.Technicians.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "load technician")
	}
	recent, err := s.Bookings.List(ctx, bookingRepo.BookingFilter{
		TechnicianID: tech.ID,
		Statuses:     []models.BookingStatus{models.StatusCompleted},
		Limit:        RecentBookingsLimit,
	})
	if err != nil {
		return nil, utils.NewDependencyError("failed to load recent bookings", err)
	}
	return &Detail{Technician: *tech, RecentBookings: recent}, nil
}

func (s *DefaultTechnicianService) GetByUserID(ctx context.Context, userID string) (*models.Technician, error) {
	tech, err := s.Technicians.GetByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "load technician")
	}
	return tech, nil
}

func (s *DefaultTechnicianService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.Technician, error) {
	if in.Specializations != nil {
		if err := validateSpecializations(*in.Specializations); err != nil {
			return nil, err
		}
	}
	if in.Experience != nil {
		if err := validateExperience(*in.Experience); err != nil {
			return nil, err
		}
	}
	upd := technicianRepo.TechnicianUpdate{
		Specializations: in.Specializations,
		Experience:      in.Experience,
	}
	if in.Location != nil {
		loc := cleanLocation(*in.Location)
		upd.Location = &loc
	}

	tech, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated, err := s.Technicians.Update(ctx, tech.ID, upd)
	if err != nil {
		return nil, translate(err, "update technician")
	}
	return updated, nil
}

func (s *DefaultTechnicianService) SetAvailability(ctx context.Context, userID string, available bool) (*models.Technician, error) {
	tech, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated, err := s.Technicians.SetAvailability(ctx, tech.ID, available)
	if err != nil {
		return nil, translate(err, "update availability")
	}
	return updated, nil
}

// UploadDocument stores a verification document and appends its URL to the profile.
func (s *DefaultTechnicianService) UploadDocument(ctx context.Context, userID, fileName string, r io.Reader) (*models.Technician, error) {
	tech, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := s.Storage.Upload(ctx, storage.FolderTechnicianDocuments, tech.ID+"-"+fileName, r)
	if err != nil {
		return nil, err
	}
	updated, err := s.Technicians.AddDocument(ctx, tech.ID, url)
	if err != nil {
		return nil, translate(err, "attach document")
	}
	return updated, nil
}
