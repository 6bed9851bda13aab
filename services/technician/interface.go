package technician

import (
	"context"
	"io"
	"time"

	bookingRepo "homefix/database/repository/booking"
	technicianRepo "homefix/database/repository/technician"
	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/services/storage"
)

// RecentBookingsLimit caps the completed bookings returned with a profile.
const RecentBookingsLimit = 5

type TechnicianService interface {
	Create(ctx context.Context, in TechnicianInput) (*models.Technician, error)
	List(ctx context.Context, filter technicianRepo.TechnicianFilter) ([]models.Technician, error)
	GetByID(ctx context.Context, id string) (*Detail, error)
	GetByUserID(ctx context.Context, userID string) (*models.Technician, error)

	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.Technician, error)
	SetAvailability(ctx context.Context, userID string, available bool) (*models.Technician, error)
	UploadDocument(ctx context.Context, userID, fileName string, r io.Reader) (*models.Technician, error)

	Stats(ctx context.Context, userID string) (*models.TechnicianStats, error)
	MyBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

type DefaultTechnicianService struct {
	Technicians technicianRepo.TechnicianRepository
	Users       userRepo.UserRepository
	Bookings    bookingRepo.BookingRepository
	Storage     storage.StorageService
	now         func() time.Time
}

func NewTechnicianService(
	technicians technicianRepo.TechnicianRepository,
	users userRepo.UserRepository,
	bookings bookingRepo.BookingRepository,
	store storage.StorageService,
) *DefaultTechnicianService {
	if store == nil {
		store = storage.Disabled{}
	}
	return &DefaultTechnicianService{
		Technicians: technicians,
		Users:       users,
		Bookings:    bookings,
		Storage:     store,
		now:         time.Now,
	}
}

type TechnicianInput struct {
	UserID          string                  `json:"userId"`
	Specializations []models.Specialization `json:"specializations"`
	Experience      int                     `json:"experience"`
	Location        string                  `json:"location"`
}

type ProfileInput struct {
	Specializations *[]models.Specialization `json:"specializations"`
	Experience      *int                     `json:"experience"`
	Location        *string                  `json:"location"`
}

// Detail is a profile with its most recent completed work.
type Detail struct {
	models.Technician
	RecentBookings []models.Booking `json:"recentBookings"`
}
