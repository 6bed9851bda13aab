package technicianRepo

import (
	"context"
	"errors"

	"homefix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("technician not found")
	// ErrDuplicateProfile is returned when the user already has a technician profile.
	ErrDuplicateProfile = errors.New("technician profile already exists")
)

type TechnicianFilter struct {
	Specialization models.Specialization
	OnlyAvailable  bool
}

type TechnicianUpdate struct {
	Specializations *[]models.Specialization
	Experience      *int
	Location        *string
}

type TechnicianRepository interface {
	Create(ctx context.Context, tech *models.Technician) error
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	GetByUserID(ctx context.Context, userID string) (*models.Technician, error)
	List(ctx context.Context, filter TechnicianFilter) ([]models.Technician, error)
	Update(ctx context.Context, id string, upd TechnicianUpdate) (*models.Technician, error)
	SetAvailability(ctx context.Context, id string, available bool) (*models.Technician, error)
	AddDocument(ctx context.Context, id, url string) (*models.Technician, error)
	SetRating(ctx context.Context, id string, rating float64) error

	// RecordAssignment increments totalJobs and sets currentJob.
	RecordAssignment(ctx context.Context, id, bookingID string) error
	// RecordCompletion increments completedJobs and clears currentJob if it is bookingID.
	RecordCompletion(ctx context.Context, id, bookingID string) error
	// ReleaseJob clears currentJob if it is bookingID.
	ReleaseJob(ctx context.Context, id, bookingID string) error
}

type mongoTechnicianRepo struct {
	coll *mongo.Collection
}

func NewMongoTechnicianRepo(db *mongo.Database) (TechnicianRepository, error) {
	repo := &mongoTechnicianRepo{coll: db.Collection("technicians")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}
