package catalogRepo

import (
	"context"
	"errors"

	"homefix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no service or plan matches the lookup.
var ErrNotFound = errors.New("catalog entry not found")

// ServiceFilter narrows ListServices. Zero value lists everything.
type ServiceFilter struct {
	Category      models.ServiceCategory
	OnlyAvailable bool
}

// ServiceUpdate carries optional service field changes.
type ServiceUpdate struct {
	Name          *string
	Description   *string
	Category      *models.ServiceCategory
	Price         *float64
	EstimatedTime *string
	Image         *string
	IsAvailable   *bool
}

// PlanUpdate carries optional plan field changes.
type PlanUpdate struct {
	Name        *string
	Price       *float64
	Duration    *models.PlanDuration
	Services    *[]string
	Description *string
}

type CatalogRepository interface {
	CreateService(ctx context.Context, svc *models.Service) error
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context, filter ServiceFilter) ([]models.Service, error)
	UpdateService(ctx context.Context, id string, upd ServiceUpdate) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error

	CreatePlan(ctx context.Context, plan *models.Plan) error
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	UpdatePlan(ctx context.Context, id string, upd PlanUpdate) (*models.Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	services *mongo.Collection
	plans    *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by the services and plans collections.
func NewMongoCatalogRepo(db *mongo.Database) (CatalogRepository, error) {
	repo := &mongoCatalogRepo{
		services: db.Collection("services"),
		plans:    db.Collection("plans"),
	}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}
