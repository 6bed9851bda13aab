package catalog

import (
	"context"
	"io"

	catalogRepo "homefix/database/repository/catalog"
	"homefix/models"
	"homefix/services/storage"
)

type CatalogService interface {
	ListServices(ctx context.Context, filter catalogRepo.ServiceFilter) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, in ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, id string, in ServicePatch) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
	SetServiceImage(ctx context.Context, id, fileName string, file io.Reader) (*models.Service, error)

	ListPlans(ctx context.Context) ([]models.Plan, error)
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	CreatePlan(ctx context.Context, in PlanInput) (*models.Plan, error)
	UpdatePlan(ctx context.Context, id string, in PlanPatch) (*models.Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo    catalogRepo.CatalogRepository
	Storage storage.StorageService
}

func NewCatalogService(repo catalogRepo.CatalogRepository, store storage.StorageService) *DefaultCatalogService {
	if store == nil {
		store = storage.Disabled{}
	}
	return &DefaultCatalogService{Repo: repo, Storage: store}
}

type ServiceInput struct {
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Category      models.ServiceCategory `json:"category"`
	Price         float64                `json:"price"`
	EstimatedTime string                 `json:"estimatedTime"`
	Image         string                 `json:"image"`
	IsAvailable   *bool                  `json:"isAvailable"`
}

type ServicePatch struct {
	Name          *string                 `json:"name"`
	Description   *string                 `json:"description"`
	Category      *models.ServiceCategory `json:"category"`
	Price         *float64                `json:"price"`
	EstimatedTime *string                 `json:"estimatedTime"`
	Image         *string                 `json:"image"`
	IsAvailable   *bool                   `json:"isAvailable"`
}

type PlanInput struct {
	Name        string              `json:"name"`
	Price       float64             `json:"price"`
	Duration    models.PlanDuration `json:"duration"`
	Services    []string            `json:"services"`
	Description string              `json:"description"`
}

type PlanPatch struct {
	Name        *string              `json:"name"`
	Price       *float64             `json:"price"`
	Duration    *models.PlanDuration `json:"duration"`
	Services    *[]string            `json:"services"`
	Description *string              `json:"description"`
}
