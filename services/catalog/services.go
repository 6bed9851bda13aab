package catalog

import (
	"context"
	"io"
	"strings"

	catalogRepo "homefix/database/repository/catalog"
	"homefix/models"
	"homefix/services/storage"
	"homefix/utils"

	"github.com/google/uuid"
)

func validateService(name string, category models.ServiceCategory, price float64) error {
	if strings.TrimSpace(name) == "" {
		return utils.NewValidationError("service name is required")
	}
	if !category.Valid() {
		return utils.NewValidationError("unknown service category %q", category)
	}
	if price <= 0 {
		return utils.NewValidationError("service price must be positive")
	}
	return nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, filter catalogRepo.ServiceFilter) ([]models.Service, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, utils.NewValidationError("unknown service category %q", filter.Category)
	}
	services, err := s.Repo.ListServices(ctx, filter)
	if err != nil {
		return nil, translate(err, "services")
	}
	return services, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetService(ctx, id)
	if err != nil {
		return nil, translate(err, "service")
	}
	return svc, nil
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, in ServiceInput) (*models.Service, error) {
	if err := validateService(in.Name, in.Category, in.Price); err != nil {
		return nil, err
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	svc := &models.Service{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Category:      in.Category,
		Price:         in.Price,
		EstimatedTime: in.EstimatedTime,
		Image:         in.Image,
		IsAvailable:   available,
	}
	if err := s.Repo.CreateService(ctx, svc); err != nil {
		return nil, translate(err, "service")
	}
	return svc, nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, id string, in ServicePatch) (*models.Service, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, utils.NewValidationError("service name is required")
	}
	if in.Category != nil && !in.Category.Valid() {
		return nil, utils.NewValidationError("unknown service category %q", *in.Category)
	}
	if in.Price != nil && *in.Price <= 0 {
		return nil, utils.NewValidationError("service price must be positive")
	}

	svc, err := s.Repo.UpdateService(ctx, id, catalogRepo.ServiceUpdate{
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Price:         in.Price,
		EstimatedTime: in.EstimatedTime,
		Image:         in.Image,
		IsAvailable:   in.IsAvailable,
	})
	if err != nil {
		return nil, translate(err, "service")
	}
	return svc, nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.Repo.DeleteService(ctx, id); err != nil {
		return translate(err, "service")
	}
	return nil
}

// SetServiceImage uploads file and points the service image at it.
func (s *DefaultCatalogService) SetServiceImage(ctx context.Context, id, fileName string, file io.Reader) (*models.Service, error) {
	if _, err := s.GetService(ctx, id); err != nil {
		return nil, err
	}
	url, err := s.Storage.Upload(ctx, storage.FolderServiceImages, id+"-"+fileName, file)
	if err != nil {
		if utils.KindOf(err) != utils.KindInternal {
			return nil, err
		}
		return nil, utils.NewDependencyError("image upload failed", err)
	}
	return s.UpdateService(ctx, id, ServicePatch{Image: &url})
}
