package catalog

import (
	"context"
	"strings"

	catalogRepo "homefix/database/repository/catalog"
	"homefix/models"
	"homefix/utils"

	"github.com/google/uuid"
)

func (s *DefaultCatalogService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.Repo.ListPlans(ctx)
	if err != nil {
		return nil, translate(err, "plans")
	}
	return plans, nil
}

func (s *DefaultCatalogService) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	plan, err := s.Repo.GetPlan(ctx, id)
	if err != nil {
		return nil, translate(err, "plan")
	}
	return plan, nil
}

func (s *DefaultCatalogService) CreatePlan(ctx context.Context, in PlanInput) (*models.Plan, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, utils.NewValidationError("plan name is required")
	}
	if in.Price <= 0 {
		return nil, utils.NewValidationError("plan price must be positive")
	}
	if !in.Duration.Valid() {
		return nil, utils.NewValidationError("plan duration must be monthly, quarterly or yearly")
	}
	if in.Services == nil {
		in.Services = []string{}
	}

	plan := &models.Plan{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Duration:    in.Duration,
		Services:    in.Services,
		Description: in.Description,
	}
	if err := s.Repo.CreatePlan(ctx, plan); err != nil {
		return nil, translate(err, "plan")
	}
	return plan, nil
}

func (s *DefaultCatalogService) UpdatePlan(ctx context.Context, id string, in PlanPatch) (*models.Plan, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, utils.NewValidationError("plan name is required")
	}
	if in.Price != nil && *in.Price <= 0 {
		return nil, utils.NewValidationError("plan price must be positive")
	}
	if in.Duration != nil && !in.Duration.Valid() {
		return nil, utils.NewValidationError("plan duration must be monthly, quarterly or yearly")
	}

	plan, err := s.Repo.UpdatePlan(ctx, id, catalogRepo.PlanUpdate{
		Name:        in.Name,
		Price:       in.Price,
		Duration:    in.Duration,
		Services:    in.Services,
		Description: in.Description,
	})
	if err != nil {
		return nil, translate(err, "plan")
	}
	return plan, nil
}

func (s *DefaultCatalogService) DeletePlan(ctx context.Context, id string) error {
	if err := s.Repo.DeletePlan(ctx, id); err != nil {
		return translate(err, "plan")
	}
	return nil
}
