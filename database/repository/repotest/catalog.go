package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	catalogRepo "homefix/database/repository/catalog"
	"homefix/models"
)

type Catalog struct {
	mu       sync.Mutex
	services map[string]models.Service
	plans    map[string]models.Plan
}

func NewCatalog() *Catalog {
	return &Catalog{services: map[string]models.Service{}, plans: map[string]models.Plan{}}
}

func (r *Catalog) WithServices(svcs ...models.Service) *Catalog {
	for _, s := range svcs {
		r.services[s.ID] = s
	}
	return r
}

func (r *Catalog) WithPlans(plans ...models.Plan) *Catalog {
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *Catalog) CreateService(_ context.Context, svc *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	svc.CreatedAt, svc.UpdatedAt = now, now
	r.services[svc.ID] = *svc
	return nil
}

func (r *Catalog) GetService(_ context.Context, id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &s, nil
}

func (r *Catalog) ListServices(_ context.Context, f catalogRepo.ServiceFilter) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Service{}
	for _, s := range r.services {
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.OnlyAvailable && !s.IsAvailable {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Catalog) UpdateService(_ context.Context, id string, upd catalogRepo.ServiceUpdate) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Category != nil {
		s.Category = *upd.Category
	}
	if upd.Price != nil {
		s.Price = *upd.Price
	}
	if upd.EstimatedTime != nil {
		s.EstimatedTime = *upd.EstimatedTime
	}
	if upd.Image != nil {
		s.Image = *upd.Image
	}
	if upd.IsAvailable != nil {
		s.IsAvailable = *upd.IsAvailable
	}
	s.UpdatedAt = time.Now()
	r.services[id] = s
	return &s, nil
}

func (r *Catalog) DeleteService(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[id]; !ok {
		return catalogRepo.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *Catalog) CreatePlan(_ context.Context, p *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.plans[p.ID] = *p
	return nil
}

func (r *Catalog) GetPlan(_ context.Context, id string) (*models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &p, nil
}

func (r *Catalog) ListPlans(_ context.Context) ([]models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Plan{}
	for _, p := range r.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (r *Catalog) UpdatePlan(_ context.Context, id string, upd catalogRepo.PlanUpdate) (*models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Duration != nil {
		p.Duration = *upd.Duration
	}
	if upd.Services != nil {
		p.Services = *upd.Services
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	p.UpdatedAt = time.Now()
	r.plans[id] = p
	return &p, nil
}

func (r *Catalog) DeletePlan(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return catalogRepo.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}
