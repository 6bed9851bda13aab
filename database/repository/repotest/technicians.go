package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	technicianRepo "homefix/database/repository/technician"
	"homefix/models"
)

type Technicians struct {
	mu   sync.Mutex
	byID map[string]models.Technician
}

func NewTechnicians(ts ...models.Technician) *Technicians {
	r := &Technicians{byID: map[string]models.Technician{}}
	for _, t := range ts {
		r.byID[t.ID] = t
	}
	return r
}

func (r *Technicians) Create(_ context.Context, t *models.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.UserID == t.UserID {
			return technicianRepo.ErrDuplicateProfile
		}
	}
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	r.byID[t.ID] = *t
	return nil
}

func (r *Technicians) GetByID(_ context.Context, id string) (*models.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, technicianRepo.ErrNotFound
	}
	return &t, nil
}

func (r *Technicians) GetByUserID(_ context.Context, userID string) (*models.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.byID {
		if t.UserID == userID {
			return &t, nil
		}
	}
	return nil, technicianRepo.ErrNotFound
}

func (r *Technicians) List(_ context.Context, f technicianRepo.TechnicianFilter) ([]models.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Technician{}
	for _, t := range r.byID {
		if f.OnlyAvailable && !t.Availability {
			continue
		}
		if f.Specialization != "" {
			found := false
			for _, s := range t.Specializations {
				if s == f.Specialization {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

func (r *Technicians) mutate(id string, fn func(t *models.Technician)) (*models.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, technicianRepo.ErrNotFound
	}
	fn(&t)
	t.UpdatedAt = time.Now()
	r.byID[id] = t
	return &t, nil
}

func (r *Technicians) Update(_ context.Context, id string, upd technicianRepo.TechnicianUpdate) (*models.Technician, error) {
	return r.mutate(id, func(t *models.Technician) {
		if upd.Specializations != nil {
			t.Specializations = *upd.Specializations
		}
		if upd.Experience != nil {
			t.Experience = *upd.Experience
		}
		if upd.Location != nil {
			t.Location = *upd.Location
		}
	})
}

func (r *Technicians) SetAvailability(_ context.Context, id string, available bool) (*models.Technician, error) {
	return r.mutate(id, func(t *models.Technician) { t.Availability = available })
}

func (r *Technicians) AddDocument(_ context.Context, id, url string) (*models.Technician, error) {
	return r.mutate(id, func(t *models.Technician) { t.Documents = append(t.Documents, url) })
}

func (r *Technicians) SetRating(_ context.Context, id string, rating float64) error {
	_, err := r.mutate(id, func(t *models.Technician) { t.Rating = rating })
	return err
}

func (r *Technicians) RecordAssignment(_ context.Context, id, bookingID string) error {
	_, err := r.mutate(id, func(t *models.Technician) {
		t.TotalJobs++
		t.CurrentJob = bookingID
	})
	return err
}

func (r *Technicians) RecordCompletion(_ context.Context, id, bookingID string) error {
	_, err := r.mutate(id, func(t *models.Technician) {
		t.CompletedJobs++
		if t.CurrentJob == bookingID {
			t.CurrentJob = ""
		}
	})
	return err
}

func (r *Technicians) ReleaseJob(_ context.Context, id, bookingID string) error {
	_, err := r.mutate(id, func(t *models.Technician) {
		if t.CurrentJob == bookingID {
			t.CurrentJob = ""
		}
	})
	return err
}
