// Package repotest provides in-memory repositories for service and handler tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	userRepo "homefix/database/repository/user"
	"homefix/models"
)

type Users struct {
	mu   sync.Mutex
	byID map[string]models.User
	// Err, when set, is returned by every call.
	Err error
}

func NewUsers(users ...models.User) *Users {
	r := &Users{byID: map[string]models.User{}}
	for _, u := range users {
		if u.SubscribedPlans == nil {
			u.SubscribedPlans = []string{}
		}
		r.byID[u.ID] = u
	}
	return r
}

func (r *Users) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return userRepo.ErrDuplicateEmail
		}
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.byID[u.ID] = cloneUser(*u)
	return nil
}

func (r *Users) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	c := cloneUser(u)
	return &c, nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.byID {
		if u.Email == email {
			c := cloneUser(u)
			return &c, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *Users) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.User{}
	for _, u := range r.byID {
		c := cloneUser(u)
		c.PasswordHash = ""
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Users) GetIDs(ctx context.Context) ([]string, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func (r *Users) mutate(id string, fn func(u *models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	u, ok := r.byID[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	fn(&u)
	u.UpdatedAt = time.Now()
	r.byID[id] = u
	return nil
}

func (r *Users) UpdateProfile(_ context.Context, id string, upd userRepo.ProfileUpdate) error {
	return r.mutate(id, func(u *models.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Address != nil {
			u.Address = *upd.Address
		}
		if upd.FCMToken != nil {
			u.FCMToken = *upd.FCMToken
		}
	})
}

func (r *Users) UpdateRole(_ context.Context, id string, role models.Role) error {
	return r.mutate(id, func(u *models.User) { u.Role = role })
}

func (r *Users) AddPlan(_ context.Context, id, planID string) (bool, error) {
	added := false
	err := r.mutate(id, func(u *models.User) {
		if !u.HasPlan(planID) {
			u.SubscribedPlans = append(u.SubscribedPlans, planID)
			added = true
		}
	})
	return added, err
}

func (r *Users) RemovePlan(_ context.Context, id, planID string) (bool, error) {
	removed := false
	err := r.mutate(id, func(u *models.User) {
		kept := []string{}
		for _, p := range u.SubscribedPlans {
			if p == planID {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		u.SubscribedPlans = kept
	})
	return removed, err
}

func (r *Users) SetSubscription(_ context.Context, id string, sub models.Subscription) error {
	return r.mutate(id, func(u *models.User) { u.Subscription = &sub })
}

func (r *Users) TransitionSubscription(_ context.Context, id, planID string, endDate time.Time, to models.SubscriptionStatus) (bool, error) {
	changed := false
	err := r.mutate(id, func(u *models.User) {
		s := u.Subscription
		if s == nil || s.PlanID != planID || s.Status != models.SubscriptionActive {
			return
		}
		if !endDate.IsZero() && !s.EndDate.Equal(endDate) {
			return
		}
		s.Status = to
		changed = true
	})
	if err == userRepo.ErrNotFound {
		return false, nil
	}
	return changed, err
}

func cloneUser(u models.User) models.User {
	u.SubscribedPlans = append([]string{}, u.SubscribedPlans...)
	if u.Subscription != nil {
		s := *u.Subscription
		u.Subscription = &s
	}
	return u
}
