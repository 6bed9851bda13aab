package repotest

import (
	"context"
	"sync"
	"time"

	notificationRepo "homefix/database/repository/notification"
	"homefix/models"
)

type Notifications struct {
	mu   sync.Mutex
	rows []models.Notification
	// Err, when set, is returned by Create and CreateMany.
	Err error
}

func NewNotifications() *Notifications { return &Notifications{} }

func (r *Notifications) Create(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *n)
	return nil
}

func (r *Notifications) CreateMany(ctx context.Context, ns []models.Notification) error {
	for i := range ns {
		if err := r.Create(ctx, &ns[i]); err != nil {
			return err
		}
	}
	return nil
}

// All returns every stored notification in insertion order.
func (r *Notifications) All() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification{}, r.rows...)
}

func (r *Notifications) GetByID(_ context.Context, id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.rows {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, notificationRepo.ErrNotFound
}

// ListByUser returns newest first; later inserts win ties.
func (r *Notifications) ListByUser(_ context.Context, userID string, limit int64) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Notification{}
	for i := len(r.rows) - 1; i >= 0; i-- {
		if int64(len(out)) >= limit {
			break
		}
		if r.rows[i].UserID == userID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func (r *Notifications) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].IsRead = true
			return nil
		}
	}
	return notificationRepo.ErrNotFound
}

func (r *Notifications) MarkAllRead(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.rows {
		if r.rows[i].UserID == userID && !r.rows[i].IsRead {
			r.rows[i].IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *Notifications) CountUnread(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.UserID == userID && !row.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *Notifications) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return notificationRepo.ErrNotFound
}
