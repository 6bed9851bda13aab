package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	bookingRepo "homefix/database/repository/booking"
	"homefix/models"
)

type Bookings struct {
	mu   sync.Mutex
	rows []models.Booking
}

func NewBookings(bs ...models.Booking) *Bookings {
	return &Bookings{rows: append([]models.Booking{}, bs...)}
}

func (r *Bookings) index(id string) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Bookings) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	r.rows = append(r.rows, *b)
	return nil
}

func (r *Bookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return nil, bookingRepo.ErrNotFound
	}
	b := r.rows[i]
	return &b, nil
}

func matches(b models.Booking, f bookingRepo.BookingFilter) bool {
	if f.UserID != "" && b.UserID != f.UserID {
		return false
	}
	if f.TechnicianID != "" && b.TechnicianID != f.TechnicianID {
		return false
	}
	if len(f.Statuses) > 0 {
		ok := false
		for _, s := range f.Statuses {
			if b.Status == s {
				ok = true
			}
		}
		if !ok {
			return false
		}
	}
	if !f.CreatedFrom.IsZero() && b.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedTo.IsZero() && !b.CreatedAt.Before(f.CreatedTo) {
		return false
	}
	return true
}

// List returns matches newest first; later inserts win ties.
func (r *Bookings) List(_ context.Context, f bookingRepo.BookingFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	type row struct {
		b   models.Booking
		seq int
	}
	var hits []row
	for i, b := range r.rows {
		if matches(b, f) {
			hits = append(hits, row{b, i})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if !hits[i].b.CreatedAt.Equal(hits[j].b.CreatedAt) {
			return hits[i].b.CreatedAt.After(hits[j].b.CreatedAt)
		}
		return hits[i].seq > hits[j].seq
	})
	out := []models.Booking{}
	for _, h := range hits {
		if f.Limit > 0 && int64(len(out)) >= f.Limit {
			break
		}
		out = append(out, h.b)
	}
	return out, nil
}

func (r *Bookings) Count(ctx context.Context, f bookingRepo.BookingFilter) (int64, error) {
	f.Limit = 0
	rows, err := r.List(ctx, f)
	return int64(len(rows)), err
}

func (r *Bookings) conditional(id string, cond func(b models.Booking) bool, apply func(b *models.Booking)) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return nil, bookingRepo.ErrNotFound
	}
	if !cond(r.rows[i]) {
		return nil, bookingRepo.ErrStale
	}
	apply(&r.rows[i])
	r.rows[i].UpdatedAt = time.Now()
	b := r.rows[i]
	return &b, nil
}

func (r *Bookings) UpdateStatus(_ context.Context, id string, from, to models.BookingStatus) (*models.Booking, error) {
	return r.conditional(id,
		func(b models.Booking) bool { return b.Status == from },
		func(b *models.Booking) { b.Status = to })
}

func (r *Bookings) AssignTechnician(_ context.Context, id, technicianID string, open []models.BookingStatus) (*models.Booking, error) {
	return r.conditional(id,
		func(b models.Booking) bool {
			for _, s := range open {
				if b.Status == s {
					return true
				}
			}
			return false
		},
		func(b *models.Booking) { b.TechnicianID = technicianID })
}

func (r *Bookings) MarkPaid(_ context.Context, id string, method models.BookingPaymentMethod) error {
	_, err := r.conditional(id,
		func(b models.Booking) bool { return b.PaymentStatus != models.BookingPaymentPaid },
		func(b *models.Booking) {
			b.PaymentStatus = models.BookingPaymentPaid
			b.PaymentMethod = method
		})
	return err
}

func (r *Bookings) SetReview(_ context.Context, id string, review models.Review) (*models.Booking, error) {
	return r.conditional(id,
		func(b models.Booking) bool { return b.Status == models.StatusCompleted && b.Review == nil },
		func(b *models.Booking) { b.Review = &review })
}

func (r *Bookings) EarningsForTechnician(_ context.Context, technicianID string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, b := range r.rows {
		if b.TechnicianID == technicianID && b.Status == models.StatusCompleted && b.PaymentStatus == models.BookingPaymentPaid {
			total += b.FinalPrice
		}
	}
	return total, nil
}

func (r *Bookings) AverageRatingForTechnician(_ context.Context, technicianID string) (float64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, n int64
	for _, b := range r.rows {
		if b.TechnicianID == technicianID && b.Review != nil {
			sum += int64(b.Review.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}
