package repotest

import (
	"context"
	"sync"
	"time"

	paymentRepo "homefix/database/repository/payment"
	"homefix/models"
)

type Payments struct {
	mu   sync.Mutex
	rows []models.Payment
}

func NewPayments(ps ...models.Payment) *Payments {
	return &Payments{rows: append([]models.Payment{}, ps...)}
}

func (r *Payments) Create(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.TransactionID == p.TransactionID {
			return paymentRepo.ErrDuplicateTransaction
		}
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.rows = append(r.rows, *p)
	return nil
}

func (r *Payments) find(pred func(p models.Payment) bool) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if pred(p) {
			return &p, nil
		}
	}
	return nil, paymentRepo.ErrNotFound
}

func (r *Payments) GetByID(_ context.Context, id string) (*models.Payment, error) {
	return r.find(func(p models.Payment) bool { return p.ID == id })
}

func (r *Payments) GetByOrderID(_ context.Context, orderID string) (*models.Payment, error) {
	return r.find(func(p models.Payment) bool { return p.OrderID != "" && p.OrderID == orderID })
}

// List returns newest first (reverse insertion order).
func (r *Payments) List(_ context.Context, userID string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Payment{}
	for i := len(r.rows) - 1; i >= 0; i-- {
		if userID == "" || r.rows[i].UserID == userID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func (r *Payments) MarkVerified(_ context.Context, orderID, gatewayPaymentID, signature string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].OrderID == orderID {
			r.rows[i].Status = models.PaymentSuccess
			r.rows[i].GatewayPaymentID = gatewayPaymentID
			r.rows[i].Signature = signature
			r.rows[i].UpdatedAt = time.Now()
			p := r.rows[i]
			return &p, nil
		}
	}
	return nil, paymentRepo.ErrNotFound
}
