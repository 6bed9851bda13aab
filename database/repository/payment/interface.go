package paymentRepo

import (
	"context"
	"errors"

	"homefix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrDuplicateTransaction is returned when the unique transactionId index rejects an insert.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	// List returns payments newest first; an empty userID lists all.
	List(ctx context.Context, userID string) ([]models.Payment, error)
	// MarkVerified flips the payment with orderID to success and stores the gateway references.
	MarkVerified(ctx context.Context, orderID, gatewayPaymentID, signature string) (*models.Payment, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo(db *mongo.Database) (PaymentRepository, error) {
	repo := &mongoPaymentRepo{coll: db.Collection("payments")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}
