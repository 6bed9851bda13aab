package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homefix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Metadata == nil {
		p.Metadata = map[string]string{}
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *mongoPaymentRepo) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return &p, nil
}

func (r *mongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"orderId": orderID})
}

func (r *mongoPaymentRepo) List(ctx context.Context, userID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

func (r *mongoPaymentRepo) MarkVerified(ctx context.Context, orderID, gatewayPaymentID, signature string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":           models.PaymentSuccess,
		"gatewayPaymentId": gatewayPaymentID,
		"signature":        signature,
		"updatedAt":        time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Payment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"orderId": orderID}, update, opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify payment for order %s: %w", orderID, err)
	}
	return &p, nil
}
