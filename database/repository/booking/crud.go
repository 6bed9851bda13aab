package bookingRepo

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

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) (*models.Booking, error) {
	filter := bson.M{"id": id, "status": from}
	set := bson.M{"status": to}
	return r.conditionalSet(ctx, id, filter, set)
}

func (r *mongoBookingRepo) AssignTechnician(ctx context.Context, id, technicianID string, open []models.BookingStatus) (*models.Booking, error) {
	filter := bson.M{"id": id, "status": bson.M{"$in": open}}
	set := bson.M{"technicianId": technicianID}
	return r.conditionalSet(ctx, id, filter, set)
}

func (r *mongoBookingRepo) MarkPaid(ctx context.Context, id string, method models.BookingPaymentMethod) error {
	filter := bson.M{"id": id, "paymentStatus": bson.M{"$ne": models.BookingPaymentPaid}}
	set := bson.M{"paymentStatus": models.BookingPaymentPaid, "paymentMethod": method}
	_, err := r.conditionalSet(ctx, id, filter, set)
	return err
}

func (r *mongoBookingRepo) SetReview(ctx context.Context, id string, review models.Review) (*models.Booking, error) {
	filter := bson.M{
		"id":     id,
		"status": models.StatusCompleted,
		"review": bson.M{"$exists": false},
	}
	return r.conditionalSet(ctx, id, filter, bson.M{"review": review})
}

// conditionalSet applies a targeted $set when filter matches. A miss is reported as
// ErrNotFound when the booking does not exist and ErrStale otherwise.
func (r *mongoBookingRepo) conditionalSet(ctx context.Context, id string, filter, set bson.M) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&b)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking %s: %w", id, err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return nil, ErrStale
}
