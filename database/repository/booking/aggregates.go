package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"homefix/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoBookingRepo) EarningsForTechnician(ctx context.Context, technicianID string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"technicianId":  technicianID,
			"status":        models.StatusCompleted,
			"paymentStatus": models.BookingPaymentPaid,
		}},
		bson.M{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$finalPrice"}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate earnings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode earnings: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *mongoBookingRepo) AverageRatingForTechnician(ctx context.Context, technicianID string) (float64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"technicianId": technicianID,
			"review":       bson.M{"$exists": true},
		}},
		bson.M{"$group": bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$review.rating"},
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, fmt.Errorf("failed to decode ratings: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Avg, rows[0].Count, nil
}
