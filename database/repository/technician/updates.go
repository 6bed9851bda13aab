package technicianRepo

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

func (r *mongoTechnicianRepo) Update(ctx context.Context, id string, upd TechnicianUpdate) (*models.Technician, error) {
	set := bson.M{}
	if upd.Specializations != nil {
		set["specializations"] = *upd.Specializations
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	return r.updateWithOperators(ctx, bson.M{"id": id}, bson.M{"$set": set})
}

func (r *mongoTechnicianRepo) SetAvailability(ctx context.Context, id string, available bool) (*models.Technician, error) {
	return r.updateWithOperators(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"availability": available}})
}

func (r *mongoTechnicianRepo) AddDocument(ctx context.Context, id, url string) (*models.Technician, error) {
	return r.updateWithOperators(ctx, bson.M{"id": id}, bson.M{"$push": bson.M{"documents": url}})
}

func (r *mongoTechnicianRepo) SetRating(ctx context.Context, id string, rating float64) error {
	_, err := r.updateWithOperators(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"rating": rating}})
	return err
}

func (r *mongoTechnicianRepo) RecordAssignment(ctx context.Context, id, bookingID string) error {
	_, err := r.updateWithOperators(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{"totalJobs": 1},
		"$set": bson.M{"currentJob": bookingID},
	})
	return err
}

func (r *mongoTechnicianRepo) RecordCompletion(ctx context.Context, id, bookingID string) error {
	if _, err := r.updateWithOperators(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"completedJobs": 1}}); err != nil {
		return err
	}
	return r.ReleaseJob(ctx, id, bookingID)
}

func (r *mongoTechnicianRepo) ReleaseJob(ctx context.Context, id, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "currentJob": bookingID}
	update := bson.M{"$unset": bson.M{"currentJob": ""}, "$set": bson.M{"updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to release job for technician %s: %w", id, err)
	}
	return nil
}

// updateWithOperators applies update (plus an updatedAt bump) and returns the new document.
func (r *mongoTechnicianRepo) updateWithOperators(ctx context.Context, filter, update bson.M) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
	}
	set["updatedAt"] = time.Now()
	update["$set"] = set

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.Technician
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update technician: %w", err)
	}
	return &t, nil
}
