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

func (r *mongoTechnicianRepo) Create(ctx context.Context, tech *models.Technician) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	tech.CreatedAt = now
	tech.UpdatedAt = now
	if tech.Documents == nil {
		tech.Documents = []string{}
	}
	if tech.Specializations == nil {
		tech.Specializations = []models.Specialization{}
	}
	if _, err := r.coll.InsertOne(ctx, tech); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateProfile
		}
		return fmt.Errorf("failed to create technician: %w", err)
	}
	return nil
}

func (r *mongoTechnicianRepo) findOne(ctx context.Context, filter bson.M) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.Technician
	if err := r.coll.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch technician: %w", err)
	}
	return &t, nil
}

func (r *mongoTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoTechnicianRepo) GetByUserID(ctx context.Context, userID string) (*models.Technician, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *mongoTechnicianRepo) List(ctx context.Context, filter TechnicianFilter) ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Specialization != "" {
		query["specializations"] = filter.Specialization
	}
	if filter.OnlyAvailable {
		query["availability"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	defer cursor.Close(ctx)

	techs := []models.Technician{}
	if err := cursor.All(ctx, &techs); err != nil {
		return nil, fmt.Errorf("failed to decode technicians: %w", err)
	}
	return techs, nil
}
