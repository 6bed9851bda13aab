package catalogRepo

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

func (r *mongoCatalogRepo) CreateService(ctx context.Context, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if _, err := r.services.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

func (r *mongoCatalogRepo) ListServices(ctx context.Context, filter ServiceFilter) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.OnlyAvailable {
		query["isAvailable"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.services.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *mongoCatalogRepo) UpdateService(ctx context.Context, id string, upd ServiceUpdate) (*models.Service, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.EstimatedTime != nil {
		set["estimatedTime"] = *upd.EstimatedTime
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.IsAvailable != nil {
		set["isAvailable"] = *upd.IsAvailable
	}

	var svc models.Service
	if err := findOneAndSet(ctx, r.services, id, set, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *mongoCatalogRepo) DeleteService(ctx context.Context, id string) error {
	return deleteByID(ctx, r.services, id)
}

// findOneAndSet applies set to the document with id and decodes the updated document into out.
func findOneAndSet(ctx context.Context, coll *mongo.Collection, id string, set bson.M, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update %s %s: %w", coll.Name(), id, err)
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", coll.Name(), id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
