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

func (r *mongoCatalogRepo) CreatePlan(ctx context.Context, plan *models.Plan) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if plan.Services == nil {
		plan.Services = []string{}
	}
	if _, err := r.plans.InsertOne(ctx, plan); err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var plan models.Plan
	if err := r.plans.FindOne(ctx, bson.M{"id": id}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch plan %s: %w", id, err)
	}
	return &plan, nil
}

func (r *mongoCatalogRepo) ListPlans(ctx context.Context) ([]models.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.plans.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "price", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer cursor.Close(ctx)

	plans := []models.Plan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}

func (r *mongoCatalogRepo) UpdatePlan(ctx context.Context, id string, upd PlanUpdate) (*models.Plan, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Duration != nil {
		set["duration"] = *upd.Duration
	}
	if upd.Services != nil {
		set["services"] = *upd.Services
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	var plan models.Plan
	if err := findOneAndSet(ctx, r.plans, id, set, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mongoCatalogRepo) DeletePlan(ctx context.Context, id string) error {
	return deleteByID(ctx, r.plans, id)
}
