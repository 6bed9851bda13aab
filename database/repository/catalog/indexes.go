package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serviceIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "isAvailable", Value: 1}}},
	}
	if _, err := r.services.Indexes().CreateMany(ctx, serviceIdx); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	planIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.plans.Indexes().CreateMany(ctx, planIdx); err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}
	return nil
}
