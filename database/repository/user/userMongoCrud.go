// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"homefix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.SubscribedPlans == nil {
		user.SubscribedPlans = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a $set of updateDoc to the user and bumps updatedAt.
func (r *MongoUserRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.FCMToken != nil {
		set["fcmToken"] = *upd.FCMToken
	}
	return r.UpdateSetDocument(ctx, id, set)
}

func (r *MongoUserRepo) UpdateRole(ctx context.Context, id string, role models.Role) error {
	return r.UpdateSetDocument(ctx, id, bson.M{"role": role})
}

func (r *MongoUserRepo) SetSubscription(ctx context.Context, id string, sub models.Subscription) error {
	return r.UpdateSetDocument(ctx, id, bson.M{"subscription": sub})
}

func (r *MongoUserRepo) AddPlan(ctx context.Context, id, planID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	// $ne guard makes "already subscribed" observable from MatchedCount.
	filter := bson.M{"id": id, "subscribedPlans": bson.M{"$ne": planID}}
	update := bson.M{
		"$addToSet": bson.M{"subscribedPlans": planID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to add plan %s for user %s: %w", planID, id, err)
	}
	if result.MatchedCount == 1 {
		return true, nil
	}
	return false, r.exists(ctx, id)
}

func (r *MongoUserRepo) RemovePlan(ctx context.Context, id, planID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "subscribedPlans": planID}
	update := bson.M{
		"$pull": bson.M{"subscribedPlans": planID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to pull plan %s for user %s: %w", planID, id, err)
	}
	if result.MatchedCount == 1 {
		return true, nil
	}
	return false, r.exists(ctx, id)
}

func (r *MongoUserRepo) TransitionSubscription(ctx context.Context, id, planID string, endDate time.Time, to models.SubscriptionStatus) (bool, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":                  id,
		"subscription.planId": planID,
		"subscription.status": models.SubscriptionActive,
	}
	if !endDate.IsZero() {
		filter["subscription.endDate"] = endDate
	}
	update := bson.M{"$set": bson.M{"subscription.status": to, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update subscription for user %s: %w", id, err)
	}
	return result.ModifiedCount == 1, nil
}

// exists returns ErrNotFound when no user has id.
func (r *MongoUserRepo) exists(ctx context.Context, id string) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to look up user %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
