package notificationRepo

import (
	"context"
	"errors"

	"homefix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	CreateMany(ctx context.Context, ns []models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	// ListByUser returns at most limit notifications, newest first.
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepo(db *mongo.Database) (NotificationRepository, error) {
	repo := &mongoNotificationRepo{coll: db.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}
