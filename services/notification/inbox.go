package notification

import (
	"context"
	"errors"

	notificationRepo "homefix/database/repository/notification"
	"homefix/models"
	"homefix/utils"
)

func (s *DefaultNotificationService) List(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	out, err := s.Repo.ListByUser(ctx, userID, int64(limit))
	if err != nil {
		return nil, utils.NewDependencyError("failed to load notifications", err)
	}
	return out, nil
}

// owned loads a notification and checks the caller owns it.
func (s *DefaultNotificationService) owned(ctx context.Context, id, callerID string) error {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			return utils.NewNotFoundError("notification not found")
		}
		return utils.NewDependencyError("failed to load notification", err)
	}
	if n.UserID != callerID {
		return utils.NewForbiddenError("not authorized to modify this notification")
	}
	return nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, callerID string) error {
	if err := s.owned(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.Repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			return utils.NewNotFoundError("notification not found")
		}
		return utils.NewDependencyError("failed to update notification", err)
	}
	return nil
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := s.Repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, utils.NewDependencyError("failed to update notifications", err)
	}
	return n, nil
}

func (s *DefaultNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	n, err := s.Repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, utils.NewDependencyError("failed to count notifications", err)
	}
	return n, nil
}

func (s *DefaultNotificationService) Delete(ctx context.Context, id, callerID string) error {
	if err := s.owned(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			return utils.NewNotFoundError("notification not found")
		}
		return utils.NewDependencyError("failed to delete notification", err)
	}
	return nil
}
