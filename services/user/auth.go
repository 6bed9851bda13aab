package user

import (
	"context"
	"errors"

	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/utils"

	"go.uber.org/zap"
)

// ResolveToken validates token and returns the caller's identity. The role is read from
// the identity cache or, on a miss, from the user record so role changes take effect
// without reissuing tokens.
func (s *DefaultUserService) ResolveToken(ctx context.Context, token string) (models.Identity, error) {
	claims, err := s.Tokens.ParseToken(token)
	if err != nil {
		return models.Identity{}, utils.NewUnauthorizedError("invalid or expired token")
	}

	if id, ok, err := s.Cache.Get(ctx, claims.Subject); err != nil {
		utils.GetLogger().Warn("identity cache unavailable, falling back to database", zap.Error(err))
	} else if ok {
		return id, nil
	}

	u, err := s.Repo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return models.Identity{}, utils.NewUnauthorizedError("user no longer exists")
		}
		return models.Identity{}, translate(err, "authentication")
	}

	id := models.Identity{UserID: u.ID, Role: u.Role}
	s.remember(ctx, id)
	return id, nil
}

func (s *DefaultUserService) remember(ctx context.Context, id models.Identity) {
	if err := s.Cache.Set(ctx, id); err != nil {
		utils.GetLogger().Warn("failed to cache identity", zap.String("userId", id.UserID), zap.Error(err))
	}
}

func (s *DefaultUserService) forget(ctx context.Context, userID string) {
	if err := s.Cache.Delete(ctx, userID); err != nil {
		utils.GetLogger().Warn("failed to evict identity", zap.String("userId", userID), zap.Error(err))
	}
}
