package user

import (
	"context"

	"homefix/models"
	"homefix/utils"
)

// ListUsers retrieves all users for admin access, excluding sensitive fields.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, translate(err, "user listing")
	}
	return users, nil
}

// UpdateRole changes a user's role and evicts their cached identity.
func (s *DefaultUserService) UpdateRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, utils.NewValidationError("role must be one of user, technician, admin")
	}
	if err := s.Repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, translate(err, "role update")
	}
	s.forget(ctx, userID)
	return s.GetProfile(ctx, userID)
}
