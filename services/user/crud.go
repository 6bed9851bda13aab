package user

import (
	"context"
	"strings"

	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/utils"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "profile lookup")
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields of upd. Name and phone cannot be blanked.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, upd ProfileInput) (*models.User, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, utils.NewValidationError("name cannot be empty")
	}
	if upd.Phone != nil && strings.TrimSpace(*upd.Phone) == "" {
		return nil, utils.NewValidationError("phone number cannot be empty")
	}

	err := s.Repo.UpdateProfile(ctx, userID, userRepo.ProfileUpdate{
		Name:     upd.Name,
		Phone:    upd.Phone,
		Address:  upd.Address,
		FCMToken: upd.FCMToken,
	})
	if err != nil {
		return nil, translate(err, "profile update")
	}
	return s.GetProfile(ctx, userID)
}
