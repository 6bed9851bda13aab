package user

import (
	"context"
	"errors"

	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, utils.NewValidationError("email and password are required")
	}

	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, translate(err, "authentication")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	return s.issue(ctx, u)
}

func (s *DefaultUserService) issue(ctx context.Context, u *models.User) (*AuthResponse, error) {
	token, err := s.Tokens.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, utils.NewDependencyError("authentication failed, please try again", err)
	}
	s.remember(ctx, models.Identity{UserID: u.ID, Role: u.Role})
	return &AuthResponse{Token: token, User: u.Public()}, nil
}
