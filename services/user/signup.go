package user

import (
	"context"
	"net/mail"
	"strings"

	"homefix/models"
	"homefix/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// NormalizeEmail lower-cases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(in RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return utils.NewValidationError("name is required")
	}
	if in.Email == "" || in.Password == "" {
		return utils.NewValidationError("email and password are required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return utils.NewValidationError("email is not valid")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return utils.NewValidationError("phone number is required")
	}
	if len(in.Password) < minPasswordLength {
		return utils.NewValidationError("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a user with role user and issues a token.
func (s *DefaultUserService) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}

	u := &models.User{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(in.Name),
		Email:           in.Email,
		Phone:           strings.TrimSpace(in.Phone),
		PasswordHash:    string(hash),
		Role:            models.RoleUser,
		SubscribedPlans: []string{},
	}
	// The unique email index is the source of truth for duplicates.
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, translate(err, "registration")
	}
	return s.issue(ctx, u)
}
