package user

import (
	"context"
	"time"

	userRepo "homefix/database/repository/user"
	"homefix/models"
	"homefix/utils"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, in RegisterInput) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	ResolveToken(ctx context.Context, token string) (models.Identity, error)

	// Profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileInput) (*models.User, error)

	// Admin
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenManager
	Cache  IdentityCache
	now    func() time.Time
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenManager, cache IdentityCache) *DefaultUserService {
	if cache == nil {
		cache = NoopIdentityCache{}
	}
	return &DefaultUserService{Repo: repo, Tokens: tokens, Cache: cache, now: time.Now}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type ProfileInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	FCMToken *string `json:"fcmToken"`
}

// AuthResponse contains the issued token and the public identity.
type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}
