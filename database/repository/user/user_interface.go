package userRepo

import (
	"context"
	"errors"
	"time"

	"homefix/models"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the unique email index rejects an insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ProfileUpdate carries the self-editable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string
	Phone    *string
	Address  *string
	FCMToken *string
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its normalized email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users without credentials.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetIDs returns the id of every user.
	GetIDs(ctx context.Context) ([]string, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error
	UpdateRole(ctx context.Context, id string, role models.Role) error

	// AddPlan adds planID to the subscribed list. added is false when it was already there.
	AddPlan(ctx context.Context, id, planID string) (added bool, err error)
	// RemovePlan removes planID from the subscribed list. removed is false when it was absent.
	RemovePlan(ctx context.Context, id, planID string) (removed bool, err error)
	// SetSubscription overwrites the metered subscription record.
	SetSubscription(ctx context.Context, id string, sub models.Subscription) error
	// TransitionSubscription sets the record status only if it is still active for planID
	// (and, when endDate is non-zero, still ends at endDate).
	TransitionSubscription(ctx context.Context, id, planID string, endDate time.Time, to models.SubscriptionStatus) (bool, error)
}
