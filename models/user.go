package models

import "time"

// Role is the closed set of caller roles.
type Role string

const (
	RoleUser       Role = "user"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleTechnician, RoleAdmin:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// Subscription is the single metered plan record written by a plan purchase.
type Subscription struct {
	PlanID    string             `bson:"planId" json:"planId"`
	Status    SubscriptionStatus `bson:"status" json:"status"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	EndDate   time.Time          `bson:"endDate" json:"endDate"`
}

// IsActive reports whether the record grants subscriber benefits at now.
func (s *Subscription) IsActive(now time.Time) bool {
	return s != nil && s.Status == SubscriptionActive && now.Before(s.EndDate)
}

// User represents a platform account.
type User struct {
	ID              string        `bson:"id" json:"id"`
	Name            string        `bson:"name" json:"name"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone" json:"phone"`
	PasswordHash    string        `bson:"passwordHash,omitempty" json:"-"`
	Address         string        `bson:"address" json:"address"`
	Role            Role          `bson:"role" json:"role"`
	SubscribedPlans []string      `bson:"subscribedPlans" json:"subscribedPlans"`
	Subscription    *Subscription `bson:"subscription,omitempty" json:"subscription,omitempty"`
	FCMToken        string        `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// HasPlan reports whether planID is in the subscribed list.
func (u *User) HasPlan(planID string) bool {
	for _, id := range u.SubscribedPlans {
		if id == planID {
			return true
		}
	}
	return false
}

// PublicUser is the identity returned to clients after signup and login.
type PublicUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    Role   `json:"role"`
	Address string `json:"address"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Role:    u.Role,
		Address: u.Address,
	}
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// HasRole reports whether the caller holds one of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
