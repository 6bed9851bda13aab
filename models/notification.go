package models

import "time"

type NotificationType string

const (
	NotifBooking      NotificationType = "booking"
	NotifPayment      NotificationType = "payment"
	NotifSubscription NotificationType = "subscription"
	NotifSystem       NotificationType = "system"
	NotifPromotion    NotificationType = "promotion"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifBooking, NotifPayment, NotifSubscription, NotifSystem, NotifPromotion:
		return true
	}
	return false
}

type NotificationPriority string

const (
	NotifPriorityLow    NotificationPriority = "low"
	NotifPriorityMedium NotificationPriority = "medium"
	NotifPriorityHigh   NotificationPriority = "high"
)

func (p NotificationPriority) Valid() bool {
	switch p {
	case NotifPriorityLow, NotifPriorityMedium, NotifPriorityHigh:
		return true
	}
	return false
}

// TargetKind discriminates what a notification points at.
type TargetKind string

const (
	TargetNone    TargetKind = ""
	TargetBooking TargetKind = "Booking"
	TargetPayment TargetKind = "Payment"
	TargetPlan    TargetKind = "Plan"
	TargetService TargetKind = "Service"
)

// NotificationTarget is the optional resource a notification refers to.
// It is stored flat as relatedModel/relatedTo.
type NotificationTarget struct {
	Kind TargetKind `bson:"relatedModel,omitempty" json:"relatedModel,omitempty"`
	ID   string     `bson:"relatedTo,omitempty" json:"relatedTo,omitempty"`
}

func BookingTarget(id string) NotificationTarget { return NotificationTarget{Kind: TargetBooking, ID: id} }
func PaymentTarget(id string) NotificationTarget { return NotificationTarget{Kind: TargetPayment, ID: id} }
func PlanTarget(id string) NotificationTarget    { return NotificationTarget{Kind: TargetPlan, ID: id} }

// Path returns the API path of the target resource, empty for none.
func (t NotificationTarget) Path() string {
	switch t.Kind {
	case TargetBooking:
		return "/api/bookings/" + t.ID
	case TargetPayment:
		return "/api/payments/" + t.ID
	case TargetPlan:
		return "/api/plans/" + t.ID
	case TargetService:
		return "/api/services/" + t.ID
	case TargetNone:
		return ""
	default:
		return ""
	}
}

// Valid reports whether kind and id agree.
func (t NotificationTarget) Valid() bool {
	switch t.Kind {
	case TargetNone:
		return t.ID == ""
	case TargetBooking, TargetPayment, TargetPlan, TargetService:
		return t.ID != ""
	default:
		return false
	}
}

type Notification struct {
	ID                 string               `bson:"id" json:"id"`
	UserID             string               `bson:"userId" json:"userId"`
	Title              string               `bson:"title" json:"title"`
	Message            string               `bson:"message" json:"message"`
	Type               NotificationType     `bson:"type" json:"type"`
	NotificationTarget `bson:",inline"`
	IsRead             bool                 `bson:"isRead" json:"isRead"`
	Priority           NotificationPriority `bson:"priority" json:"priority"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
}
