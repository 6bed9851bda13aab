package models

import "time"

type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

type BookingPaymentStatus string

const (
	BookingPaymentPending BookingPaymentStatus = "pending"
	BookingPaymentPaid    BookingPaymentStatus = "paid"
	BookingPaymentFailed  BookingPaymentStatus = "failed"
)

// BookingPaymentMethod is the coarse method stored on the booking itself.
type BookingPaymentMethod string

const (
	BookingPayCash   BookingPaymentMethod = "cash"
	BookingPayCard   BookingPaymentMethod = "card"
	BookingPayOnline BookingPaymentMethod = "online"
)

// Review is the customer's post-completion feedback.
type Review struct {
	Rating  int       `bson:"rating" json:"rating"`
	Comment string    `bson:"comment" json:"comment"`
	Date    time.Time `bson:"date" json:"date"`
}

// Booking is a customer's request for a service visit.
type Booking struct {
	ID                 string               `bson:"id" json:"id"`
	UserID             string               `bson:"userId" json:"userId"`
	ServiceID          string               `bson:"serviceId" json:"serviceId"`
	TechnicianID       string               `bson:"technicianId,omitempty" json:"technicianId,omitempty"`
	ScheduledDate      time.Time            `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime      string               `bson:"scheduledTime" json:"scheduledTime"`
	Address            string               `bson:"address" json:"address"`
	ContactPhone       string               `bson:"contactPhone" json:"contactPhone"`
	ProblemDescription string               `bson:"problemDescription" json:"problemDescription"`
	Status             BookingStatus        `bson:"status" json:"status"`
	Priority           Priority             `bson:"priority" json:"priority"`
	TotalPrice         float64              `bson:"totalPrice" json:"totalPrice"`
	Discount           float64              `bson:"discount" json:"discount"`
	FinalPrice         float64              `bson:"finalPrice" json:"finalPrice"`
	PaymentStatus      BookingPaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod      BookingPaymentMethod `bson:"paymentMethod" json:"paymentMethod"`
	Review             *Review              `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt" json:"updatedAt"`
}
