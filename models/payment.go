package models

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentSuccess  PaymentStatus = "success"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodNetbanking PaymentMethod = "netbanking"
	MethodUPI        PaymentMethod = "upi"
	MethodWallet     PaymentMethod = "wallet"
	MethodCash       PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCard, MethodNetbanking, MethodUPI, MethodWallet, MethodCash:
		return true
	}
	return false
}

// BookingMethod maps a transaction method onto the coarse booking method.
func (m PaymentMethod) BookingMethod() BookingPaymentMethod {
	switch m {
	case MethodCash:
		return BookingPayCash
	case MethodCard:
		return BookingPayCard
	default:
		return BookingPayOnline
	}
}

// Payment is one transaction against exactly one of a booking or a plan.
type Payment struct {
	ID               string            `bson:"id" json:"id"`
	UserID           string            `bson:"userId" json:"userId"`
	BookingID        string            `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	PlanID           string            `bson:"planId,omitempty" json:"planId,omitempty"`
	Amount           float64           `bson:"amount" json:"amount"`
	Currency         string            `bson:"currency" json:"currency"`
	Method           PaymentMethod     `bson:"paymentMethod" json:"paymentMethod"`
	Status           PaymentStatus     `bson:"status" json:"status"`
	TransactionID    string            `bson:"transactionId" json:"transactionId"`
	OrderID          string            `bson:"orderId,omitempty" json:"orderId,omitempty"`
	GatewayPaymentID string            `bson:"gatewayPaymentId,omitempty" json:"gatewayPaymentId,omitempty"`
	Signature        string            `bson:"signature,omitempty" json:"signature,omitempty"`
	Description      string            `bson:"description,omitempty" json:"description,omitempty"`
	Metadata         map[string]string `bson:"metadata" json:"metadata"`
	CreatedAt        time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updatedAt" json:"updatedAt"`
}
