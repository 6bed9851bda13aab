package payment

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "homefix/database/repository/booking"
	catalogRepo "homefix/database/repository/catalog"
	"homefix/models"
	"homefix/services/notification"
	"homefix/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTransactionID() string {
	return "TXN-" + uuid.New().String()
}

func (s *DefaultPaymentService) Record(ctx context.Context, userID string, in RecordInput) (*models.Payment, error) {
	switch {
	case in.BookingID != "" && in.PlanID != "":
		return nil, utils.NewValidationError("provide either bookingId or planId, not both")
	case in.BookingID != "":
		return s.RecordForBooking(ctx, userID, in.BookingID, in.PaymentMethod)
	case in.PlanID != "":
		return s.RecordForPlan(ctx, userID, in.PlanID, in.PaymentMethod)
	default:
		return nil, utils.NewValidationError("either bookingId or planId is required")
	}
}

func validateMethod(m models.PaymentMethod) error {
	if !m.Valid() {
		return utils.NewValidationError("paymentMethod must be one of card, netbanking, upi, wallet, cash")
	}
	return nil
}

// RecordForBooking charges the booking's final price and marks it paid.
func (s *DefaultPaymentService) RecordForBooking(ctx context.Context, userID, bookingID string, method models.PaymentMethod) (*models.Payment, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("booking not found")
		}
		return nil, utils.NewDependencyError("failed to load booking", err)
	}
	if b.UserID != userID {
		return nil, utils.NewForbiddenError("not authorized to pay for this booking")
	}
	if b.PaymentStatus == models.BookingPaymentPaid {
		return nil, utils.NewConflictError("booking is already paid")
	}
	if b.Status == models.StatusCancelled {
		return nil, utils.NewConflictError("cannot pay for a cancelled booking")
	}

	p := &models.Payment{
		ID:            uuid.New().String(),
		UserID:        userID,
		BookingID:     b.ID,
		Amount:        b.FinalPrice,
		Currency:      s.Currency,
		Method:        method,
		Status:        models.PaymentSuccess,
		TransactionID: newTransactionID(),
		Description:   "Booking payment",
		Metadata:      map[string]string{"bookingId": b.ID, "serviceId": b.ServiceID},
	}
	if err := s.openOrder(ctx, p); err != nil {
		return nil, err
	}

	// The conditional write is the guard against paying twice concurrently.
	if err := s.Bookings.MarkPaid(ctx, b.ID, method.BookingMethod()); err != nil {
		if errors.Is(err, bookingRepo.ErrStale) {
			return nil, utils.NewConflictError("booking is already paid")
		}
		return nil, utils.NewDependencyError("failed to update booking payment", err)
	}
	if err := s.store(ctx, p); err != nil {
		return nil, err
	}

	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  userID,
		Title:   "Payment Successful",
		Message: fmt.Sprintf("Payment of %.2f %s received for your booking.", p.Amount, p.Currency),
		Type:    models.NotifPayment,
		Target:  models.PaymentTarget(p.ID),
	})
	return p, nil
}

// RecordForPlan charges the plan price and activates the subscription.
func (s *DefaultPaymentService) RecordForPlan(ctx context.Context, userID, planID string, method models.PaymentMethod) (*models.Payment, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	plan, err := s.Catalog.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("plan not found")
		}
		return nil, utils.NewDependencyError("failed to load plan", err)
	}

	p := &models.Payment{
		ID:            uuid.New().String(),
		UserID:        userID,
		PlanID:        plan.ID,
		Amount:        plan.Price,
		Currency:      s.Currency,
		Method:        method,
		Status:        models.PaymentSuccess,
		TransactionID: newTransactionID(),
		Description:   fmt.Sprintf("%s plan (%s)", plan.Name, plan.Duration),
		Metadata:      map[string]string{"planId": plan.ID, "duration": string(plan.Duration)},
	}
	if err := s.openOrder(ctx, p); err != nil {
		return nil, err
	}

	sub, err := s.Subscriptions.Activate(ctx, userID, plan)
	if err != nil {
		return nil, err
	}
	p.Metadata["endDate"] = sub.EndDate.Format("2006-01-02")
	if err := s.store(ctx, p); err != nil {
		return nil, err
	}

	s.Notifier.Notify(ctx, notification.PushInput{
		UserID:  userID,
		Title:   "Plan Activated",
		Message: fmt.Sprintf("Your %s plan is active until %s.", plan.Name, sub.EndDate.Format("02 Jan 2006")),
		Type:    models.NotifSubscription,
		Target:  models.PlanTarget(plan.ID),
	})
	return p, nil
}

func (s *DefaultPaymentService) openOrder(ctx context.Context, p *models.Payment) error {
	orderID, err := s.Gateway.CreateOrder(ctx, OrderRequest{
		Amount:      p.Amount,
		Currency:    s.Currency,
		Method:      p.Method,
		Description: p.Description,
		Metadata:    map[string]string{"transactionId": p.TransactionID, "userId": p.UserID},
	})
	if err != nil {
		return utils.NewDependencyError("payment gateway unavailable", err)
	}
	p.OrderID = orderID
	return nil
}

func (s *DefaultPaymentService) store(ctx context.Context, p *models.Payment) error {
	if err := s.Payments.Create(ctx, p); err != nil {
		utils.GetLogger().Error("payment applied but not recorded",
			zap.String("transactionId", p.TransactionID),
			zap.String("userId", p.UserID),
			zap.Error(err))
		return utils.NewDependencyError("failed to record payment", err)
	}
	return nil
}
