package payment

import (
	"context"
	"errors"

	paymentRepo "homefix/database/repository/payment"
	"homefix/models"
	"homefix/utils"
)

func (s *DefaultPaymentService) ListMine(ctx context.Context, userID string) ([]models.Payment, error) {
	payments, err := s.Payments.List(ctx, userID)
	if err != nil {
		return nil, utils.NewDependencyError("failed to load payments", err)
	}
	return payments, nil
}

func (s *DefaultPaymentService) ListAll(ctx context.Context) ([]models.Payment, error) {
	return s.ListMine(ctx, "")
}

func (s *DefaultPaymentService) GetByID(ctx context.Context, paymentID string, caller models.Identity) (*models.Payment, error) {
	p, err := s.Payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("payment not found")
		}
		return nil, utils.NewDependencyError("failed to load payment", err)
	}
	if p.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, utils.NewForbiddenError("not authorized to view this payment")
	}
	return p, nil
}
