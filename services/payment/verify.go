package payment

import (
	"context"
	"errors"

	paymentRepo "homefix/database/repository/payment"
	"homefix/utils"

	"go.uber.org/zap"
)

// VerifyExternal checks a processor callback signature and, when it matches, marks
// the payment for orderID successful. A mismatch returns false and changes nothing.
func (s *DefaultPaymentService) VerifyExternal(ctx context.Context, orderID, gatewayPaymentID, signature string) (bool, error) {
	if orderID == "" || gatewayPaymentID == "" || signature == "" {
		return false, nil
	}
	if len(s.secret) == 0 || !ValidSignature(s.secret, orderID, gatewayPaymentID, signature) {
		return false, nil
	}

	if _, err := s.Payments.MarkVerified(ctx, orderID, gatewayPaymentID, signature); err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			utils.GetLogger().Warn("verified signature for unknown order", zap.String("orderId", orderID))
			return false, nil
		}
		return false, utils.NewDependencyError("failed to update payment", err)
	}
	return true, nil
}
