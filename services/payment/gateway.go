package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"homefix/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// OrderRequest describes the charge a gateway order is opened for.
type OrderRequest struct {
	Amount      float64
	Currency    string
	Method      models.PaymentMethod
	Description string
	Metadata    map[string]string
}

// Gateway opens an order with a payment processor and returns its id.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (string, error)
}

// LocalGateway stands in for an external processor.
type LocalGateway struct{}

func (LocalGateway) CreateOrder(context.Context, OrderRequest) (string, error) {
	return "order_" + uuid.New().String(), nil
}

// StripeGateway creates PaymentIntents for card payments and defers other
// methods to Fallback. Only the intent id is used, as the order id on the
// recorded payment; the intent is never confirmed or captured here, and the
// payment row is stored as success regardless. Confirmation belongs to the
// client-side Stripe flow, and intents it never confirms expire on Stripe's side.
type StripeGateway struct {
	Fallback Gateway
}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{Fallback: LocalGateway{}}
}

func (g *StripeGateway) CreateOrder(ctx context.Context, req OrderRequest) (string, error) {
	if req.Method != models.MethodCard {
		return g.Fallback.CreateOrder(ctx, req)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(minorUnits(req.Amount)),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ID, nil
}

// minorUnits converts an amount to the currency's smallest unit (paise, cents).
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
