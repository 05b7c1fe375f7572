// Package payments talks to the card payment processor.
package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// CardPaymentMethod is the only payment method type intents accept
const CardPaymentMethod = "card"

// ErrNotConfigured is returned when no processor key was provided
var ErrNotConfigured = errors.New("payment processor is not configured")

// Intent is the part of a processor payment intent the API exposes
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Processor creates payment intents for an amount in minor units
type Processor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

// ToMinorUnits converts a decimal price into integer minor units: the price
// is multiplied by 100, rounded to two places and truncated.
func ToMinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Round(2).IntPart()
}

// StripeProcessor creates card payment intents through the Stripe API
type StripeProcessor struct {
	api *client.API
}

// NewStripeProcessor returns a processor for the given secret key
func NewStripeProcessor(secretKey string) *StripeProcessor {
	return &StripeProcessor{api: client.New(secretKey, nil)}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{CardPaymentMethod}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// Unconfigured rejects every intent. It stands in when no processor key is set
// so the rest of the API can still serve.
type Unconfigured struct{}

func (Unconfigured) CreateIntent(context.Context, int64, string) (*Intent, error) {
	return nil, ErrNotConfigured
}
