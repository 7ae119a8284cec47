package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"

	"github.com/yashrajoria/checkout-demo/models"
)

// StripeProvider implements PaymentProvider using the Stripe PaymentIntents API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a provider around its own configured Stripe
// client. The secret key lives only inside that client; nothing global is
// mutated, so multiple providers with different keys can coexist.
func NewStripeProvider(secretKey string) *StripeProvider {
	return &StripeProvider{api: client.New(secretKey, nil)}
}

// CreateIntent registers a PaymentIntent for the given amount and currency.
// One attempt, no retry; the caller's context bounds the call.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*models.PaymentIntentRef, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe CreateIntent: %w", err)
	}
	return intentRef(pi), nil
}

// RetrieveIntent fetches the current state of a PaymentIntent.
func (p *StripeProvider) RetrieveIntent(ctx context.Context, id string) (*models.PaymentOutcome, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("stripe RetrieveIntent: %w", err)
	}
	return intentOutcome(pi), nil
}

// GatewayMessage extracts the user-facing message from a gateway error: the
// message Stripe itself reports for API errors, the plain error text for
// transport failures.
func GatewayMessage(err error) string {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		return sErr.Msg
	}
	return err.Error()
}

func intentRef(pi *stripe.PaymentIntent) *models.PaymentIntentRef {
	return &models.PaymentIntentRef{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
	}
}

func intentOutcome(pi *stripe.PaymentIntent) *models.PaymentOutcome {
	return &models.PaymentOutcome{
		IntentID: pi.ID,
		Amount:   pi.Amount,
		Status:   string(pi.Status),
	}
}
