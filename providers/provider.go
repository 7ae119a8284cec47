package providers

import (
	"context"

	"github.com/yashrajoria/checkout-demo/models"
)

// PaymentProvider defines the interface all payment gateway integrations must
// implement. The gateway is the system of record for payment state; the two
// operations below are the only ways this service observes it.
type PaymentProvider interface {
	// CreateIntent registers a new payment attempt for the given amount
	// (minor currency units) and returns the gateway's identifiers.
	CreateIntent(ctx context.Context, amount int64, currency string) (*models.PaymentIntentRef, error)

	// RetrieveIntent fetches the current lifecycle state of an intent.
	RetrieveIntent(ctx context.Context, id string) (*models.PaymentOutcome, error)
}
