package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/yashrajoria/checkout-demo/metrics"
	"github.com/yashrajoria/checkout-demo/models"
	"github.com/yashrajoria/checkout-demo/providers"
)

// CheckoutService drives one checkout from item selection to the final
// gateway-reported outcome. It holds no state between calls: everything a
// step needs arrives with the request or is re-read from the gateway, so
// concurrent requests never contend.
type CheckoutService interface {
	// SelectItem resolves a catalog id for the checkout page. A miss is
	// reported on the selection itself, not as a failure.
	SelectItem(ctx context.Context, itemID string) *models.CheckoutSelection

	// CreateIntent charges the catalog price of the selected item. The
	// amount is always re-derived server-side; client input cannot move it.
	CreateIntent(ctx context.Context, itemID string) (*models.PaymentIntentRef, *ServiceError)

	// ResolveOutcome re-fetches the intent from the gateway and projects its
	// current status for display. The gateway stays the system of record:
	// nothing is cached between calls.
	ResolveOutcome(ctx context.Context, intentID string) (*models.PaymentOutcome, *ServiceError)
}

type checkoutServiceImpl struct {
	catalog  CatalogService
	provider providers.PaymentProvider
	currency string
	metrics  *metrics.CheckoutMetrics
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService. metrics may be nil.
func NewCheckoutService(
	catalog CatalogService,
	provider providers.PaymentProvider,
	currency string,
	m *metrics.CheckoutMetrics,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		catalog:  catalog,
		provider: provider,
		currency: currency,
		metrics:  m,
		logger:   logger,
	}
}

func (s *checkoutServiceImpl) SelectItem(_ context.Context, itemID string) *models.CheckoutSelection {
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		s.logger.Warn("item selection failed", zap.String("item_id", itemID))
		return &models.CheckoutSelection{Error: MsgNoItemSelected}
	}
	return &models.CheckoutSelection{Item: item}
}

func (s *checkoutServiceImpl) CreateIntent(ctx context.Context, itemID string) (*models.PaymentIntentRef, *ServiceError) {
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		s.logger.Warn("intent creation rejected, unknown item", zap.String("item_id", itemID))
		return nil, selectionError()
	}

	ref, err := s.provider.CreateIntent(ctx, item.UnitAmount, s.currency)
	if err != nil {
		s.logger.Error("intent creation failed",
			zap.String("item_id", item.ID),
			zap.Int64("amount", item.UnitAmount),
			zap.Error(err),
		)
		s.metrics.RecordIntent("error")
		return nil, gatewayError(err)
	}

	s.logger.Info("payment intent created",
		zap.String("intent_id", ref.ID),
		zap.String("item_id", item.ID),
		zap.Int64("amount", ref.Amount),
		zap.String("currency", s.currency),
	)
	s.metrics.RecordIntent("created")
	return ref, nil
}

func (s *checkoutServiceImpl) ResolveOutcome(ctx context.Context, intentID string) (*models.PaymentOutcome, *ServiceError) {
	if intentID == "" {
		s.logger.Warn("outcome requested without an intent id")
		return nil, missingReferenceError()
	}

	outcome, err := s.provider.RetrieveIntent(ctx, intentID)
	if err != nil {
		s.logger.Error("intent retrieval failed",
			zap.String("intent_id", intentID),
			zap.Error(err),
		)
		s.metrics.RecordOutcome("error")
		return nil, gatewayError(err)
	}

	s.logger.Info("payment outcome resolved",
		zap.String("intent_id", outcome.IntentID),
		zap.String("status", outcome.Status),
		zap.Int64("amount", outcome.Amount),
	)
	s.metrics.RecordOutcome(outcome.Status)
	return outcome, nil
}
