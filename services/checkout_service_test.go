package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"github.com/yashrajoria/checkout-demo/models"
	"github.com/yashrajoria/checkout-demo/services"
)

// ---- mock provider ----

type mockProvider struct {
	createRef    *models.PaymentIntentRef
	createErr    error
	createCalls  int
	lastAmount   int64
	lastCurrency string

	retrieveOutcome *models.PaymentOutcome
	retrieveErr     error
	retrieveCalls   int
	lastIntentID    string
}

func (m *mockProvider) CreateIntent(_ context.Context, amount int64, currency string) (*models.PaymentIntentRef, error) {
	m.createCalls++
	m.lastAmount = amount
	m.lastCurrency = currency
	return m.createRef, m.createErr
}

func (m *mockProvider) RetrieveIntent(_ context.Context, id string) (*models.PaymentOutcome, error) {
	m.retrieveCalls++
	m.lastIntentID = id
	return m.retrieveOutcome, m.retrieveErr
}

// ---- helper ----

func newTestService(provider *mockProvider) services.CheckoutService {
	logger, _ := zap.NewDevelopment()
	return services.NewCheckoutService(services.NewCatalogService(), provider, "usd", nil, logger)
}

// ---- tests ----

func TestSelectItem_Known(t *testing.T) {
	svc := newTestService(&mockProvider{})

	sel := svc.SelectItem(context.Background(), "2")
	assert.Empty(t, sel.Error)
	if assert.NotNil(t, sel.Item) {
		assert.Equal(t, "The Making of Prince of Persia: Journals 1985-1993", sel.Item.Title)
		assert.Equal(t, int64(2500), sel.Item.UnitAmount)
	}
}

func TestSelectItem_Unknown(t *testing.T) {
	svc := newTestService(&mockProvider{})

	sel := svc.SelectItem(context.Background(), "9")
	assert.Nil(t, sel.Item)
	assert.Equal(t, services.MsgNoItemSelected, sel.Error)
}

func TestCreateIntent_AmountFromCatalog(t *testing.T) {
	cases := []struct {
		itemID string
		amount int64
	}{
		{"1", 1500},
		{"2", 2500},
		{"3", 2300},
	}

	for _, tc := range cases {
		provider := &mockProvider{
			createRef: &models.PaymentIntentRef{ID: "pi_123", ClientSecret: "pi_123_secret_abc", Amount: tc.amount},
		}
		svc := newTestService(provider)

		ref, svcErr := svc.CreateIntent(context.Background(), tc.itemID)
		assert.Nil(t, svcErr)
		assert.Equal(t, "pi_123_secret_abc", ref.ClientSecret)

		assert.Equal(t, 1, provider.createCalls)
		assert.Equal(t, tc.amount, provider.lastAmount, "item %q must charge its catalog price", tc.itemID)
		assert.Equal(t, "usd", provider.lastCurrency)
	}
}

func TestCreateIntent_UnknownItem_GatewayNotCalled(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(provider)

	_, svcErr := svc.CreateIntent(context.Background(), "404")
	if assert.NotNil(t, svcErr) {
		assert.Equal(t, services.KindSelection, svcErr.Kind)
		assert.Equal(t, 400, svcErr.StatusCode)
		assert.Equal(t, services.MsgNoItemSelected, svcErr.Message)
	}
	assert.Equal(t, 0, provider.createCalls)
}

func TestCreateIntent_GatewayError(t *testing.T) {
	provider := &mockProvider{createErr: errors.New("stripe unreachable")}
	svc := newTestService(provider)

	_, svcErr := svc.CreateIntent(context.Background(), "1")
	if assert.NotNil(t, svcErr) {
		assert.Equal(t, services.KindGateway, svcErr.Kind)
		assert.Equal(t, 500, svcErr.StatusCode)
		assert.Equal(t, "stripe unreachable", svcErr.Message)
	}
}

func TestCreateIntent_GatewayErrorMessageVerbatim(t *testing.T) {
	provider := &mockProvider{createErr: &stripe.Error{Msg: "Your card was declined."}}
	svc := newTestService(provider)

	_, svcErr := svc.CreateIntent(context.Background(), "3")
	if assert.NotNil(t, svcErr) {
		assert.Equal(t, services.KindGateway, svcErr.Kind)
		assert.Equal(t, "Your card was declined.", svcErr.Message)
	}
}

func TestResolveOutcome_Success(t *testing.T) {
	provider := &mockProvider{
		retrieveOutcome: &models.PaymentOutcome{IntentID: "pi_9", Amount: 2300, Status: "succeeded"},
	}
	svc := newTestService(provider)

	outcome, svcErr := svc.ResolveOutcome(context.Background(), "pi_9")
	assert.Nil(t, svcErr)
	assert.Equal(t, "pi_9", outcome.IntentID)
	assert.Equal(t, int64(2300), outcome.Amount)
	assert.Equal(t, "succeeded", outcome.Status)
	assert.Equal(t, "pi_9", provider.lastIntentID)
}

func TestResolveOutcome_MissingID_GatewayNotCalled(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(provider)

	_, svcErr := svc.ResolveOutcome(context.Background(), "")
	if assert.NotNil(t, svcErr) {
		assert.Equal(t, services.KindMissingReference, svcErr.Kind)
		assert.Equal(t, 404, svcErr.StatusCode)
		assert.Equal(t, services.MsgIntentNotFound, svcErr.Message)
	}
	assert.Equal(t, 0, provider.retrieveCalls)
}

func TestResolveOutcome_GatewayError(t *testing.T) {
	provider := &mockProvider{retrieveErr: errors.New("connection reset")}
	svc := newTestService(provider)

	_, svcErr := svc.ResolveOutcome(context.Background(), "pi_gone")
	if assert.NotNil(t, svcErr) {
		assert.Equal(t, services.KindGateway, svcErr.Kind)
		assert.Equal(t, 500, svcErr.StatusCode)
		assert.Equal(t, "connection reset", svcErr.Message)
	}
}

func TestResolveOutcome_RefetchesEveryCall(t *testing.T) {
	provider := &mockProvider{
		retrieveOutcome: &models.PaymentOutcome{IntentID: "pi_9", Amount: 1500, Status: "processing"},
	}
	svc := newTestService(provider)

	_, _ = svc.ResolveOutcome(context.Background(), "pi_9")
	_, _ = svc.ResolveOutcome(context.Background(), "pi_9")

	assert.Equal(t, 2, provider.retrieveCalls)
}
