package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashrajoria/checkout-demo/services"
)

// CheckoutController handles the storefront pages and the payment-intent
// endpoint backing them.
type CheckoutController struct {
	checkoutService services.CheckoutService
	catalogService  services.CatalogService
	publishableKey  string
	logger          *zap.Logger
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(checkout services.CheckoutService, catalog services.CatalogService, publishableKey string, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkout,
		catalogService:  catalog,
		publishableKey:  publishableKey,
		logger:          logger,
	}
}

// createIntentRequest is the body of POST /create-payment-intent. Amount is
// accepted for compatibility with older clients but never used: the charge
// amount comes from the catalog entry for the item.
type createIntentRequest struct {
	Item   string `json:"item"`
	Amount int64  `json:"amount"`
}

// Index handles GET / and lists the catalog.
func (cc *CheckoutController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Items": cc.catalogService.Items(),
	})
}

// Checkout handles GET /checkout?item=<id>. Unknown or missing items render
// the same page with an error message instead of a payment form.
func (cc *CheckoutController) Checkout(ctx *gin.Context) {
	selection := cc.checkoutService.SelectItem(ctx.Request.Context(), ctx.Query("item"))

	ctx.HTML(http.StatusOK, "checkout.html", gin.H{
		"Item":           selection.Item,
		"Error":          selection.Error,
		"PublishableKey": cc.publishableKey,
	})
}

// CreatePaymentIntent handles POST /create-payment-intent. The client names
// an item; the server prices it and registers the intent with the gateway.
func (cc *CheckoutController) CreatePaymentIntent(ctx *gin.Context) {
	var req createIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.Amount != 0 {
		cc.logger.Warn("ignoring client-supplied amount",
			zap.String("item", req.Item),
			zap.Int64("amount", req.Amount))
	}

	ref, svcErr := cc.checkoutService.CreateIntent(ctx.Request.Context(), req.Item)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"client_secret": ref.ClientSecret})
}

// Success handles GET /success?payment_intent=<id>, the page the gateway
// redirects back to. The displayed amount and status come from a fresh
// retrieval, never from the query string.
func (cc *CheckoutController) Success(ctx *gin.Context) {
	outcome, svcErr := cc.checkoutService.ResolveOutcome(ctx.Request.Context(), ctx.Query("payment_intent"))
	if svcErr != nil {
		ctx.HTML(http.StatusOK, "success.html", gin.H{"Error": svcErr.Message})
		return
	}

	ctx.HTML(http.StatusOK, "success.html", gin.H{"Outcome": outcome})
}
