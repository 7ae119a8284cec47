package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/checkout-demo/controllers"
)

// RegisterCheckoutRoutes sets up the storefront pages and payment endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, cc *controllers.CheckoutController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "checkout-demo"})
	})

	r.GET("/", cc.Index)
	r.GET("/checkout", cc.Checkout)
	r.POST("/create-payment-intent", cc.CreatePaymentIntent)
	r.GET("/success", cc.Success)
}
