package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yashrajoria/checkout-demo/config"
	"github.com/yashrajoria/checkout-demo/controllers"
	logpkg "github.com/yashrajoria/checkout-demo/logger"
	"github.com/yashrajoria/checkout-demo/metrics"
	"github.com/yashrajoria/checkout-demo/middleware"
	"github.com/yashrajoria/checkout-demo/providers"
	"github.com/yashrajoria/checkout-demo/routes"
	"github.com/yashrajoria/checkout-demo/services"
	"github.com/yashrajoria/checkout-demo/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logpkg.MustNew(cfg.Env)
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	// --- 1. Dependency Injection (Wiring the layers together) ---

	provider := providers.NewStripeProvider(cfg.StripeSecretKey)
	catalog := services.NewCatalogService()

	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)
	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	checkoutService := services.NewCheckoutService(catalog, provider, cfg.Currency, checkoutMetrics, logger)
	checkoutController := controllers.NewCheckoutController(checkoutService, catalog, cfg.StripePublishableKey, logger)

	// --- 2. HTTP Server & Middleware ---

	r := gin.New()
	r.Use(gin.Recovery()) // Recover from panics
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(rate.Limit(20), 40))
	r.Use(httpMetrics.Middleware())

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	// --- 3. Route Registration ---

	routes.RegisterCheckoutRoutes(r, checkoutController)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- 4. Graceful Shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Checkout demo starting",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.String("currency", cfg.Currency),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down checkout demo...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
