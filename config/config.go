package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-provided settings for the checkout demo.
type Config struct {
	Port                 string
	Env                  string
	Currency             string
	StripeSecretKey      string
	StripePublishableKey string
	AllowedOrigins       string
}

// LoadConfig reads configuration from the environment, loading a local .env
// file first when present. The secret key authenticates server-side gateway
// calls only; the publishable key is the one handed to browsers. The two
// must never swap roles.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "4242"),
		Env:                  getEnv("ENV", "development"),
		Currency:             strings.ToLower(getEnv("CURRENCY", "usd")),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		AllowedOrigins:       os.Getenv("ALLOWED_ORIGINS"),
	}

	if cfg.StripeSecretKey == "" || cfg.StripePublishableKey == "" {
		return nil, fmt.Errorf("missing required environment variables STRIPE_SECRET_KEY and STRIPE_PUBLISHABLE_KEY")
	}

	if strings.HasPrefix(cfg.StripeSecretKey, "pk_") || strings.HasPrefix(cfg.StripePublishableKey, "sk_") {
		return nil, fmt.Errorf("stripe keys look swapped: STRIPE_SECRET_KEY must hold the secret key, STRIPE_PUBLISHABLE_KEY the publishable one")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
