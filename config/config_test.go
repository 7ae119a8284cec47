package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setValidEnv(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_def")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("CURRENCY", "")
	t.Setenv("ALLOWED_ORIGINS", "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "4242", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "usd", cfg.Currency)
	assert.Equal(t, "sk_test_abc", cfg.StripeSecretKey)
	assert.Equal(t, "pk_test_def", cfg.StripePublishableKey)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("CURRENCY", "EUR")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "eur", cfg.Currency, "currency is normalized to lowercase")
}

func TestLoadConfig_MissingKeys(t *testing.T) {
	setValidEnv(t)
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := LoadConfig()
	assert.Error(t, err)

	setValidEnv(t)
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "")

	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsSwappedKeys(t *testing.T) {
	setValidEnv(t)
	t.Setenv("STRIPE_SECRET_KEY", "pk_test_def")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "swapped")

	setValidEnv(t)
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "sk_test_abc")

	_, err = LoadConfig()
	assert.ErrorContains(t, err, "swapped")
}
