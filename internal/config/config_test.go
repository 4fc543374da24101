package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Data: DataConfig{
			Dir:           "./data",
			FilePrefix:    "vajra_",
			PreviewSuffix: "_small",
			Strategy:      LoadStrategyTwoPhase,
			CatalogCap:    500,
		},
		JWT: JWTConfig{
			Secret:        "0123456789abcdef0123456789abcdef",
			SessionExpiry: time.Hour,
		},
	}
}

func TestDatasetPath(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, filepath.Join("data", "vajra_orders.json"), cfg.DatasetPath("orders", false))
	assert.Equal(t, filepath.Join("data", "vajra_orders_small.json"), cfg.DatasetPath("orders", true))
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.JWT.Secret = "short"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Data.Strategy = "eager"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Data.CatalogCap = 0
	assert.Error(t, cfg.Validate())
}
