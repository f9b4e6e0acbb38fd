package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "aurafolio", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.AdminEmail)
}

func TestValidateRequiresPortAndSecret(t *testing.T) {
	cfg := &Config{Port: "", JWTSecret: "secret"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: "8090", JWTSecret: ""}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: "8090", JWTSecret: "secret"}
	assert.NoError(t, cfg.Validate())
}

func TestValidateProductionStrictness(t *testing.T) {
	cfg := &Config{
		Port:      "8090",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "production",
	}
	assert.Error(t, cfg.Validate(), "default secret rejected in production")

	cfg = &Config{
		Port:          "8090",
		JWTSecret:     "short",
		Env:           "production",
		AdminPassword: "strong-admin-password",
		DBPassword:    "strong-db-password",
	}
	assert.Error(t, cfg.Validate(), "short secret rejected in production")

	cfg = &Config{
		Port:          "8090",
		JWTSecret:     "0123456789abcdef0123456789abcdef",
		Env:           "production",
		AdminPassword: "admin",
		DBPassword:    "strong-db-password",
	}
	assert.Error(t, cfg.Validate(), "default admin password rejected in production")

	cfg = &Config{
		Port:          "8090",
		JWTSecret:     "0123456789abcdef0123456789abcdef",
		Env:           "production",
		AdminPassword: "strong-admin-password",
		DBPassword:    "strong-db-password",
	}
	assert.NoError(t, cfg.Validate())
}
