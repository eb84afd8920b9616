package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "SERVER_PORT", "UPLOAD_DIR", "MAX_UPLOAD_MB", "CACHE_ENABLED",
		"SEED_ROLES", "SHUTDOWN_TIMEOUT", "RESET_DB", "REDIS_DB",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 16, cfg.MaxUploadMB)
	assert.True(t, cfg.CacheEnabled)
	assert.False(t, cfg.ResetDB)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, []string{"admin", "borrower", "loan_officer"}, cfg.SeedRoles)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPLOAD_DIR", "/var/los/uploads")
	t.Setenv("MAX_UPLOAD_MB", "4")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("RESET_DB", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEED_ROLES", " borrower , , underwriter ")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/var/los/uploads", cfg.UploadDir)
	assert.Equal(t, 4, cfg.MaxUploadMB)
	assert.False(t, cfg.CacheEnabled)
	assert.True(t, cfg.ResetDB)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"borrower", "underwriter"}, cfg.SeedRoles)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("CACHE_ENABLED", "maybe")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("SEED_ROLES", " , ")

	cfg := Load()

	assert.Equal(t, 16, cfg.MaxUploadMB)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"admin", "borrower", "loan_officer"}, cfg.SeedRoles)
}
