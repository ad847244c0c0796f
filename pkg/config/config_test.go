package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "3001")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	cfg := New()

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5, cfg.Report.HighRiskLimit)
	assert.False(t, cfg.Report.IncludeIdleAssets)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local ,")
	t.Setenv("REPORT_INCLUDE_IDLE_ASSETS", "true")
	t.Setenv("AUTH_LOCKOUT_DURATION", "2m")
	t.Setenv("AUTH_MAX_LOGIN_ATTEMPTS", "not-a-number")

	cfg := New()

	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Report.IncludeIdleAssets)
	assert.Equal(t, 2*time.Minute, cfg.Auth.LockoutDuration)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
}
