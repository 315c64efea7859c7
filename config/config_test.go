package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.CORSOrigins)
	assert.Equal(t, ".vercel.app", cfg.CORSOriginSuffix)
	assert.Equal(t, "admin@paulaveiga.com", cfg.AdminEmail)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "zero")
	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}
