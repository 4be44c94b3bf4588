package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "ADMIN_KEY", "ADMIN_KEY_HASH",
		"CORS_ALLOWED_ORIGINS", "METRICS_USER", "METRICS_PASSWORD", "LOG_LEVEL", "LOG_FORMAT",
		"SEED_EXAMPLES", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_KEY", "changeme")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/data/codes.db", cfg.DBPath)
	assert.Equal(t, "/data/codes.db", cfg.DSN())
	assert.Equal(t, "changeme", cfg.AdminKey)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, "metrics", cfg.MetricsUser)
	assert.Empty(t, cfg.MetricsPassword)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.SeedExamples)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_KEY_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/codes?sslmode=disable")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://codes.home.lan, http://localhost:5173 ,")
	t.Setenv("SEED_EXAMPLES", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/codes?sslmode=disable", cfg.DSN())
	assert.Equal(t, []string{"https://codes.home.lan", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SeedExamples)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing admin key", map[string]string{}},
		{"postgres without url", map[string]string{"ADMIN_KEY": "k", "DB_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"ADMIN_KEY": "k", "DB_DRIVER": "mysql"}},
		{"bad seed flag", map[string]string{"ADMIN_KEY": "k", "SEED_EXAMPLES": "maybe"}},
		{"bad timeout", map[string]string{"ADMIN_KEY": "k", "SHUTDOWN_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
