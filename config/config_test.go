package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/arena")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":5200", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*1024*1024, cfg.BodyLimit())
	assert.Equal(t, time.Hour, cfg.PurgeInterval)
	assert.Equal(t, 720*time.Hour, cfg.PurgeRetention)
	assert.Empty(t, cfg.ServiceToken)
	assert.False(t, cfg.R2.Storage().Enabled())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:arena.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ARENA_SERVICE_TOKEN", "s3cret")
	t.Setenv("PURGE_INTERVAL", "0s")
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acct")
	t.Setenv("R2_BUCKET_NAME", "arena")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_ACCESS_KEY_SECRET", "secret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "s3cret", cfg.ServiceToken)
	assert.Zero(t, cfg.PurgeInterval)
	assert.True(t, cfg.R2.Storage().Enabled())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}},
		{"unknown driver", map[string]string{"DATABASE_URL": "x", "DATABASE_DRIVER": "mysql"}},
		{"bad duration", map[string]string{"DATABASE_URL": "x", "PURGE_INTERVAL": "soon"}},
		{"zero body limit", map[string]string{"DATABASE_URL": "x", "BODY_LIMIT_MB": "0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
