package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "DATABASE_DRIVER", "DATABASE_DSN", "ADMIN_TOKEN_TTL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "studio.db", cfg.DatabaseDSN)
	assert.Equal(t, 72*time.Hour, cfg.AdminTokenTTL)
	assert.Equal(t, "portfolio", cfg.CloudinaryDefaultFolder)
	assert.Nil(t, cfg.CorsOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", " host=localhost dbname=studio ")
	t.Setenv("ADMIN_TOKEN_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://studio.example, ,http://localhost:5173")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, "host=localhost dbname=studio", cfg.DatabaseDSN)
	assert.Equal(t, 2*time.Hour, cfg.AdminTokenTTL)
	assert.Equal(t, []string{"https://studio.example", "http://localhost:5173"}, cfg.CorsOrigins)
}

func TestValidate(t *testing.T) {
	cfg := AppConfig{DatabaseDriver: DriverSQLite, DatabaseDSN: "studio.db"}
	require.Error(t, cfg.Validate(), "missing admin secret must be rejected")

	cfg.AdminPassword = "hunter2"
	require.NoError(t, cfg.Validate())

	cfg.DatabaseDriver = "oracle"
	require.Error(t, cfg.Validate())
}

func TestFeatureToggles(t *testing.T) {
	cfg := AppConfig{CloudinaryCloudName: "demo", CloudinaryAPIKey: "key"}
	assert.False(t, cfg.CloudinaryEnabled())
	cfg.CloudinaryAPISecret = "secret"
	assert.True(t, cfg.CloudinaryEnabled())

	assert.False(t, cfg.MailEnabled())
	cfg.SMTPHost, cfg.SMTPFrom, cfg.ContactNotifyTo = "smtp.example", "site@example", "owner@example"
	assert.True(t, cfg.MailEnabled())
}

func TestLoadKeepsSecretsVerbatim(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", " padded secret ")
	t.Setenv("SMTP_PASSWORD", "\tsmtp ")

	cfg := Load()
	assert.Equal(t, " padded secret ", cfg.AdminPassword)
	assert.Equal(t, "\tsmtp ", cfg.SMTPPassword)
}
