package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "predicadores_db", cfg.DBName)
	require.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	require.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	require.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	require.Equal(t, 6, cfg.ChatHistoryWindow)
	require.Equal(t, 1000, cfg.ChatMaxTokens)
	require.Equal(t, 0.7, cfg.ChatTemperature)
	require.Equal(t, "https://api-m.sandbox.paypal.com", cfg.PayPalAPIURL)
	require.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CHAT_HISTORY_WINDOW", "10")
	t.Setenv("JWT_ACCESS_EXPIRY", "15m")
	t.Setenv("PAYPAL_MODE", "live")

	cfg := Load()
	require.Equal(t, 10, cfg.ChatHistoryWindow)
	require.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	require.Equal(t, "https://api-m.paypal.com", cfg.PayPalAPIURL)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("CHAT_HISTORY_WINDOW", "-3")
	t.Setenv("AI_TIMEOUT", "not-a-duration")

	cfg := Load()
	require.Equal(t, 6, cfg.ChatHistoryWindow)
	require.Equal(t, 60*time.Second, cfg.AITimeout)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "s3cret",
		DBName:     "predicadores",
		DBSSLMode:  "require",
	}
	dsn := cfg.DSN()
	require.Contains(t, dsn, "host=db.internal")
	require.Contains(t, dsn, "port=5433")
	require.Contains(t, dsn, "sslmode=require")
	require.Contains(t, dsn, "TimeZone=UTC")
}
