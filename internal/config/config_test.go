package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg := LoadFromEnv()
	require.Equal(t, "1.0.0", cfg.Version)
	require.Equal(t, ":8090", cfg.HTTPAddr)
	require.Equal(t, 10*time.Second, cfg.KeychainCommitTimeout)
	require.Equal(t, 50*time.Millisecond, cfg.KeychainPollInterval)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("KEYCHAIN_COMMIT_TIMEOUT_MS", "2500")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadFromEnv()
	require.Equal(t, ":9000", cfg.HTTPAddr)
	require.Equal(t, 2500*time.Millisecond, cfg.KeychainCommitTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestGetEnvDurationIgnoresUnparsable(t *testing.T) {
	t.Setenv("KEYCHAIN_POLL_INTERVAL_MS", "not-a-number")
	cfg := LoadFromEnv()
	require.Equal(t, 50*time.Millisecond, cfg.KeychainPollInterval)
}
